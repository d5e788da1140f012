// pkg/step/step_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: environment, in-memory filesystem, shell for the wrapper stub
// PURPOSE: Test the workflow helpers around an injection run

package step_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/step"
	"github.com/arthur-debert/gradlepatch/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	t.Setenv("GRADLEPATCH_TEST_SET", "value")
	t.Setenv("GRADLEPATCH_TEST_BLANK", "  ")

	v, err := step.Env("GRADLEPATCH_TEST_SET")
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	for _, name := range []string{"GRADLEPATCH_TEST_BLANK", "GRADLEPATCH_TEST_UNSET"} {
		_, err := step.Env(name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEnvMissing), name)
		assert.Equal(t, name, errors.GetErrorDetails(err)["env"])
	}
}

func TestFragmentDir(t *testing.T) {
	t.Setenv("BITRISE_STEP_SOURCE_DIR", "/step/src")
	dir, err := step.FragmentDir("BITRISE_STEP_SOURCE_DIR")
	require.NoError(t, err)
	assert.Equal(t, "/step/src", dir)
}

func TestAddonsConfigFormat(t *testing.T) {
	// the file layout is versioned, bump the version when this changes
	c := step.AddonsConfig{Version: "1.0.0", Token: "sampleToken"}
	got, err := c.Format()
	require.NoError(t, err)
	assert.Equal(t, "{\n \"version\": \"1.0.0\",\n \"token\": \"sampleToken\"\n}", string(got))
}

func TestNewAddonsConfig(t *testing.T) {
	t.Setenv("APM_COLLECTOR_TOKEN", "secret")
	c, err := step.NewAddonsConfig("1.0.0", "APM_COLLECTOR_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, step.AddonsConfig{Version: "1.0.0", Token: "secret"}, c)

	_, err = step.NewAddonsConfig("1.0.0", "GRADLEPATCH_TEST_NO_TOKEN")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvMissing))
}

func TestWriteAddonsConfig(t *testing.T) {
	fs := testutil.NewMemoryFS(t, map[string]string{"/proj/settings.gradle": ""})

	path, err := step.WriteAddonsConfig(fs, "/proj", "addons.json",
		step.AddonsConfig{Version: "1.0.0", Token: "t"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/proj/addons.json", path)

	assert.Contains(t, testutil.ReadMemFile(t, fs, path), `"token": "t"`)
}

func TestGradleCommand(t *testing.T) {
	g := step.NewGradleRunner("", nil, zerolog.Nop())
	tests := []struct {
		name    string
		options string
		want    []string
	}{
		{"no_options", "", []string{"/proj/gradlew", "verifyTrace", "-p", "/proj"}},
		{"plain", "--stacktrace --info", []string{"/proj/gradlew", "verifyTrace", "-p", "/proj", "--stacktrace", "--info"}},
		{"quoted", `-Pname="a b" '-Dx=1 2'`, []string{"/proj/gradlew", "verifyTrace", "-p", "/proj", "-Pname=a b", "-Dx=1 2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Command("/proj", "verifyTrace", tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := g.Command("/proj", "verifyTrace", `--unterminated "quote`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGradleRun(t *testing.T) {
	testutil.SkipOnWindows(t)

	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateExecutable(t, dir, "gradlew", "echo \"ran $1 $4\"\n")

		var out bytes.Buffer
		g := step.NewGradleRunner("", &out, zerolog.Nop())
		require.NoError(t, g.Run(context.Background(), dir, "verifyTrace", "--info"))
		assert.Equal(t, "ran verifyTrace --info\n", out.String())
	})

	t.Run("failure_carries_output", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateExecutable(t, dir, "gradlew", "echo to-stdout\necho to-stderr >&2\nexit 3\n")

		g := step.NewGradleRunner("", nil, zerolog.Nop())
		err := g.Run(context.Background(), dir, "verifyTrace", "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGradleTask))
		assert.Contains(t, err.Error(), "to-stdout")
		assert.Contains(t, err.Error(), "to-stderr")
	})

	t.Run("missing_wrapper", func(t *testing.T) {
		g := step.NewGradleRunner("", nil, zerolog.Nop())
		err := g.Run(context.Background(), t.TempDir(), "verifyTrace", "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrGradleTask))
	})
}
