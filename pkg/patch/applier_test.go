// pkg/patch/applier_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory afero filesystem
// PURPOSE: Test the append, replace and copy strategies

package patch_test

import (
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/filesystem"
	"github.com/arthur-debert/gradlepatch/pkg/patch"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (types.FS, *patch.Applier) {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/project/app", 0755))
	require.NoError(t, fs.WriteFile("/project/app/build.gradle", []byte("plugins {}"), 0600))
	return fs, patch.NewApplier(fs, zerolog.Nop())
}

func TestAppend(t *testing.T) {
	fs, a := setup(t)

	require.NoError(t, a.Append("/project/app/build.gradle", "\napply from: \"traceSdk.gradle\""))

	data, err := fs.ReadFile("/project/app/build.gradle")
	require.NoError(t, err)
	assert.Equal(t, "plugins {}\napply from: \"traceSdk.gradle\"", string(data))
}

func TestAppendMissingFile(t *testing.T) {
	_, a := setup(t)

	err := a.Append("/project/lib/build.gradle", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, "/project/lib/build.gradle", errors.GetErrorDetails(err)["path"])
}

func TestReplace(t *testing.T) {
	fs, a := setup(t)

	require.NoError(t, a.Replace("/project/app/build.gradle", "buildscript {\n}\n"))

	data, err := fs.ReadFile("/project/app/build.gradle")
	require.NoError(t, err)
	assert.Equal(t, "buildscript {\n}\n", string(data))

	info, err := fs.Stat("/project/app/build.gradle")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestRead(t *testing.T) {
	_, a := setup(t)

	got, err := a.Read("/project/app/build.gradle")
	require.NoError(t, err)
	assert.Equal(t, "plugins {}", got)

	_, err = a.Read("/nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestCopy(t *testing.T) {
	fs, a := setup(t)
	fragment := []byte("dependencies {\n    implementation 'io.bitrise.trace:trace-sdk:1.0.0'\n}\n")
	require.NoError(t, fs.MkdirAll("/step", 0755))
	require.NoError(t, fs.WriteFile("/step/traceSdk.gradle", fragment, 0644))

	require.NoError(t, a.Copy("/step/traceSdk.gradle", "/project/app/traceSdk.gradle"))

	got, err := fs.ReadFile("/project/app/traceSdk.gradle")
	require.NoError(t, err)
	assert.Equal(t, fragment, got)
}

func TestCopyMissingSource(t *testing.T) {
	_, a := setup(t)

	err := a.Copy("/step/missing.gradle", "/project/app/missing.gradle")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/step/missing.gradle", details["source"])
	assert.Equal(t, "/project/app/missing.gradle", details["destination"])
}
