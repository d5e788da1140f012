package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "a/b/build.gradle", "content")
	assert.Equal(t, filepath.Join(dir, "a", "b", "build.gradle"), path)
	assert.Equal(t, "content", ReadFile(t, path))
	AssertFileContent(t, path, "content")
	AssertNoFile(t, filepath.Join(dir, "missing"))
}

func TestCreateExecutable(t *testing.T) {
	SkipOnWindows(t)
	path := CreateExecutable(t, t.TempDir(), "gradlew", "exit 0\n")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100)
	assert.Equal(t, "#!/bin/sh\nexit 0\n", ReadFile(t, path))
}

func TestNewMemoryFS(t *testing.T) {
	fs := NewMemoryFS(t, map[string]string{
		"/p/app/build.gradle": "android {}",
		"/p/build.gradle":     "",
	})
	assert.Equal(t, "android {}", ReadMemFile(t, fs, "/p/app/build.gradle"))
	info, err := fs.Stat("/p/app")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIsolateState(t *testing.T) {
	dir := IsolateState(t)
	assert.Equal(t, dir, xdg.StateHome)
}
