package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in dir, creating
// parent directories, and returns its path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(dir, name), content, 0644)
}

// CreateExecutable creates a shell script in dir and returns its path
func CreateExecutable(t *testing.T, dir, name, script string) string {
	t.Helper()
	return writeFile(t, filepath.Join(dir, name), "#!/bin/sh\n"+script, 0755)
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// ReadFile reads the content of a file, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	if actual := ReadFile(t, path); actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that a file does not exist
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}

// SkipOnWindows skips tests relying on shell scripts
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if os.PathSeparator == '\\' {
		t.Skip("Test not supported on Windows")
	}
}
