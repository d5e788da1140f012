package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/filesystem"
	"github.com/arthur-debert/gradlepatch/pkg/types"
)

// NewMemoryFS returns an in-memory filesystem holding files, keyed by
// absolute path. Parent directories are created.
func NewMemoryFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", p, err)
		}
		if err := fs.WriteFile(p, []byte(files[p]), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", p, err)
		}
	}
	return fs
}

// ReadMemFile reads a file from fs, failing the test on error
func ReadMemFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}
