package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return NewOS(), t.TempDir()
		},
		"memory": func(t *testing.T) (types.FS, string) {
			return NewMemory(), "/project"
		},
	}

	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			fs, root := mk(t)
			dir := filepath.Join(root, "app")
			file := filepath.Join(dir, "build.gradle")

			require.NoError(t, fs.MkdirAll(dir, 0755))
			require.NoError(t, fs.WriteFile(file, []byte("plugins {}\n"), 0644))

			require.NoError(t, fs.AppendFile(file, []byte("\napply from: \"traceSdk.gradle\"")))

			content, err := fs.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "plugins {}\n\napply from: \"traceSdk.gradle\"", string(content))

			info, err := fs.Stat(file)
			require.NoError(t, err)
			assert.Equal(t, "build.gradle", info.Name())

			r, err := fs.Open(file)
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, content, data)
		})
	}
}

func TestAppendFileRequiresExistingFile(t *testing.T) {
	for name, fs := range map[string]types.FS{"os": NewOS(), "memory": NewMemory()} {
		t.Run(name, func(t *testing.T) {
			missing := filepath.Join(t.TempDir(), "missing.gradle")
			err := fs.AppendFile(missing, []byte("x"))
			require.Error(t, err)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestReadFileOnDirectory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	_, err := fs.ReadFile("/dir")
	assert.Error(t, err)
}
