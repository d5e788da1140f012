package project

import (
	"path/filepath"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/types"
)

// RootBuildFiles are the descriptor names looked up in a project root, in
// order of preference
var RootBuildFiles = []string{"build.gradle", "build.gradle.kts"}

// FindRootBuildFile returns the path of the root build descriptor in dir
func FindRootBuildFile(fsys types.FS, dir string) (string, error) {
	for _, name := range RootBuildFiles {
		path := filepath.Join(dir, name)
		info, err := fsys.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "no build.gradle or build.gradle.kts in %s", dir).
		WithDetail("dir", dir)
}
