// Package patch persists descriptor changes. It knows two mutation
// strategies, append-only and whole-file replace, plus the verbatim copy of
// auxiliary descriptor fragments. Failures are wrapped with the paths
// involved and returned; nothing is retried or rolled back.
package patch

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
)

const defaultPerm fs.FileMode = 0644

// Applier writes through a types.FS
type Applier struct {
	FS     types.FS
	Logger zerolog.Logger
}

// NewApplier returns an Applier for fsys
func NewApplier(fsys types.FS, logger zerolog.Logger) *Applier {
	return &Applier{FS: fsys, Logger: logger}
}

// Append writes fragment at the end of the existing file at path
func (a *Applier) Append(path, fragment string) error {
	a.Logger.Debug().
		Str("path", path).
		Str("content", fragment).
		Msg("Appending to file")

	if err := a.FS.AppendFile(path, []byte(fragment)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to append to %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Replace overwrites the file at path with content, keeping its mode
func (a *Applier) Replace(path, content string) error {
	perm := defaultPerm
	if info, err := a.FS.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	a.Logger.Debug().
		Str("path", path).
		Int("bytes", len(content)).
		Msg("Replacing file content")

	if err := a.FS.WriteFile(path, []byte(content), perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to rewrite %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Read returns the content of the file at path
func (a *Applier) Read(path string) (string, error) {
	data, err := a.FS.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	return string(data), nil
}

// Copy copies src to dst byte for byte, creating dst's directory. An
// existing dst is overwritten.
func (a *Applier) Copy(src, dst string) error {
	wrap := func(err error) error {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dst).
			WithDetail("source", src).
			WithDetail("destination", dst)
	}

	in, err := a.FS.Open(src)
	if err != nil {
		return wrap(err)
	}
	defer in.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, in); err != nil {
		return wrap(err)
	}

	if err := a.FS.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return wrap(err)
	}
	if err := a.FS.WriteFile(dst, buf.Bytes(), defaultPerm); err != nil {
		return wrap(err)
	}

	a.Logger.Debug().
		Str("source", src).
		Str("destination", dst).
		Msg("Copied file")
	return nil
}
