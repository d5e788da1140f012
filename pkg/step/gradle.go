package step

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

// DefaultWrapper is the wrapper script name looked up in the project
const DefaultWrapper = "gradlew"

// GradleRunner runs tasks through a project's Gradle wrapper
type GradleRunner struct {
	Wrapper string
	Logger  zerolog.Logger
	// Stdout receives the task's console output after a successful run
	Stdout io.Writer
}

// NewGradleRunner returns a runner using wrapper, DefaultWrapper when empty
func NewGradleRunner(wrapper string, stdout io.Writer, logger zerolog.Logger) *GradleRunner {
	if wrapper == "" {
		wrapper = DefaultWrapper
	}
	return &GradleRunner{Wrapper: wrapper, Logger: logger, Stdout: stdout}
}

// Command returns the argv running task in dir. options are split
// following shell quoting rules and appended.
func (g *GradleRunner) Command(dir, task, options string) ([]string, error) {
	opts, err := shellquote.Split(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot parse Gradle task options, make sure they are set correctly: %q", options).
			WithDetail("options", options)
	}
	argv := []string{filepath.Join(dir, g.Wrapper), task, "-p", dir}
	return append(argv, opts...), nil
}

// Run executes task and waits for it. On failure both output streams are
// part of the returned error.
func (g *GradleRunner) Run(ctx context.Context, dir, task, options string) error {
	argv, err := g.Command(dir, task, options)
	if err != nil {
		return err
	}

	g.Logger.Info().
		Str("command", strings.Join(argv, " ")).
		Msg("Executing")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrGradleTask,
			"%s failed\nConsole output: %s\nError output: %s", task, stdout.String(), stderr.String()).
			WithDetail("task", task).
			WithDetail("dir", dir)
	}

	if g.Stdout != nil {
		_, _ = io.Copy(g.Stdout, &stdout)
	}
	return nil
}
