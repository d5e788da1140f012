package step

import (
	"os"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
)

// Env returns the value of the named environment variable. An unset or
// blank variable is an ErrEnvMissing error.
func Env(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", errors.Newf(errors.ErrEnvMissing,
			"%s is not set as env variable, please set it before running this step", name).
			WithDetail("env", name)
	}
	return v, nil
}

// FragmentDir returns the directory holding the descriptor fragments,
// read from the environment variable named envName
func FragmentDir(envName string) (string, error) {
	return Env(envName)
}
