package step

import (
	"encoding/json"
	"path/filepath"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
)

// AddonsConfig is the content of the addons configuration file read by the
// SDK at build time
type AddonsConfig struct {
	Version string `json:"version"`
	Token   string `json:"token"`
}

// NewAddonsConfig reads the token from the environment variable tokenEnv
func NewAddonsConfig(version, tokenEnv string) (AddonsConfig, error) {
	token, err := Env(tokenEnv)
	if err != nil {
		return AddonsConfig{}, err
	}
	return AddonsConfig{Version: version, Token: token}, nil
}

// Format renders the file content. The layout is read by the SDK and only
// changes together with the version.
func (c AddonsConfig) Format() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to format addons configuration")
	}
	return data, nil
}

// WriteAddonsConfig writes c as fileName in dir and returns the path
func WriteAddonsConfig(fsys types.FS, dir, fileName string, c AddonsConfig, logger zerolog.Logger) (string, error) {
	data, err := c.Format()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName)
	logger.Debug().
		Str("path", path).
		Str("version", c.Version).
		Msg("Writing addons configuration")
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write the configuration file %s", path).
			WithDetail("path", path)
	}
	return path, nil
}
