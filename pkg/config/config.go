package config

import (
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/types"
)

// Config is the complete gradlepatch configuration
type Config struct {
	Sdk         Artifact    `koanf:"sdk"`
	Plugin      Plugin      `koanf:"plugin"`
	Buildscript Buildscript `koanf:"buildscript"`
	Classpath   Classpath   `koanf:"classpath"`
	Application Application `koanf:"application"`
	Env         Env         `koanf:"env"`
	Addons      Addons      `koanf:"addons"`
	Gradle      Gradle      `koanf:"gradle"`
}

// Artifact is a dependency injected through an auxiliary fragment file
type Artifact struct {
	Group        string `koanf:"group"`
	Name         string `koanf:"name"`
	Version      string `koanf:"version"`
	FragmentFile string `koanf:"fragment_file"`
}

// Plugin is the Gradle plugin put on the buildscript classpath and applied
type Plugin struct {
	Group        string `koanf:"group"`
	Name         string `koanf:"name"`
	Version      string `koanf:"version"`
	ID           string `koanf:"id"`
	FragmentFile string `koanf:"fragment_file"`
}

// Buildscript configures the block that receives the plugin classpath
type Buildscript struct {
	Keyword       string   `koanf:"keyword"`
	Configuration string   `koanf:"configuration"`
	Repositories  []string `koanf:"repositories"`
}

// Classpath selects the configurations consulted for the SDK dependency
type Classpath struct {
	Markers []string `koanf:"markers"`
}

// Application identifies the application module
type Application struct {
	Plugin string `koanf:"plugin"`
}

// Env holds the names of the environment variables read at runtime
type Env struct {
	FragmentDir string `koanf:"fragment_dir"`
	Token       string `koanf:"token"`
}

// Addons configures the addons configuration file written by setup
type Addons struct {
	FileName string `koanf:"file_name"`
	Version  string `koanf:"version"`
}

// Gradle configures the optional verification run
type Gradle struct {
	Wrapper    string `koanf:"wrapper"`
	VerifyTask string `koanf:"verify_task"`
	Options    string `koanf:"options"`
}

// SdkDirective returns the directive for the SDK dependency
func (c *Config) SdkDirective() types.Directive {
	return types.Directive{
		Dependency: types.Dependency{
			Group:   c.Sdk.Group,
			Name:    c.Sdk.Name,
			Version: c.Sdk.Version,
		},
		FragmentFile: c.Sdk.FragmentFile,
	}
}

// PluginDirective returns the directive applying the plugin
func (c *Config) PluginDirective() types.Directive {
	return types.Directive{
		Dependency:   c.pluginDependency(),
		FragmentFile: c.Plugin.FragmentFile,
	}
}

// BuildscriptDirective returns the directive for the plugin classpath
func (c *Config) BuildscriptDirective() types.BuildscriptDirective {
	return types.BuildscriptDirective{
		Dependency:    c.pluginDependency(),
		Keyword:       c.Buildscript.Keyword,
		Configuration: c.Buildscript.Configuration,
		Repositories:  append([]string(nil), c.Buildscript.Repositories...),
	}
}

func (c *Config) pluginDependency() types.Dependency {
	return types.Dependency{
		Group:   c.Plugin.Group,
		Name:    c.Plugin.Name,
		Version: c.Plugin.Version,
	}
}

// validate reports the first missing required key
func (c *Config) validate() error {
	required := map[string]string{
		"sdk.group":                 c.Sdk.Group,
		"sdk.name":                  c.Sdk.Name,
		"sdk.fragment_file":         c.Sdk.FragmentFile,
		"plugin.group":              c.Plugin.Group,
		"plugin.name":               c.Plugin.Name,
		"plugin.id":                 c.Plugin.ID,
		"plugin.fragment_file":      c.Plugin.FragmentFile,
		"buildscript.keyword":       c.Buildscript.Keyword,
		"buildscript.configuration": c.Buildscript.Configuration,
		"application.plugin":        c.Application.Plugin,
	}
	for _, key := range sortedKeys(required) {
		if strings.TrimSpace(required[key]) == "" {
			return errMissingKey(key)
		}
	}
	if len(c.Buildscript.Repositories) == 0 {
		return errMissingKey("buildscript.repositories")
	}
	return nil
}
