package types

import (
	"io"
	"io/fs"
)

// FS defines the filesystem operations needed to patch descriptor files
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)

	// AppendFile writes data at the end of an existing file. It must fail
	// when the file does not exist.
	AppendFile(name string, data []byte) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// ConfigurationSet is a read-only view over a set of dependency
// configurations, either a module's own or its buildscript's.
type ConfigurationSet interface {
	// Configurations lists the configuration names
	Configurations() []string
	// Dependencies lists the dependencies declared in the named configuration
	Dependencies(configuration string) []Dependency
}

// Module is the handle of a Gradle module as provided by an external
// resolver. gradlepatch only queries it, it never mutates the model.
type Module interface {
	ConfigurationSet

	Name() string
	// Dir is the module directory, auxiliary files are copied there
	Dir() string
	// BuildFile is the path of the module's build descriptor
	BuildFile() string
	// Buildscript exposes the buildscript level configurations
	Buildscript() ConfigurationSet
	// AppliedPlugins lists the plugin identifiers applied to the module
	AppliedPlugins() []string
}
