// Package project provides module handles to the core. A Snapshot is a
// declarative description of a Gradle build (modules, their applied
// plugins and resolved dependency configurations), typically dumped by a
// Gradle init script, and read from YAML, TOML or JSON.
package project

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot describes the modules of one Gradle build
type Snapshot struct {
	// Root is the directory relative module paths resolve against
	Root    string           `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	Modules []ModuleSnapshot `json:"modules" yaml:"modules" toml:"modules"`
}

// ModuleSnapshot describes one module. Dependencies are coordinates in
// group:name[:version] form keyed by configuration name.
type ModuleSnapshot struct {
	Name           string              `json:"name" yaml:"name" toml:"name"`
	Dir            string              `json:"dir" yaml:"dir" toml:"dir"`
	BuildFile      string              `json:"build_file,omitempty" yaml:"build_file,omitempty" toml:"build_file,omitempty"`
	Plugins        []string            `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	Configurations map[string][]string `json:"configurations,omitempty" yaml:"configurations,omitempty" toml:"configurations,omitempty"`
	Buildscript    map[string][]string `json:"buildscript,omitempty" yaml:"buildscript,omitempty" toml:"buildscript,omitempty"`
}

// Format is a snapshot encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrSnapshotParse, "unsupported snapshot format for %s", path).
		WithDetail("path", path)
}

// Parse decodes a snapshot
func Parse(data []byte, format Format) (*Snapshot, error) {
	var s Snapshot
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		return nil, errors.Newf(errors.ErrSnapshotParse, "unsupported snapshot format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotParse, "failed to decode %s snapshot", format)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and decodes the snapshot at path. When the snapshot has no
// root, the directory of path is used.
func Load(fsys types.FS, path string) (*Snapshot, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read snapshot %s", path).
			WithDetail("path", path)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	switch {
	case s.Root == "":
		s.Root = base
	case !filepath.IsAbs(s.Root):
		s.Root = filepath.Join(base, s.Root)
	}
	return s, nil
}

func (s *Snapshot) validate() error {
	for i, m := range s.Modules {
		if m.Name == "" {
			return errors.Newf(errors.ErrSnapshotParse, "module #%d has no name", i+1)
		}
		for _, set := range []map[string][]string{m.Configurations, m.Buildscript} {
			for conf, coords := range set {
				for _, c := range coords {
					if _, err := types.ParseCoordinate(c); err != nil {
						return errors.Wrapf(err, errors.ErrSnapshotParse, "module %s configuration %s", m.Name, conf)
					}
				}
			}
		}
	}
	return nil
}

// Module returns the handle of the named module
func (s *Snapshot) Module(name string) (types.Module, error) {
	for i := range s.Modules {
		if s.Modules[i].Name == name {
			return s.handle(i), nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "no module named %q", name).
		WithDetail("module", name)
}

// ApplicationModule returns the first module, in declaration order, that
// applies pluginID
func (s *Snapshot) ApplicationModule(pluginID string) (types.Module, error) {
	for i, m := range s.Modules {
		for _, p := range m.Plugins {
			if p == pluginID {
				return s.handle(i), nil
			}
		}
	}
	return nil, errors.Newf(errors.ErrNoAppModule,
		"no module with %q plugin found. You must have at least one application module in your project", pluginID).
		WithDetail("plugin", pluginID)
}

func (s *Snapshot) handle(i int) *Module {
	m := s.Modules[i]
	dir := m.Dir
	if dir == "" {
		dir = m.Name
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.Root, dir)
	}
	build := m.BuildFile
	switch {
	case build == "":
		build = filepath.Join(dir, "build.gradle")
	case !filepath.IsAbs(build):
		build = filepath.Join(s.Root, build)
	}
	return &Module{
		name:        m.Name,
		dir:         dir,
		buildFile:   build,
		plugins:     append([]string(nil), m.Plugins...),
		configs:     newConfigurations(m.Configurations),
		buildscript: newConfigurations(m.Buildscript),
	}
}

// Module is the types.Module backed by a snapshot
type Module struct {
	name        string
	dir         string
	buildFile   string
	plugins     []string
	configs     *Configurations
	buildscript *Configurations
}

var _ types.Module = (*Module)(nil)

func (m *Module) Name() string { return m.name }
func (m *Module) Dir() string { return m.dir }
func (m *Module) BuildFile() string { return m.buildFile }
func (m *Module) AppliedPlugins() []string { return m.plugins }
func (m *Module) Buildscript() types.ConfigurationSet { return m.buildscript }
func (m *Module) Configurations() []string { return m.configs.Configurations() }
func (m *Module) Dependencies(c string) []types.Dependency { return m.configs.Dependencies(c) }

// Configurations is a types.ConfigurationSet with sorted names
type Configurations struct {
	names []string
	deps  map[string][]types.Dependency
}

func newConfigurations(raw map[string][]string) *Configurations {
	c := &Configurations{deps: make(map[string][]types.Dependency, len(raw))}
	for name, coords := range raw {
		c.names = append(c.names, name)
		for _, coord := range coords {
			// validated when the snapshot was parsed
			d, _ := types.ParseCoordinate(coord)
			c.deps[name] = append(c.deps[name], d)
		}
	}
	sort.Strings(c.names)
	return c
}

func (c *Configurations) Configurations() []string { return c.names }

func (c *Configurations) Dependencies(configuration string) []types.Dependency {
	return c.deps[configuration]
}
