// Package oracle answers the idempotency questions asked before every
// injection step: is the dependency already declared, is it already on the
// buildscript classpath, is the plugin already applied. All checks are
// read-only queries against a types.Module.
package oracle

import (
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultClasspathMarkers select the configurations that take part in
// compile or runtime classpath resolution
var DefaultClasspathMarkers = []string{"compileclasspath", "runtimeclasspath"}

// Oracle holds the settings of the checks and the logger they report to
type Oracle struct {
	Logger zerolog.Logger
	// Markers are matched case-insensitively as substrings of configuration
	// names. Only matching configurations are consulted by HasDependency.
	Markers []string
}

// New returns an Oracle using DefaultClasspathMarkers
func New(logger zerolog.Logger) *Oracle {
	return &Oracle{Logger: logger, Markers: DefaultClasspathMarkers}
}

// HasDependency reports whether any classpath-resolving configuration of
// set declares dep. Other configurations are not inspected.
func (o *Oracle) HasDependency(set types.ConfigurationSet, dep types.Dependency) bool {
	for _, name := range set.Configurations() {
		o.Logger.Debug().
			Str("configuration", name).
			Str("dependency", dep.Coordinate()).
			Msg("Checking configuration for dependency")
		if !o.isClasspath(name) {
			continue
		}
		if o.configurationHas(set, name, dep) {
			return true
		}
	}
	return false
}

// HasBuildscriptDependency reports whether any buildscript configuration of
// m declares dep
func (o *Oracle) HasBuildscriptDependency(m types.Module, dep types.Dependency) bool {
	bs := m.Buildscript()
	if bs == nil {
		return false
	}
	for _, name := range bs.Configurations() {
		if o.configurationHas(bs, name, dep) {
			return true
		}
	}
	return false
}

// HasPlugin reports whether m applies the plugin with the given id
func (o *Oracle) HasPlugin(m types.Module, id string) bool {
	for _, p := range m.AppliedPlugins() {
		if p == id {
			return true
		}
	}
	return false
}

func (o *Oracle) isClasspath(configuration string) bool {
	lc := strings.ToLower(configuration)
	for _, marker := range o.Markers {
		if strings.Contains(lc, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func (o *Oracle) configurationHas(set types.ConfigurationSet, configuration string, dep types.Dependency) bool {
	found, ok := ConfigurationHasDependency(set, configuration, dep)
	if ok {
		o.Logger.Info().
			Str("configuration", configuration).
			Str("dependency", dep.Group+":"+dep.Name).
			Str("version", found.Version).
			Msg("Configuration already contains dependency")
		return true
	}
	o.Logger.Info().
		Str("configuration", configuration).
		Str("dependency", dep.Group+":"+dep.Name).
		Msg("Configuration does not have dependency")
	return false
}

// ConfigurationHasDependency scans one configuration for a dependency with
// the same group and name as dep and returns the declared one
func ConfigurationHasDependency(set types.ConfigurationSet, configuration string, dep types.Dependency) (types.Dependency, bool) {
	for _, d := range set.Dependencies(configuration) {
		if dep.Same(d) {
			return d, true
		}
	}
	return types.Dependency{}, false
}
