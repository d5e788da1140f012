package types

import (
	"fmt"
	"strings"
)

// Dependency identifies an artifact by group, name and optional version
type Dependency struct {
	Group   string `json:"group" yaml:"group" toml:"group"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// Same reports whether d and other denote the same dependency. The version
// does not take part in identity and an empty group never matches.
func (d Dependency) Same(other Dependency) bool {
	return d.Group != "" && d.Group == other.Group && d.Name == other.Name
}

// Coordinate renders the dependency as group:name[:version]
func (d Dependency) Coordinate() string {
	if d.Version == "" {
		return d.Group + ":" + d.Name
	}
	return d.Group + ":" + d.Name + ":" + d.Version
}

func (d Dependency) String() string {
	return d.Coordinate()
}

// ParseCoordinate parses group:name[:version]. A bare name without group is
// accepted since Gradle reports file and project dependencies that way.
func ParseCoordinate(s string) (Dependency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dependency{}, fmt.Errorf("empty dependency coordinate")
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		return Dependency{Name: parts[0]}, nil
	case 2:
		return Dependency{Group: parts[0], Name: parts[1]}, nil
	case 3:
		return Dependency{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
	default:
		return Dependency{}, fmt.Errorf("invalid dependency coordinate %q", s)
	}
}
