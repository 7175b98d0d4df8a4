package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidDependency is returned for dependency specs that cannot be parsed
var ErrInvalidDependency = errors.New("invalid dependency")

// DependencyType is the package.json section a dependency belongs to
type DependencyType string

const (
	DependencyRuntime DependencyType = "runtime"
	DependencyDev     DependencyType = "dev"
	DependencyPeer    DependencyType = "peer"
)

// IsValid checks if the dependency type is valid
func (d DependencyType) IsValid() bool {
	switch d {
	case DependencyRuntime, DependencyDev, DependencyPeer:
		return true
	default:
		return false
	}
}

// String returns the string representation of DependencyType
func (d DependencyType) String() string {
	return string(d)
}

// workspaceProtocol marks pnpm workspace references, which are not semver ranges
const workspaceProtocol = "workspace:"

// Dependency is a declared package dependency of a project
type Dependency struct {
	// Name is the package name, possibly scoped (e.g., "@vitest/coverage-v8")
	Name string `json:"name"`

	// Version is the version range (e.g., "^3"); "*" when none was given
	Version string `json:"version"`

	// Type is the dependency section
	Type DependencyType `json:"type"`
}

// String returns the dependency in name@range form
func (d *Dependency) String() string {
	return d.Name + "@" + d.Version
}

// ParseDependency parses a "name@range" spec.
// Scoped package names keep their leading "@"; the range follows the last "@".
func ParseDependency(spec string, depType DependencyType) (*Dependency, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty spec", ErrInvalidDependency)
	}
	if !depType.IsValid() {
		return nil, fmt.Errorf("%w: unknown dependency type %q", ErrInvalidDependency, depType)
	}

	name, version := spec, "*"
	if idx := strings.LastIndex(spec, "@"); idx > 0 {
		name, version = spec[:idx], spec[idx+1:]
	}

	if name == "" || name == "@" || strings.HasSuffix(name, "/") {
		return nil, fmt.Errorf("%w: missing package name in %q", ErrInvalidDependency, spec)
	}
	if version == "" {
		return nil, fmt.Errorf("%w: empty version range in %q", ErrInvalidDependency, spec)
	}

	if !strings.HasPrefix(version, workspaceProtocol) {
		if _, err := semver.NewConstraint(version); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDependency, spec, err)
		}
	}

	return &Dependency{
		Name:    name,
		Version: version,
		Type:    depType,
	}, nil
}
