package project

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/jakoblorz/go-monogen/internal/tasks"
)

var (
	// ErrDuplicateSubproject is returned when two projects share an output directory
	ErrDuplicateSubproject = errors.New("duplicate subproject output directory")

	// ErrRelativeOutDir is returned when a root project is created with a relative path
	ErrRelativeOutDir = errors.New("root output directory must be absolute")
)

// Component derives configuration for a project.
// Apply may register files, tasks, dependencies and ignore patterns.
type Component interface {
	Name() string
	Apply(p *Project) error
}

// Project is a unit of the monorepo with its own output directory
type Project struct {
	// Name is the project identifier
	Name string

	// OutDir is the absolute, cleaned output directory
	OutDir string

	// Tasks is the project's task registry
	Tasks *tasks.Registry

	// Deps records declared dependencies
	Deps *Dependencies

	// Gitignore collects ignore patterns for the project's .gitignore
	Gitignore *IgnoreFile

	parent      *Project
	subprojects []*Project
	components  []Component
	files       []*File
	logger      *slog.Logger
}

// Option configures a Project.
type Option func(*Project)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a root project at outDir.
func New(name, outDir string, options ...Option) (*Project, error) {
	if !filepath.IsAbs(outDir) {
		return nil, fmt.Errorf("%w: %s", ErrRelativeOutDir, outDir)
	}

	p := newProject(name, filepath.Clean(outDir), slog.Default())
	for _, option := range options {
		option(p)
	}

	return p, nil
}

func newProject(name, outDir string, logger *slog.Logger) *Project {
	if name == "" {
		name = filepath.Base(outDir)
	}

	return &Project{
		Name:      name,
		OutDir:    outDir,
		Tasks:     tasks.NewRegistry(),
		Deps:      NewDependencies(),
		Gitignore: NewIgnoreFile(),
		logger:    logger,
	}
}

// AddSubproject registers a subproject. A relative outDir is resolved
// against the project's own output directory.
func (p *Project) AddSubproject(name, outDir string) (*Project, error) {
	if outDir == "" {
		return nil, fmt.Errorf("subproject %s: output directory is required", name)
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(p.OutDir, outDir)
	}
	outDir = filepath.Clean(outDir)

	if outDir == p.OutDir {
		return nil, fmt.Errorf("%w: %s is the parent directory", ErrDuplicateSubproject, outDir)
	}
	for _, existing := range p.subprojects {
		if existing.OutDir == outDir {
			return nil, fmt.Errorf("%w: %s (already used by %s)", ErrDuplicateSubproject, outDir, existing.Name)
		}
	}

	sub := newProject(name, outDir, p.logger)
	sub.parent = p
	p.subprojects = append(p.subprojects, sub)
	return sub, nil
}

// Subprojects returns the subprojects in registration order
func (p *Project) Subprojects() []*Project {
	out := make([]*Project, len(p.subprojects))
	copy(out, p.subprojects)
	return out
}

// Parent returns the enclosing project, or nil for the root
func (p *Project) Parent() *Project {
	return p.parent
}

// Root returns the top-most project
func (p *Project) Root() *Project {
	root := p
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// RelativePath returns other's output directory relative to p's, slash-separated.
func (p *Project) RelativePath(other *Project) (string, error) {
	rel, err := filepath.Rel(p.OutDir, other.OutDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s relative to %s: %w", other.OutDir, p.OutDir, err)
	}
	return filepath.ToSlash(rel), nil
}

// Logger returns the project's diagnostic logger
func (p *Project) Logger() *slog.Logger {
	return p.logger
}

// AddDevDeps declares build-time dependencies in name@range form.
func (p *Project) AddDevDeps(specs ...string) error {
	for _, spec := range specs {
		dep, err := models.ParseDependency(spec, models.DependencyDev)
		if err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}
		p.Deps.Add(dep)
		p.logger.Debug("dependency declared", "project", p.Name, "dependency", dep.String(), "type", dep.Type.String())
	}
	return nil
}

// AddComponent registers a component to run on Apply
func (p *Project) AddComponent(c Component) {
	p.components = append(p.components, c)
}

// Components returns the registered components in order
func (p *Project) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// Apply runs the project's components, then those of each subproject.
func (p *Project) Apply() error {
	for _, c := range p.components {
		if err := c.Apply(p); err != nil {
			return fmt.Errorf("failed to apply %s to %s: %w", c.Name(), p.Name, err)
		}
		p.logger.Debug("component applied", "project", p.Name, "component", c.Name())
	}

	for _, sub := range p.subprojects {
		if err := sub.Apply(); err != nil {
			return err
		}
	}

	return nil
}
