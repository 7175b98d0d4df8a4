package project

import (
	"sort"

	"github.com/jakoblorz/go-monogen/internal/models"
)

// Dependencies is an insertion-ordered dependency log keyed by package name.
// Re-adding a package replaces its range in place.
type Dependencies struct {
	order []string
	deps  map[string]*models.Dependency
}

// NewDependencies creates an empty dependency log
func NewDependencies() *Dependencies {
	return &Dependencies{
		deps: make(map[string]*models.Dependency),
	}
}

// Add records a dependency
func (d *Dependencies) Add(dep *models.Dependency) {
	if _, exists := d.deps[dep.Name]; !exists {
		d.order = append(d.order, dep.Name)
	}
	d.deps[dep.Name] = dep
}

// Get returns the dependency recorded for name
func (d *Dependencies) Get(name string) (*models.Dependency, bool) {
	dep, ok := d.deps[name]
	return dep, ok
}

// All returns the dependencies in the order they were first declared
func (d *Dependencies) All() []*models.Dependency {
	out := make([]*models.Dependency, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.deps[name])
	}
	return out
}

// Sorted returns the dependencies sorted by name
func (d *Dependencies) Sorted() []*models.Dependency {
	out := d.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
