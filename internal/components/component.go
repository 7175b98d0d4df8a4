// Package components holds the configuration emitters applied to projects.
// Each emitter registers a file on its project and may adjust the project's
// tasks, dev dependencies and ignore patterns.
package components

import (
	"fmt"

	"github.com/jakoblorz/go-monogen/internal/project"
)

// Bool returns a pointer to v, for options whose default is true
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// subprojectPaths returns each subproject's directory relative to p, in order
func subprojectPaths(p *project.Project) ([]string, error) {
	subs := p.Subprojects()
	paths := make([]string, 0, len(subs))
	for _, sub := range subs {
		rel, err := p.RelativePath(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subproject %s: %w", sub.Name, err)
		}
		paths = append(paths, rel)
	}
	return paths, nil
}
