package tasks

import (
	"fmt"

	"github.com/jakoblorz/go-monogen/internal/models"
)

// Registry is an insertion-ordered set of named tasks
type Registry struct {
	order []string
	tasks map[string]*models.Task
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]*models.Task),
	}
}

// Find returns the task with the given name
func (r *Registry) Find(name string) (*models.Task, bool) {
	task, ok := r.tasks[name]
	return task, ok
}

// Remove deletes the task with the given name.
// It reports whether a task was removed; a missing name is not an error.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.tasks[name]; !ok {
		return false
	}

	delete(r.tasks, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Define registers a task, replacing any task with the same name.
// A replaced task is removed and recreated, so it moves to the end.
func (r *Registry) Define(name, description, command string) (*models.Task, error) {
	if name == "" {
		return nil, fmt.Errorf("task name is required")
	}

	r.Remove(name)

	task := models.NewTask(name, description, command)
	r.tasks[name] = task
	r.order = append(r.order, name)
	return task, nil
}

// All returns the tasks in insertion order
func (r *Registry) All() []*models.Task {
	out := make([]*models.Task, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tasks[name])
	}
	return out
}

// Names returns the task names in insertion order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tasks
func (r *Registry) Len() int {
	return len(r.order)
}
