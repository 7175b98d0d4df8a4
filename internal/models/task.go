package models

// Task is a named entry in a project's task registry
type Task struct {
	// Name is the task identifier (unique within a registry)
	Name string `json:"name"`

	// Description is a short human-readable summary
	Description string `json:"description,omitempty"`

	// Command is the shell command the task runs
	Command string `json:"exec"`
}

// NewTask creates a new Task instance
func NewTask(name, description, command string) *Task {
	return &Task{
		Name:        name,
		Description: description,
		Command:     command,
	}
}

// Reset replaces the command of the task, keeping its name and description
func (t *Task) Reset(command string) {
	t.Command = command
}
