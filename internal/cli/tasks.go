package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/jakoblorz/go-monogen/internal/tui"
	"github.com/spf13/cobra"
)

// Output formats of the tasks command
const (
	formatText = "text"
	formatJSON = "json"
)

// TasksCommand handles the tasks command
type TasksCommand struct {
	fs       filesystem.FileSystem
	settings *settings
}

// ProjectTasks is the per-project view rendered by the tasks command
type ProjectTasks struct {
	Project string         `json:"project"`
	Path    string         `json:"path"`
	Tasks   []*models.Task `json:"tasks"`
}

// NewTasksCommand creates a new tasks command
func NewTasksCommand(fs filesystem.FileSystem, s *settings) *cobra.Command {
	cmd := &TasksCommand{fs: fs, settings: s}

	cobraCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of each project",
		Long: `Lists the task registry of the root project and every subproject after
all components have been applied.

--template renders each project with a Go text/template. The template sees
.Project, .Path and .Tasks (each with .Name, .Description and .Command) and
has the sprig function library available.`,
		Example: `  # All tasks as text
  monogen tasks

  # Tasks of one project as JSON
  monogen tasks --project shared-lib --format json

  # Custom rendering
  monogen tasks --template '{{ range .Tasks }}{{ $.Project }}:{{ .Name | upper }}{{ "\n" }}{{ end }}'`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("project", "p", "", "Only list tasks of this project")
	cobraCmd.Flags().StringP("format", "f", formatText, "Output format (text, json)")
	cobraCmd.Flags().StringP("template", "t", "", "Render each project with a Go template")

	return cobraCmd
}

// Run executes the tasks command
func (c *TasksCommand) Run(cmd *cobra.Command, args []string) error {
	projectFlag, _ := cmd.Flags().GetString("project")
	formatFlag, _ := cmd.Flags().GetString("format")
	templateFlag, _ := cmd.Flags().GetString("template")

	if formatFlag != formatText && formatFlag != formatJSON {
		return fmt.Errorf("unsupported format %q (must be text or json)", formatFlag)
	}

	root, err := c.settings.loadProject(cmd, c.fs)
	if err != nil {
		return err
	}

	projects, err := selectProjects(root, projectFlag)
	if err != nil {
		return err
	}

	views := make([]ProjectTasks, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectTasks{
			Project: p.Name,
			Path:    displayPath(root, p),
			Tasks:   p.Tasks.All(),
		})
	}

	out := cmd.OutOrStdout()
	switch {
	case templateFlag != "":
		return renderTemplate(out, templateFlag, views)
	case formatFlag == formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to encode tasks: %w", err)
		}
		return nil
	default:
		renderTasksText(out, views)
		return nil
	}
}

func renderTemplate(out io.Writer, text string, views []ProjectTasks) error {
	tmpl, err := template.New("tasks").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	for _, view := range views {
		if err := tmpl.Execute(out, view); err != nil {
			return fmt.Errorf("failed to render template for %s: %w", view.Project, err)
		}
	}
	return nil
}

func renderTasksText(out io.Writer, views []ProjectTasks) {
	for i, view := range views {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", tui.HeaderStyle.Render(view.Project), tui.SubtleStyle.Render(view.Path))

		if len(view.Tasks) == 0 {
			fmt.Fprintln(out, tui.SubtleStyle.Render("  (no tasks)"))
			continue
		}

		width := 0
		for _, task := range view.Tasks {
			width = max(width, len(task.Name))
		}
		for _, task := range view.Tasks {
			line := fmt.Sprintf("  %s  %s", task.Name+strings.Repeat(" ", width-len(task.Name)), task.Command)
			if task.Description != "" {
				line += "  " + tui.DescStyle.Render(task.Description)
			}
			fmt.Fprintln(out, line)
		}
	}
}

