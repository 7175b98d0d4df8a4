package cli

import (
	"fmt"

	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/tui"
	"github.com/spf13/cobra"
)

// DepsCommand handles the deps command
type DepsCommand struct {
	fs       filesystem.FileSystem
	settings *settings
}

// NewDepsCommand creates a new deps command
func NewDepsCommand(fs filesystem.FileSystem, s *settings) *cobra.Command {
	cmd := &DepsCommand{fs: fs, settings: s}

	cobraCmd := &cobra.Command{
		Use:   "deps",
		Short: "List the dev dependencies declared by components",
		Long: `Lists the dependencies each project's components declared, sorted by name.

Dependencies are only recorded; install them with your package manager.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("project", "p", "", "Only list dependencies of this project")

	return cobraCmd
}

// Run executes the deps command
func (c *DepsCommand) Run(cmd *cobra.Command, args []string) error {
	projectFlag, _ := cmd.Flags().GetString("project")

	root, err := c.settings.loadProject(cmd, c.fs)
	if err != nil {
		return err
	}

	projects, err := selectProjects(root, projectFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range projects {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", tui.HeaderStyle.Render(p.Name), tui.SubtleStyle.Render(displayPath(root, p)))

		deps := p.Deps.Sorted()
		if len(deps) == 0 {
			fmt.Fprintln(out, tui.SubtleStyle.Render("  (no dependencies)"))
			continue
		}
		for _, dep := range deps {
			fmt.Fprintf(out, "  %s %s\n", dep.String(), tui.DescStyle.Render("("+dep.Type.String()+")"))
		}
	}

	return nil
}
