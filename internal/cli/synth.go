package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/tui"
	"github.com/spf13/cobra"
)

// SynthCommand handles the synth command
type SynthCommand struct {
	fs       filesystem.FileSystem
	settings *settings
}

// NewSynthCommand creates a new synth command
func NewSynthCommand(fs filesystem.FileSystem, s *settings) *cobra.Command {
	cmd := &SynthCommand{fs: fs, settings: s}

	cobraCmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate configuration files",
		Long: `Applies every configured component and writes the generated files.

Files whose content did not change are left untouched. Existing .gitignore
files are extended with missing patterns, never rewritten.`,
		Example: `  # Generate all files
  monogen synth

  # Show what would change without writing
  monogen synth --dry-run`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("dry-run", false, "Report changes without writing files")

	return cobraCmd
}

// Run executes the synth command
func (c *SynthCommand) Run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	root, err := c.settings.loadProject(cmd, c.fs)
	if err != nil {
		return err
	}

	report, err := root.Synth(c.fs, project.WithDryRun(dryRun))
	if err != nil {
		return fmt.Errorf("failed to synthesize: %w", err)
	}

	out := cmd.OutOrStdout()
	unchanged := 0
	for _, f := range report.Files {
		if f.Status == project.StatusUnchanged {
			unchanged++
			continue
		}

		verb := string(f.Status)
		if dryRun {
			verb = "would be " + verb
		}
		fmt.Fprintf(out, "%s %s %s\n", tui.SuccessStyle.Render("✓"), relativeTo(root.OutDir, f.Path), tui.SubtleStyle.Render(verb))
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "%s %s\n", tui.WarningStyle.Render("⚠️ "), warning)
	}

	changed := len(report.Files) - unchanged
	if dryRun {
		fmt.Fprintf(out, "• Dry run: %d file(s) would change, %d unchanged\n", changed, unchanged)
	} else {
		fmt.Fprintf(out, "• %d file(s) written, %d unchanged\n", changed, unchanged)
	}

	return nil
}

func relativeTo(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}
