package initflow

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-monogen/internal/config"
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/jakoblorz/go-monogen/internal/tui"
)

// Flow asks for the starter configuration using huh forms.
type Flow struct {
	answers Answers
	theme   *huh.Theme
}

// NewFlow constructs a Flow prefilled with DefaultAnswers.
func NewFlow(name string) *Flow {
	return &Flow{
		answers: DefaultAnswers(name),
		theme:   tui.NewHuhTheme(),
	}
}

// Run executes the form; returns nil config on user abort.
func (f *Flow) Run() (*config.Config, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&f.answers.Name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Package globs").
				Description("Comma-separated directories searched for package.json").
				Value(&f.answers.Discover),
		).
			Title("Monorepo"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Root components").
				Options(
					huh.NewOption("pnpm-workspace.yaml", ComponentPnpmWorkspace),
					huh.NewOption("nx.json", ComponentNx),
					huh.NewOption(".vscode/settings.json", ComponentVscode),
					huh.NewOption(".mise.toml", ComponentMise),
				).
				Value(&f.answers.RootComponents),
			huh.NewMultiSelect[string]().
				Title("Subproject components").
				Options(
					huh.NewOption("oxlint", ComponentOxlint),
					huh.NewOption("vitest", ComponentVitest),
				).
				Value(&f.answers.SubComponents),
		).
			Title("Components"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Coverage provider").
				Options(
					huh.NewOption("v8", string(models.CoverageV8)),
					huh.NewOption("istanbul", string(models.CoverageIstanbul)),
				).
				Value(&f.answers.CoverageProvider),
		).
			Title("Vitest"),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return f.answers.Config(), nil
}
