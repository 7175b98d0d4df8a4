package components

import (
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/schema"
)

// VscodeSettingsFile is the file written by VscodeSettings
const VscodeSettingsFile = ".vscode/settings.json"

type vscodeSettings struct {
	EslintWorkingDirectories []vscodeWorkingDirectory `json:"eslint.workingDirectories"`
	ImportModuleSpecifier    string                   `json:"typescript.preferences.importModuleSpecifier"`
	FormatOnSave             bool                     `json:"editor.formatOnSave"`
	CodeActionsOnSave        map[string]string        `json:"editor.codeActionsOnSave"`
}

type vscodeWorkingDirectory struct {
	Pattern string `json:"pattern"`
}

// VscodeSettings points the editor's eslint integration at each subproject
type VscodeSettings struct{}

func NewVscodeSettings() *VscodeSettings {
	return &VscodeSettings{}
}

func (c *VscodeSettings) Name() string {
	return "vscode-settings"
}

func (c *VscodeSettings) Apply(p *project.Project) error {
	paths, err := subprojectPaths(p)
	if err != nil {
		return err
	}

	dirs := make([]vscodeWorkingDirectory, len(paths))
	for i, rel := range paths {
		dirs[i] = vscodeWorkingDirectory{Pattern: rel}
	}

	settings := vscodeSettings{
		EslintWorkingDirectories: dirs,
		ImportModuleSpecifier:    "relative",
		FormatOnSave:             true,
		CodeActionsOnSave: map[string]string{
			"source.fixAll.eslint": "explicit",
		},
	}

	_, err = p.AddJSONFile(VscodeSettingsFile, settings, schema.VscodeSettings)
	return err
}
