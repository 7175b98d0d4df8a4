package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{Nx, Oxlint, Vitest, VscodeSettings}, Names())
	require.True(t, Has(Nx))
	require.False(t, Has("eslint"))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("eslint", []byte(`{}`))
	require.True(t, errors.Is(err, ErrUnknownSchema))
}

func TestValidate_Vitest(t *testing.T) {
	valid := `{"test":{"globals":true,"environment":"node","include":["src/**/*.test.ts"],"coverage":{"provider":"istanbul","reporter":["text"],"reportsDirectory":"coverage"}}}`
	require.NoError(t, Validate(Vitest, []byte(valid)))

	withoutCoverage := `{"test":{"globals":true,"environment":"node","include":["src/**/*.test.ts"]}}`
	require.NoError(t, Validate(Vitest, []byte(withoutCoverage)))

	badProvider := `{"test":{"globals":true,"environment":"node","include":[],"coverage":{"provider":"c8","reporter":[],"reportsDirectory":"coverage"}}}`
	err := Validate(Vitest, []byte(badProvider))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation))
	require.Contains(t, err.Error(), "/test/coverage/provider")
}

func TestValidate_Nx(t *testing.T) {
	doc := `{
  "$schema": "./node_modules/nx/schemas/nx-schema.json",
  "extends": "nx/presets/npm.json",
  "tasksRunnerOptions": {"default": {"runner": "nx/tasks-runners/default", "options": {"cacheableOperations": ["build"]}}},
  "targetDefaults": {"deploy": {"dependsOn": ["build"]}},
  "affected": {"defaultBase": "origin/main"}
}`
	require.NoError(t, Validate(Nx, []byte(doc)))

	missingBase := `{
  "$schema": "x", "extends": "y",
  "tasksRunnerOptions": {"default": {"runner": "r", "options": {}}},
  "targetDefaults": {},
  "affected": {"defaultBase": ""}
}`
	err := Validate(Nx, []byte(missingBase))
	require.True(t, errors.Is(err, ErrValidation))
}

func TestValidate_OxlintSeverity(t *testing.T) {
	require.NoError(t, Validate(Oxlint, []byte(`{"rules":{"no-undef":"error"}}`)))
	require.Error(t, Validate(Oxlint, []byte(`{"rules":{"no-undef":"fatal"}}`)))
}

func TestValidate_VscodeSettings(t *testing.T) {
	doc := `{"eslint.workingDirectories":[{"pattern":"packages/a"}],"editor.formatOnSave":true}`
	require.NoError(t, Validate(VscodeSettings, []byte(doc)))

	require.Error(t, Validate(VscodeSettings, []byte(`{"eslint.workingDirectories":[{"dir":"packages/a"}]}`)))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Oxlint, []byte(`{not json`))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrValidation))
}
