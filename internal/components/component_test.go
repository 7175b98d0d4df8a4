package components

import (
	"testing"

	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/schema"
	"github.com/stretchr/testify/require"
)

// newMonorepo builds a root at /repo with the given subproject directories
func newMonorepo(t *testing.T, subdirs ...string) *project.Project {
	t.Helper()

	root, err := project.New("root", "/repo")
	require.NoError(t, err)
	for _, dir := range subdirs {
		_, err := root.AddSubproject("", dir)
		require.NoError(t, err)
	}
	return root
}

// render returns the content a component registered at path
func render(t *testing.T, p *project.Project, path string) []byte {
	t.Helper()

	f, ok := p.TryFindFile(path)
	require.True(t, ok, "file %s not registered", path)

	data, err := f.Render()
	require.NoError(t, err)

	if f.Schema != "" {
		require.NoError(t, schema.Validate(f.Schema, data))
	}
	return data
}

func taskCommand(t *testing.T, p *project.Project, name string) string {
	t.Helper()

	task, ok := p.Tasks.Find(name)
	require.True(t, ok, "task %s not defined", name)
	return task.Command
}

func TestSubprojectPaths(t *testing.T) {
	root := newMonorepo(t, "packages/projen-constructs", "examples/app-a", "/repo/examples/shared-lib")

	paths, err := subprojectPaths(root)
	require.NoError(t, err)
	require.Equal(t, []string{"packages/projen-constructs", "examples/app-a", "examples/shared-lib"}, paths)

	empty, err := subprojectPaths(newMonorepo(t))
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestComponentNames(t *testing.T) {
	names := []string{}
	for _, c := range []project.Component{
		NewPnpmWorkspace(),
		NewNx(NxOptions{}),
		NewOxlint(OxlintOptions{}),
		NewVitest(VitestOptions{}),
		NewVscodeSettings(),
		NewMise(MiseOptions{}),
	} {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"pnpm-workspace", "nx", "oxlint", "vitest", "vscode-settings", "mise"}, names)
}
