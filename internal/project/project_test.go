package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingComponent struct {
	name  string
	calls *[]string
	err   error
}

func (c *recordingComponent) Name() string { return c.name }

func (c *recordingComponent) Apply(p *Project) error {
	*c.calls = append(*c.calls, c.name+"@"+p.Name)
	return c.err
}

func TestNew_RequiresAbsoluteOutDir(t *testing.T) {
	_, err := New("root", "relative/dir")
	require.True(t, errors.Is(err, ErrRelativeOutDir))

	p, err := New("", "/workspace/")
	require.NoError(t, err)
	require.Equal(t, "workspace", p.Name)
	require.Equal(t, "/workspace", p.OutDir)
	require.Nil(t, p.Parent())
}

func TestAddSubproject_ResolvesAndRejectsDuplicates(t *testing.T) {
	root, err := New("root", "/workspace")
	require.NoError(t, err)

	lib, err := root.AddSubproject("shared-lib", "examples/shared-lib")
	require.NoError(t, err)
	require.Equal(t, "/workspace/examples/shared-lib", lib.OutDir)
	require.Same(t, root, lib.Parent())
	require.Same(t, root, lib.Root())

	_, err = root.AddSubproject("other", "/workspace/examples/shared-lib/")
	require.True(t, errors.Is(err, ErrDuplicateSubproject))

	_, err = root.AddSubproject("self", ".")
	require.True(t, errors.Is(err, ErrDuplicateSubproject))

	_, err = root.AddSubproject("nowhere", "")
	require.Error(t, err)

	require.Len(t, root.Subprojects(), 1)
}

func TestRelativePath(t *testing.T) {
	root, _ := New("root", "/workspace")
	a, _ := root.AddSubproject("a", "packages/a")
	b, _ := root.AddSubproject("b", "/workspace/examples/nested/b")

	rel, err := root.RelativePath(a)
	require.NoError(t, err)
	require.Equal(t, "packages/a", rel)

	rel, err = root.RelativePath(b)
	require.NoError(t, err)
	require.Equal(t, "examples/nested/b", rel)
}

func TestAddDevDeps(t *testing.T) {
	root, _ := New("root", "/workspace")

	require.NoError(t, root.AddDevDeps("vitest@^3", "@vitest/coverage-v8@^3"))
	require.NoError(t, root.AddDevDeps("vitest@^2"))

	all := root.Deps.All()
	require.Len(t, all, 2)
	require.Equal(t, "vitest@^2", all[0].String())
	require.Equal(t, "@vitest/coverage-v8@^3", all[1].String())

	sorted := root.Deps.Sorted()
	require.Equal(t, "@vitest/coverage-v8", sorted[0].Name)

	require.Error(t, root.AddDevDeps("nx@"))
}

func TestApply_RootThenSubprojects(t *testing.T) {
	root, _ := New("root", "/workspace")
	sub, _ := root.AddSubproject("lib", "packages/lib")

	var calls []string
	root.AddComponent(&recordingComponent{name: "nx", calls: &calls})
	root.AddComponent(&recordingComponent{name: "vscode", calls: &calls})
	sub.AddComponent(&recordingComponent{name: "vitest", calls: &calls})

	require.NoError(t, root.Apply())
	require.Equal(t, []string{"nx@root", "vscode@root", "vitest@lib"}, calls)
	require.Len(t, root.Components(), 2)
}

func TestApply_PropagatesComponentError(t *testing.T) {
	root, _ := New("root", "/workspace")
	sub, _ := root.AddSubproject("lib", "packages/lib")

	boom := errors.New("boom")
	var calls []string
	sub.AddComponent(&recordingComponent{name: "oxlint", calls: &calls, err: boom})

	err := root.Apply()
	require.Error(t, err)
	require.True(t, errors.Is(err, boom))
	require.Contains(t, err.Error(), "failed to apply oxlint to lib")
}
