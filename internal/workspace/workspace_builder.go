package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-monogen/internal/filesystem"
)

// WorkspaceBuilder helps create test workspaces
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

// AddPackage adds a directory with a package.json; an empty name leaves the field out
func (wb *WorkspaceBuilder) AddPackage(name, path string) *WorkspaceBuilder {
	packageRoot := filepath.Join(wb.root, path)
	wb.fs.AddDir(packageRoot)

	manifest := "{}\n"
	if name != "" {
		manifest = fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"0.0.0\"\n}\n", name)
	}
	wb.fs.AddFile(filepath.Join(packageRoot, "package.json"), []byte(manifest))

	return wb
}

// AddDir adds an empty directory
func (wb *WorkspaceBuilder) AddDir(path string) *WorkspaceBuilder {
	wb.fs.AddDir(filepath.Join(wb.root, path))
	return wb
}

// AddGitignore writes the root .gitignore
func (wb *WorkspaceBuilder) AddGitignore(content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, ".gitignore"), []byte(content))
	return wb
}

// AddConfig writes the root monogen.yaml
func (wb *WorkspaceBuilder) AddConfig(content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, ConfigFileName), []byte(content))
	return wb
}

// AddRootManifest writes the root package.json with the given workspaces globs
func (wb *WorkspaceBuilder) AddRootManifest(content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, "package.json"), []byte(content))
	return wb
}

// Build finalizes the workspace and returns the filesystem
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	return wb.fs
}
