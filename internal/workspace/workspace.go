package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
)

// ConfigFileName is the project configuration looked up by Detect
const ConfigFileName = "monogen.yaml"

// ErrWorkspaceNotFound is returned when no configuration file exists in the current directory or above
var ErrWorkspaceNotFound = errors.New("workspace not found")

// Package is a directory holding a package.json inside the workspace
type Package struct {
	// Name comes from package.json, falling back to the directory name
	Name string

	// Path is the absolute package directory
	Path string

	// ManifestPath is the absolute path of the package.json
	ManifestPath string
}

// Workspace is the monorepo root and the packages discovered under it.
type Workspace struct {
	fs         filesystem.FileSystem
	configName string
	RootPath   string
	ConfigPath string
	Packages   []*Package
}

// Option configures workspace behavior.
type Option func(*Workspace)

// WithConfigFile changes the file name Detect looks for.
func WithConfigFile(name string) Option {
	return func(w *Workspace) {
		if name != "" {
			w.configName = name
		}
	}
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem, options ...Option) *Workspace {
	ws := &Workspace{
		fs:         fs,
		configName: ConfigFileName,
		Packages:   []*Package{},
	}

	for _, option := range options {
		option(ws)
	}

	return ws
}

// Detect walks up from the current directory to the nearest configuration file.
func (w *Workspace) Detect() error {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath, found := findFileUp(w.fs, cwd, w.configName)
	if !found {
		return fmt.Errorf("%w: no %s in %s or any parent", ErrWorkspaceNotFound, w.configName, cwd)
	}

	w.ConfigPath = configPath
	w.RootPath = filepath.Dir(configPath)
	return nil
}

// Discover matches patterns against the root and records every directory that holds a package.json.
// Packages appear in pattern order, alphabetically within one pattern.
// Directories excluded by the root .gitignore are skipped.
func (w *Workspace) Discover(patterns []string) ([]*Package, error) {
	if w.RootPath == "" {
		return nil, fmt.Errorf("workspace root is not set")
	}

	ignore, err := w.loadRootGitIgnore()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var packages []*Package
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := w.fs.Glob(filepath.Join(w.RootPath, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := w.fs.Stat(match)
			if err != nil || !info.IsDir() || match == w.RootPath {
				continue
			}
			if _, ok := seen[match]; ok {
				continue
			}

			manifestPath := filepath.Join(match, "package.json")
			if !w.fs.Exists(manifestPath) {
				continue
			}

			rel, err := filepath.Rel(w.RootPath, match)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s: %w", match, err)
			}
			if isIgnored(ignore, filepath.ToSlash(rel)) {
				continue
			}

			pkg, err := readPackageJSON(w.fs, manifestPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read package.json at %s: %w", manifestPath, err)
			}

			seen[match] = struct{}{}
			packages = append(packages, packageFromManifest(pkg, match, manifestPath))
		}
	}

	packages = dedupePackageNames(packages)
	w.Packages = packages
	return packages, nil
}

// ManifestWorkspaces returns the workspace globs declared in the root package.json.
// Workspaces can be an array or an object with a packages array.
func (w *Workspace) ManifestWorkspaces() ([]string, error) {
	rootPackagePath := filepath.Join(w.RootPath, "package.json")
	if !w.fs.Exists(rootPackagePath) {
		return nil, nil
	}

	rootPkg, err := readPackageJSON(w.fs, rootPackagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read root package.json: %w", err)
	}

	return extractWorkspaces(rootPkg), nil
}

// GetPackage returns a discovered package by name.
func (w *Workspace) GetPackage(name string) (*Package, error) {
	for _, p := range w.Packages {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("package %s not found in workspace", name)
}

func (w *Workspace) loadRootGitIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(w.RootPath, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), w.RootPath, nil), nil
}

// isIgnored checks rel and each of its parent directories
func isIgnored(ignore gitignore.GitIgnore, rel string) bool {
	if ignore == nil {
		return false
	}

	parts := strings.Split(rel, "/")
	for i := 1; i <= len(parts); i++ {
		if match := ignore.Relative(strings.Join(parts[:i], "/"), true); match != nil && match.Ignore() {
			return true
		}
	}
	return false
}

func packageFromManifest(pkg packageJSON, rootPath, manifestPath string) *Package {
	name := pkg.Name
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(rootPath)
	}

	return &Package{
		Name:         name,
		Path:         rootPath,
		ManifestPath: manifestPath,
	}
}

func dedupePackageNames(packages []*Package) []*Package {
	used := make(map[string]int)
	for _, p := range packages {
		name := p.Name
		if used[name] > 0 {
			name = fmt.Sprintf("%s-%d", name, used[name]+1)
		}

		used[p.Name]++
		p.Name = name
	}

	return packages
}

// packageJSON represents a minimal subset of package.json.
// See https://docs.npmjs.com/cli/v10/using-npm/workspaces.
type packageJSON struct {
	Name       string      `json:"name"`
	Workspaces interface{} `json:"workspaces"`
}

func readPackageJSON(fs filesystem.FileSystem, path string) (packageJSON, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return packageJSON{}, err
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return packageJSON{}, err
	}

	return pkg, nil
}

func extractWorkspaces(pkg packageJSON) []string {
	switch v := pkg.Workspaces.(type) {
	case nil:
		return nil
	case []interface{}:
		return convertWorkspaceArray(v)
	case map[string]interface{}:
		if raw, ok := v["packages"]; ok {
			if arr, ok := raw.([]interface{}); ok {
				return convertWorkspaceArray(arr)
			}
		}
	}
	return nil
}

func convertWorkspaceArray(values []interface{}) []string {
	var result []string
	for _, item := range values {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}
	return result
}
