package filesystem

import (
	"io/fs"
)

// FileSystem is the file access surface used while loading configuration,
// discovering subprojects and synthesizing generated files.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)

	// Glob patterns
	Glob(pattern string) ([]string, error)
}
