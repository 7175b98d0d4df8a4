package models

import "fmt"

// FileFormat is the serialization used for a generated file
type FileFormat string

const (
	FormatJSON FileFormat = "json"
	FormatYAML FileFormat = "yaml"
	FormatTOML FileFormat = "toml"
	FormatText FileFormat = "text"
)

// IsValid checks if the file format is valid
func (f FileFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatText:
		return true
	default:
		return false
	}
}

// HasGeneratedMarker reports whether files of this format start with the generated-file comment
func (f FileFormat) HasGeneratedMarker() bool {
	return f == FormatYAML || f == FormatTOML
}

// String returns the string representation of FileFormat
func (f FileFormat) String() string {
	return string(f)
}

// ParseFileFormat parses a string into a FileFormat
func ParseFileFormat(s string) (FileFormat, error) {
	ff := FileFormat(s)
	if !ff.IsValid() {
		return "", fmt.Errorf("invalid file format: %s (must be json, yaml, toml, or text)", s)
	}
	return ff, nil
}
