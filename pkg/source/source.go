// Package source holds the original source-language file text a
// diagnostic's Position points back into, so DisplayDiagnostics can print
// the offending line alongside the message.
package source

import (
	"path/filepath"
	"strings"
)

// File is one source-language file: its display name, on-disk path (when
// it has one), and content.
type File struct {
	Name    string // display name, e.g. "Widget.cs", "<generated>"
	Path    string // full file path; empty for a file with no disk location
	Content string

	lines []string // cached split lines
}

// NewFile creates a File with an explicit display name and path.
func NewFile(name, path, content string) *File {
	return &File{Name: name, Path: path, Content: content}
}

// FromPath creates a File from a file path and its already-read content,
// deriving the display name from the path's base name.
func FromPath(filePath, content string) *File {
	return NewFile(filepath.Base(filePath), filePath, content)
}

// NewGenerated creates a File with no disk location, for source text
// synthesized rather than read from a file (e.g. an inline test fixture).
func NewGenerated(name, content string) *File {
	return NewFile(name, "", content)
}

// Lines returns the file split into lines, caching the split on first call.
func (f *File) Lines() []string {
	if f.lines == nil {
		f.lines = strings.Split(f.Content, "\n")
	}
	return f.lines
}

// DisplayPath returns the best string for identifying this file in a
// diagnostic: the on-disk path when there is one, else the display name.
func (f *File) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// IsFile reports whether this File corresponds to an actual file on disk.
func (f *File) IsFile() bool {
	return f.Path != ""
}
