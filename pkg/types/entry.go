package types

import "strings"

// Entry is a single item of a repository listing.
type Entry struct {
	// Path is the display path, relative to the listed location.
	Path string `json:"path"`

	// IsDir marks directories. Directories are displayed with a trailing
	// separator and the directory style.
	IsDir bool `json:"isdir"`

	// IsOut marks entries that are tracked data outputs rather than plain
	// files known to the workspace.
	IsOut bool `json:"isout"`

	// IsExec marks executable files.
	IsExec bool `json:"isexec"`

	// Size is the byte size of the entry. Nil means the size is unknown or
	// not applicable, which is different from a zero-byte entry.
	Size *int64 `json:"size"`
}

// Separator is the path separator used in entry paths, regardless of the
// host operating system.
const Separator = "/"

// SizeOf returns a pointer to n, for building entries with a known size.
func SizeOf(n int64) *int64 {
	return &n
}

// HasSize reports whether the entry carries a size.
func (e Entry) HasSize() bool {
	return e.Size != nil
}

// BaseName returns the final path component of the entry, ignoring any
// trailing separators. The root entry has an empty base name.
func (e Entry) BaseName() string {
	p := strings.TrimRight(e.Path, Separator)
	if i := strings.LastIndex(p, Separator); i >= 0 {
		return p[i+1:]
	}
	return p
}

// DisplayPath returns the visible path text. Directories end with exactly
// one separator.
func (e Entry) DisplayPath() string {
	if !e.IsDir {
		return e.Path
	}
	return strings.TrimRight(e.Path, Separator) + Separator
}
