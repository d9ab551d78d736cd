// Package types holds the shared value types for relink.
package types

import "io/fs"

// Link declares a desired symlink: a link at Destination pointing to Source.
// Both fields may contain ${name} references and a leading tilde.
type Link struct {
	Source      string `koanf:"source" toml:"source"`
	Destination string `koanf:"destination" toml:"destination"`
	Force       bool   `koanf:"force" toml:"force"`
}

// ExpandedLink is a Link after variable interpolation and tilde expansion
// have been applied exactly once. Its paths are ready for filesystem calls.
type ExpandedLink struct {
	Source      string
	Destination string
	Force       bool
}

// FS abstracts the filesystem operations relink needs, so the inspector
// and mutator stay free of direct os calls.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
}
