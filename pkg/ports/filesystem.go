// Package ports defines the interfaces the command layer and the shells depend on.
package ports

// FileSystem abstracts the host file operations behind the file commands.
type FileSystem interface {
	// ReadFile reads the entire contents of a file as UTF-8 text.
	ReadFile(path string) (string, error)

	// WriteFile replaces the contents of a file, creating it if absent.
	// Missing parent directories are not created.
	WriteFile(path string, contents string) error

	// Exists reports whether a single stat of path succeeds.
	// The error is non-nil when the answer could not be determined.
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error
}
