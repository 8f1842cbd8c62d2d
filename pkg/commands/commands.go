// Package commands implements the operations the front end can invoke.
//
// Each command is a single pass-through to the host: no caching, no retry,
// and no logging. Errors are returned as-is for the bridge to stringify.
package commands

import (
	"fmt"

	"github.com/user/deskbridge/pkg/ports"
)

// Command names as the front end invokes them.
const (
	GetSystemInfo = "get_system_info"
	FileExists    = "file_exists"
	ReadFile      = "read_file"
	WriteFile     = "write_file"
)

// Commands holds the host ports the commands delegate to.
type Commands struct {
	fs   ports.FileSystem
	host ports.HostInfo
}

// New creates Commands backed by fs and host.
func New(fs ports.FileSystem, host ports.HostInfo) *Commands {
	return &Commands{fs: fs, host: host}
}

// SystemInfo describes the host as "OS: {os}, Architecture: {arch}, OS Family: {family}".
func (c *Commands) SystemInfo() string {
	return fmt.Sprintf("OS: %s, Architecture: %s, OS Family: %s",
		c.host.OS(), c.host.Arch(), c.host.Family())
}

// FileExists reports whether path can be stat'ed right now.
// Failures to determine the answer count as false.
func (c *Commands) FileExists(path string) bool {
	ok, err := c.fs.Exists(path)
	if err != nil {
		return false
	}
	return ok
}

// ReadFile returns the whole file as text.
func (c *Commands) ReadFile(path string) (string, error) {
	return c.fs.ReadFile(path)
}

// WriteFile replaces the file at path with contents.
func (c *Commands) WriteFile(path, contents string) error {
	return c.fs.WriteFile(path, contents)
}
