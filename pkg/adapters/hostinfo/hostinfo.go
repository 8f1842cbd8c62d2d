// Package hostinfo reports the platform the process was built for.
package hostinfo

import (
	"runtime"

	"github.com/user/deskbridge/pkg/ports"
)

// Host implements ports.HostInfo from the runtime package constants.
type Host struct{}

// New creates a new Host.
func New() *Host {
	return &Host{}
}

// OS returns runtime.GOOS.
func (h *Host) OS() string {
	return runtime.GOOS
}

// Arch returns runtime.GOARCH.
func (h *Host) Arch() string {
	return runtime.GOARCH
}

// Family returns the coarse platform class for runtime.GOOS.
func (h *Host) Family() string {
	return FamilyOf(runtime.GOOS)
}

// FamilyOf maps a GOOS value to "windows", "wasm" or "unix".
func FamilyOf(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "js", "wasip1":
		return "wasm"
	default:
		return "unix"
	}
}

var _ ports.HostInfo = (*Host)(nil)
