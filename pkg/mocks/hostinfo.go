package mocks

import "github.com/user/deskbridge/pkg/ports"

// HostInfo is a fixed ports.HostInfo.
type HostInfo struct {
	OSValue     string
	ArchValue   string
	FamilyValue string
}

// NewHostInfo creates a HostInfo reporting the given values.
func NewHostInfo(os, arch, family string) *HostInfo {
	return &HostInfo{OSValue: os, ArchValue: arch, FamilyValue: family}
}

func (m *HostInfo) OS() string     { return m.OSValue }
func (m *HostInfo) Arch() string   { return m.ArchValue }
func (m *HostInfo) Family() string { return m.FamilyValue }

var _ ports.HostInfo = (*HostInfo)(nil)
