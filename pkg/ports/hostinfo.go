package ports

// HostInfo reports static facts about the running platform.
type HostInfo interface {
	// OS returns the operating system identifier (e.g. "linux").
	OS() string

	// Arch returns the CPU architecture identifier (e.g. "amd64").
	Arch() string

	// Family returns the coarse platform class: "unix", "windows" or "wasm".
	Family() string
}
