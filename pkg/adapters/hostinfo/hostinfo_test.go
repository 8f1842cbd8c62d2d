package hostinfo

import (
	"runtime"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "windows"},
		{"linux", "unix"},
		{"darwin", "unix"},
		{"freebsd", "unix"},
		{"android", "unix"},
		{"ios", "unix"},
		{"js", "wasm"},
		{"wasip1", "wasm"},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.goos); got != tt.want {
			t.Errorf("FamilyOf(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestHost(t *testing.T) {
	h := New()
	if h.OS() != runtime.GOOS {
		t.Errorf("OS() = %q, want %q", h.OS(), runtime.GOOS)
	}
	if h.Arch() != runtime.GOARCH {
		t.Errorf("Arch() = %q, want %q", h.Arch(), runtime.GOARCH)
	}
	if h.Family() == "" {
		t.Error("Family() returned empty string")
	}
}
