package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform is returned when the host OS or architecture has no mapping.
var ErrUnsupportedPlatform = errors.New("❌ unsupported platform")

// OSKind is the host operating system family.
type OSKind int

const (
	Windows OSKind = iota
	MacOS
	Linux
)

// Arch is the host CPU architecture.
type Arch int

const (
	X86 Arch = iota
	X64
	Arm
)

// Info is the detected host platform.
type Info struct {
	OS      OSKind
	Arch    Arch
	Version string
}

// String returns the metadata spelling of the OS ("windows", "osx", "linux").
func (k OSKind) String() string {
	switch k {
	case Windows:
		return "windows"
	case MacOS:
		return "osx"
	case Linux:
		return "linux"
	}
	return fmt.Sprintf("OSKind(%d)", int(k))
}

// String returns the metadata spelling of the architecture ("x86", "x64", "arm").
func (a Arch) String() string {
	switch a {
	case X86:
		return "x86"
	case X64:
		return "x64"
	case Arm:
		return "arm"
	}
	return fmt.Sprintf("Arch(%d)", int(a))
}

// ParseOSKind maps a metadata OS name to an OSKind. Both "osx" and "macos"
// name MacOS.
func ParseOSKind(name string) (OSKind, bool) {
	switch strings.ToLower(name) {
	case "windows":
		return Windows, true
	case "osx", "macos":
		return MacOS, true
	case "linux":
		return Linux, true
	}
	return 0, false
}

// ParseArch maps a metadata architecture name to an Arch.
func ParseArch(name string) (Arch, bool) {
	switch strings.ToLower(name) {
	case "x86":
		return X86, true
	case "x64":
		return X64, true
	case "arm":
		return Arm, true
	}
	return 0, false
}

// FromGOOS maps a runtime.GOOS value to an OSKind.
func FromGOOS(goos string) (OSKind, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return 0, fmt.Errorf("%w: os %q", ErrUnsupportedPlatform, goos)
}

// FromGOARCH maps a runtime.GOARCH value to an Arch.
func FromGOARCH(goarch string) (Arch, error) {
	switch goarch {
	case "386":
		return X86, nil
	case "amd64":
		return X64, nil
	case "arm", "arm64":
		return Arm, nil
	}
	return 0, fmt.Errorf("%w: arch %q", ErrUnsupportedPlatform, goarch)
}
