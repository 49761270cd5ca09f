//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// osVersion returns "major.minor" as reported by RtlGetVersion.
func osVersion() string {
	info := windows.RtlGetVersion()
	if info == nil {
		return ""
	}
	return fmt.Sprintf("%d.%d", info.MajorVersion, info.MinorVersion)
}
