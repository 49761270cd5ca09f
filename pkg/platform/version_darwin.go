//go:build darwin

package platform

import "golang.org/x/sys/unix"

// osVersion returns the product version (e.g. "14.4.1"), falling back to the
// kernel release.
func osVersion() string {
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		return v
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
