//go:build linux

package platform

import "golang.org/x/sys/unix"

// osVersion returns the kernel release, which is what the JVM reports as os.version.
func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
