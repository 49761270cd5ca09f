package platform

import (
	"runtime"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	detectOnce sync.Once
	detected   Info
	detectErr  error
)

// Detect returns the running host's platform. The host is probed once per
// process; later calls return the same value.
func Detect(logger hclog.Logger) (Info, error) {
	detectOnce.Do(func() {
		detected, detectErr = detect(runtime.GOOS, runtime.GOARCH, osVersion)
		if detectErr == nil && logger != nil {
			logger.Debug("🖥️ Detected host platform",
				"os", detected.OS,
				"arch", detected.Arch,
				"version", detected.Version)
		}
	})
	return detected, detectErr
}

func detect(goos, goarch string, version func() string) (Info, error) {
	kind, err := FromGOOS(goos)
	if err != nil {
		return Info{}, err
	}
	arch, err := FromGOARCH(goarch)
	if err != nil {
		return Info{}, err
	}
	return Info{OS: kind, Arch: arch, Version: version()}, nil
}
