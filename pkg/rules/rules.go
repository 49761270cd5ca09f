// Package rules decides whether platform-conditional metadata entries apply to a host.
package rules

import (
	"github.com/namelessrealms/launchcore/pkg/metadata"
	"github.com/namelessrealms/launchcore/pkg/platform"
)

// Applies reports whether rules permit inclusion on host.
//
// Rules are scanned in document order and the first decisive rule wins; rules
// are not ANDed together. An allow rule decides on its OS name, or on its
// architecture when no name is given. A disallow rule decides only on an OS
// name. Anything else is skipped, and when nothing decides the entry applies.
func Applies(rules []metadata.Rule, host platform.Info) bool {
	for _, rule := range rules {
		if rule.OS == nil {
			continue
		}

		switch rule.Action {
		case metadata.ActionAllow:
			if rule.OS.Name != "" {
				return osMatches(rule.OS.Name, host.OS)
			}
			if rule.OS.Arch != "" {
				return archMatches(rule.OS.Arch, host.Arch)
			}
		case metadata.ActionDisallow:
			if rule.OS.Name != "" {
				return !osMatches(rule.OS.Name, host.OS)
			}
		}
	}

	return true
}

// osMatches compares a metadata OS name with the host. Unknown names never match.
func osMatches(name string, host platform.OSKind) bool {
	kind, ok := platform.ParseOSKind(name)
	return ok && kind == host
}

func archMatches(name string, host platform.Arch) bool {
	arch, ok := platform.ParseArch(name)
	return ok && arch == host
}
