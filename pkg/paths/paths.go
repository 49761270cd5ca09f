// Package paths composes the launcher's on-disk locations. Nothing here
// touches the filesystem except DefaultRoot, which only reads the environment.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	CommonDir    = "common"
	InstancesDir = "instances"
	LibrariesDir = "libraries"
	AssetsDir    = "assets"
	BinDir       = "bin"
	VersionsDir  = "versions"

	// RootEnv overrides the default launcher root.
	RootEnv = "LAUNCHCORE_HOME"
	appName = "launchcore"
)

// Layout resolves every launcher path from a single root directory.
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at root.
func NewLayout(root string) *Layout {
	return &Layout{root: filepath.Clean(root)}
}

// Root returns the launcher root directory.
func (l *Layout) Root() string {
	return l.root
}

// ==================== Shared store ====================

// Common returns the directory shared by every instance.
func (l *Layout) Common() string {
	return filepath.Join(l.root, CommonDir)
}

// Libraries returns the artifacts root that library relative paths resolve against.
func (l *Layout) Libraries() string {
	return filepath.Join(l.Common(), LibrariesDir)
}

// Library returns the absolute path of a library given its slash-separated
// relative path from metadata.
func (l *Layout) Library(relative string) string {
	return filepath.Join(l.Libraries(), filepath.FromSlash(relative))
}

// Assets returns the shared assets directory.
func (l *Layout) Assets() string {
	return filepath.Join(l.Common(), AssetsDir)
}

// Bin returns the binary-support directory holding per-launch natives.
func (l *Layout) Bin() string {
	return filepath.Join(l.Common(), BinDir)
}

// Natives returns the natives directory for one launch.
func (l *Layout) Natives(id string) string {
	return filepath.Join(l.Bin(), id)
}

// ClientJar returns the client jar path for a version id.
func (l *Layout) ClientJar(versionID string) string {
	return filepath.Join(l.Common(), VersionsDir, versionID, versionID+".jar")
}

// ==================== Instances ====================

// Instances returns the directory holding every game instance.
func (l *Layout) Instances() string {
	return filepath.Join(l.root, InstancesDir)
}

// Instance returns the game directory of a named instance.
func (l *Layout) Instance(name string) string {
	return filepath.Join(l.Instances(), name)
}

// DefaultRoot returns the platform default launcher root.
func DefaultRoot() string {
	if dir := os.Getenv(RootEnv); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", appName)
		}
	case "linux":
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, appName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".local", "share", appName)
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	return filepath.Join(os.TempDir(), appName)
}
