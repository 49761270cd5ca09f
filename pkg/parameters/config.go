package parameters

// Config holds the launcher-wide constants a Builder stamps into every launch.
type Config struct {
	LauncherBrand      string
	LauncherVersion    string
	DefaultMaxMemoryMB int
	DefaultMinMemoryMB int
}

// DefaultConfig returns the built-in launcher identity and memory fallbacks.
func DefaultConfig() Config {
	return Config{
		LauncherBrand:      DefaultLauncherBrand,
		LauncherVersion:    DefaultLauncherVersion,
		DefaultMaxMemoryMB: DefaultMaxMemoryMB,
		DefaultMinMemoryMB: DefaultMinMemoryMB,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LauncherBrand == "" {
		c.LauncherBrand = d.LauncherBrand
	}
	if c.LauncherVersion == "" {
		c.LauncherVersion = d.LauncherVersion
	}
	if c.DefaultMaxMemoryMB == 0 {
		c.DefaultMaxMemoryMB = d.DefaultMaxMemoryMB
	}
	if c.DefaultMinMemoryMB == 0 {
		c.DefaultMinMemoryMB = d.DefaultMinMemoryMB
	}
	return c
}
