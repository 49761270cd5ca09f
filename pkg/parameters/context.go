package parameters

import "github.com/namelessrealms/launchcore/pkg/metadata"

// Memory is the requested heap range in megabytes. Zero selects the
// configured fallback for that bound.
type Memory struct {
	MaxMB int
	MinMB int
}

// Player is the identity substituted into game arguments.
type Player struct {
	Name        string
	UUID        string
	AccessToken string
	UserType    string
	VersionType string
}

// BuildContext is everything one launch needs besides the resolved libraries.
type BuildContext struct {
	VersionID     string
	AssetsIndexID string
	MainClass     string
	Memory        Memory
	Player        Player
	InstanceDir   string
	AssetsDir     string
	ClientJarPath string
	Arguments     metadata.Arguments
}

// NewBuildContext fills the metadata-derived fields of a BuildContext from v.
func NewBuildContext(v *metadata.Version) BuildContext {
	return BuildContext{
		VersionID:     v.ID,
		AssetsIndexID: v.AssetIndex.ID,
		MainClass:     v.MainClass,
		Arguments:     v.Arguments,
	}
}
