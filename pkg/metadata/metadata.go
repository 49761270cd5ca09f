// Package metadata holds the parsed version-metadata document consumed by the
// launch core: library descriptors, platform rules and argument templates.
package metadata

// Version is one client version's metadata document.
type Version struct {
	ID         string     `json:"id"`
	Type       string     `json:"type,omitempty"`
	MainClass  string     `json:"mainClass"`
	AssetIndex AssetIndex `json:"assetIndex"`
	Downloads  Downloads  `json:"downloads"`
	Libraries  []Library  `json:"libraries"`
	Arguments  Arguments  `json:"arguments"`
}

type AssetIndex struct {
	ID        string `json:"id"`
	SHA1      string `json:"sha1,omitempty"`
	Size      int64  `json:"size,omitempty"`
	TotalSize int64  `json:"totalSize,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Downloads lists the version-level files. Only the client jar is used when
// assembling the classpath.
type Downloads struct {
	Client File `json:"client"`
}

// File is a single downloadable file. Path is relative to the store root it
// belongs to and is empty for version-level files.
type File struct {
	Path string `json:"path,omitempty"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Library is one support-library descriptor.
type Library struct {
	Name      string           `json:"name"`
	Rules     []Rule           `json:"rules,omitempty"`
	Downloads LibraryDownloads `json:"downloads"`
}

// LibraryDownloads is either a unified artifact, a per-OS classifier map, or
// both. Classifier keys use the "natives-<os>" spelling; macOS appears as
// either "natives-macos" or "natives-osx".
type LibraryDownloads struct {
	Artifact    *File            `json:"artifact,omitempty"`
	Classifiers map[string]*File `json:"classifiers,omitempty"`
}

// RuleAction is a rule's effect when its constraint matches.
type RuleAction string

const (
	ActionAllow    RuleAction = "allow"
	ActionDisallow RuleAction = "disallow"
)

// Rule is a platform-conditional inclusion rule.
type Rule struct {
	Action RuleAction    `json:"action"`
	OS     *OSConstraint `json:"os,omitempty"`
}

// OSConstraint restricts a rule to an OS name, an architecture, or both.
// Empty fields are absent.
type OSConstraint struct {
	Name string `json:"name,omitempty"`
	Arch string `json:"arch,omitempty"`
}

// Arguments carries both JVM and game argument blocks.
type Arguments struct {
	JVM  JVMArguments  `json:"jvm"`
	Game GameArguments `json:"game"`
}

// JVMArguments is the modern JVM block. Required tokens are emitted verbatim;
// templates are expanded by placeholder key.
type JVMArguments struct {
	Required  []string   `json:"required,omitempty"`
	Arguments []Template `json:"arguments,omitempty"`
}

type GameArguments struct {
	Arguments []Template `json:"arguments,omitempty"`
}

// Template pairs a flag name with a "${...}" placeholder key.
type Template struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}
