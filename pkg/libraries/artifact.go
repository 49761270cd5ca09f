package libraries

import "fmt"

// Kind distinguishes classpath jars from native-library archives.
type Kind int

const (
	KindArtifact Kind = iota
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindArtifact:
		return "artifact"
	case KindNative:
		return "native"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Artifact is one resolved library file for the current host. It is
// recomputed for every launch and never persisted.
type Artifact struct {
	Kind         Kind   `json:"kind" yaml:"kind"`
	Name         string `json:"name" yaml:"name"`
	RelativePath string `json:"relative_path" yaml:"relative_path"`
	Path         string `json:"path" yaml:"path"`
	SHA1         string `json:"sha1" yaml:"sha1"`
	Size         int64  `json:"size" yaml:"size"`
	URL          string `json:"url" yaml:"url"`
}

// Filter returns the artifacts of the given kind, preserving order.
func Filter(artifacts []Artifact, kind Kind) []Artifact {
	var out []Artifact
	for _, a := range artifacts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// TotalSize sums the declared sizes of artifacts.
func TotalSize(artifacts []Artifact) int64 {
	var total int64
	for _, a := range artifacts {
		total += a.Size
	}
	return total
}
