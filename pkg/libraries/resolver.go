// Package libraries turns library descriptors into the artifacts a host needs.
package libraries

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/namelessrealms/launchcore/pkg/metadata"
	"github.com/namelessrealms/launchcore/pkg/paths"
	"github.com/namelessrealms/launchcore/pkg/platform"
	"github.com/namelessrealms/launchcore/pkg/rules"
)

// Resolver resolves descriptors against a host platform. It performs no I/O.
type Resolver struct {
	layout *paths.Layout
	logger hclog.Logger
}

// NewResolver creates a Resolver placing artifacts under layout's libraries root.
func NewResolver(layout *paths.Layout, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{layout: layout, logger: logger}
}

// Resolve returns the artifacts that apply to host, in descriptor order. A
// descriptor may yield both an artifact and a native entry, in that order.
func (r *Resolver) Resolve(descriptors []metadata.Library, host platform.Info) []Artifact {
	var resolved []Artifact

	for _, lib := range descriptors {
		if len(lib.Rules) > 0 && !rules.Applies(lib.Rules, host) {
			r.logger.Trace("⏭️ Library excluded by rules", "library", lib.Name)
			continue
		}

		if file := lib.Downloads.Artifact; file != nil {
			kind := KindArtifact
			// Newer metadata ships natives as plain artifacts named "...natives...".
			if strings.Contains(lib.Name, "natives") {
				kind = KindNative
			}
			if a, ok := r.artifact(lib.Name, kind, file); ok {
				resolved = append(resolved, a)
			}
		}

		if len(lib.Downloads.Classifiers) > 0 {
			file, key := selectClassifier(lib.Downloads.Classifiers, host.OS)
			if file == nil {
				r.logger.Trace("⏭️ No classifier for host", "library", lib.Name, "os", host.OS)
				continue
			}
			r.logger.Trace("📦 Selected native classifier", "library", lib.Name, "classifier", key)
			if a, ok := r.artifact(lib.Name, KindNative, file); ok {
				resolved = append(resolved, a)
			}
		}
	}

	r.logger.Debug("📚 Resolved libraries", "descriptors", len(descriptors), "artifacts", len(resolved))
	return resolved
}

// artifact places file under the libraries root. Paths that would escape the
// root are skipped.
func (r *Resolver) artifact(library string, kind Kind, file *metadata.File) (Artifact, bool) {
	if !filepath.IsLocal(filepath.FromSlash(file.Path)) {
		r.logger.Trace("⏭️ Library path outside libraries root", "library", library, "path", file.Path)
		return Artifact{}, false
	}
	return Artifact{
		Kind:         kind,
		Name:         lastSegment(file.Path),
		RelativePath: file.Path,
		Path:         r.layout.Library(file.Path),
		SHA1:         file.SHA1,
		Size:         file.Size,
		URL:          file.URL,
	}, true
}

// classifierKeys lists the classifier spellings for an OS in preference order.
func classifierKeys(os platform.OSKind) []string {
	switch os {
	case platform.Windows:
		return []string{"natives-windows"}
	case platform.MacOS:
		return []string{"natives-macos", "natives-osx"}
	case platform.Linux:
		return []string{"natives-linux"}
	}
	return nil
}

func selectClassifier(classifiers map[string]*metadata.File, os platform.OSKind) (*metadata.File, string) {
	for _, key := range classifierKeys(os) {
		if file := classifiers[key]; file != nil {
			return file, key
		}
	}
	return nil, ""
}

func lastSegment(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
