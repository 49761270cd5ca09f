// Package parameters assembles the command-line tokens that start the client
// runtime.
//
// A Builder owns one freshly allocated natives directory, so concurrent
// launches never share extraction state as long as each uses its own Builder.
// Build is pure: it reads only its arguments and the Builder's immutable
// fields.
package parameters

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/namelessrealms/launchcore/pkg/libraries"
	"github.com/namelessrealms/launchcore/pkg/paths"
	"github.com/namelessrealms/launchcore/pkg/platform"
)

// LaunchSpec is the final launch plan handed to the process spawner.
type LaunchSpec struct {
	NativesDir string   `json:"natives_dir" yaml:"natives_dir"`
	Parameters []string `json:"parameters" yaml:"parameters"`
}

// Builder produces LaunchSpecs for one launch attempt.
type Builder struct {
	cfg        Config
	host       platform.Info
	nativesDir string
	logger     hclog.Logger
}

// NewBuilder creates a Builder and allocates its natives directory path under
// layout's binary-support directory. The directory itself is not created.
func NewBuilder(cfg Config, host platform.Info, layout *paths.Layout, logger hclog.Logger) *Builder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	b := &Builder{
		cfg:        cfg.withDefaults(),
		host:       host,
		nativesDir: layout.Natives(uuid.NewString()),
		logger:     logger,
	}
	logger.Debug("📁 Allocated natives directory", "path", b.nativesDir)
	return b
}

// NativesDir returns the natives directory allocated for this Builder.
func (b *Builder) NativesDir() string {
	return b.nativesDir
}

// Build returns the ordered command tokens for ctx and the resolved libraries.
func (b *Builder) Build(ctx BuildContext, libs []libraries.Artifact) LaunchSpec {
	strategy := selectStrategy(ctx.VersionID)
	b.logger.Debug("🔧 Building launch parameters",
		"version", ctx.VersionID,
		"schema", strategy.name(),
		"libraries", len(libs))

	params := strategy.jvmArguments(b, &ctx, b.classpath(ctx, libs))
	params = append(params, b.memoryArguments(ctx.Memory)...)
	params = append(params, ctx.MainClass)
	params = append(params, b.gameArguments(&ctx)...)

	logParametersTrace(params, ctx.Player.AccessToken, b.logger)

	return LaunchSpec{
		NativesDir: b.nativesDir,
		Parameters: params,
	}
}

// classpath joins every artifact path in resolver order, natives included,
// followed by the client jar.
func (b *Builder) classpath(ctx BuildContext, libs []libraries.Artifact) string {
	entries := make([]string, 0, len(libs)+1)
	for _, lib := range libs {
		entries = append(entries, lib.Path)
	}
	entries = append(entries, ctx.ClientJarPath)
	return strings.Join(entries, classpathSeparator(b.host.OS))
}

func classpathSeparator(os platform.OSKind) string {
	if os == platform.Windows {
		return ";"
	}
	return ":"
}

func (b *Builder) memoryArguments(mem Memory) []string {
	maxMB := mem.MaxMB
	if maxMB == 0 {
		maxMB = b.cfg.DefaultMaxMemoryMB
	}
	minMB := mem.MinMB
	if minMB == 0 {
		minMB = b.cfg.DefaultMinMemoryMB
	}
	return []string{
		fmt.Sprintf("-Xmx%dM", maxMB),
		fmt.Sprintf("-Xms%dM", minMB),
	}
}

// gameArguments substitutes each (flag, placeholder) pair. A pair with an
// unrecognized placeholder is dropped whole.
func (b *Builder) gameArguments(ctx *BuildContext) []string {
	var args []string
	for _, tmpl := range ctx.Arguments.Game.Arguments {
		value, ok := gameValue(ctx, tmpl.Key)
		if !ok {
			b.logger.Trace("⏭️ Dropping game argument", "name", tmpl.Name, "key", tmpl.Key)
			continue
		}
		args = append(args, tmpl.Name, value)
	}
	return args
}

func gameValue(ctx *BuildContext, key string) (string, bool) {
	switch key {
	case KeyAuthPlayerName:
		return ctx.Player.Name, true
	case KeyVersionName:
		return ctx.VersionID, true
	case KeyGameDirectory:
		return ctx.InstanceDir, true
	case KeyAssetsRoot:
		return ctx.AssetsDir, true
	case KeyAssetsIndexName:
		return ctx.AssetsIndexID, true
	case KeyAuthUUID:
		return ctx.Player.UUID, true
	case KeyAuthAccessToken:
		return ctx.Player.AccessToken, true
	case KeyUserType:
		return ctx.Player.UserType, true
	case KeyVersionType:
		return ctx.Player.VersionType, true
	case KeyUserProperties:
		return emptyUserProperties, true
	}
	return "", false
}

// logParametersTrace logs the final tokens at trace level with the access token redacted.
func logParametersTrace(params []string, secret string, logger hclog.Logger) {
	if !logger.IsTrace() {
		return
	}
	for i, p := range params {
		if secret != "" && p == secret {
			p = "***"
		}
		logger.Trace("  →", "index", i, "token", p)
	}
}
