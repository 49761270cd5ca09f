package parameters

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/namelessrealms/launchcore/pkg/libraries"
	"github.com/namelessrealms/launchcore/pkg/metadata"
	"github.com/namelessrealms/launchcore/pkg/paths"
	"github.com/namelessrealms/launchcore/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowsHost = platform.Info{OS: platform.Windows, Arch: platform.X64, Version: "10.0"}
	windows32   = platform.Info{OS: platform.Windows, Arch: platform.X86, Version: "6.1"}
	macHost     = platform.Info{OS: platform.MacOS, Arch: platform.Arm, Version: "14.4"}
	linuxHost   = platform.Info{OS: platform.Linux, Arch: platform.X64, Version: "6.1.0"}
)

func testLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "builder_test",
		Level: hclog.Trace,
	})
}

func newTestBuilder(t *testing.T, host platform.Info) *Builder {
	t.Helper()
	layout := paths.NewLayout(filepath.Join("srv", "launcher"))
	return NewBuilder(Config{LauncherBrand: "brand", LauncherVersion: "1.2.3"}, host, layout, testLogger())
}

func testLibraries() []libraries.Artifact {
	return []libraries.Artifact{
		{Kind: libraries.KindArtifact, Name: "a.jar", Path: "/libs/a.jar"},
		{Kind: libraries.KindNative, Name: "n.jar", Path: "/libs/n.jar"},
		{Kind: libraries.KindArtifact, Name: "b.jar", Path: "/libs/b.jar"},
	}
}

func gameTemplates() []metadata.Template {
	return []metadata.Template{
		{Name: "--username", Key: KeyAuthPlayerName},
		{Name: "--version", Key: KeyVersionName},
		{Name: "--gameDir", Key: KeyGameDirectory},
		{Name: "--assetsDir", Key: KeyAssetsRoot},
		{Name: "--assetIndex", Key: KeyAssetsIndexName},
		{Name: "--uuid", Key: KeyAuthUUID},
		{Name: "--accessToken", Key: KeyAuthAccessToken},
		{Name: "--userType", Key: KeyUserType},
		{Name: "--versionType", Key: KeyVersionType},
		{Name: "--userProperties", Key: KeyUserProperties},
	}
}

func testContext(version string) BuildContext {
	return BuildContext{
		VersionID:     version,
		AssetsIndexID: "1.16",
		MainClass:     "net.minecraft.client.main.Main",
		Memory:        Memory{MaxMB: 4096, MinMB: 1024},
		Player: Player{
			Name:        "Steve",
			UUID:        "93ea0589-ec75-4cad-8619-995164382e8d",
			AccessToken: "null_token",
			UserType:    "mojang",
			VersionType: "release",
		},
		InstanceDir:   "/instances/main",
		AssetsDir:     "/common/assets",
		ClientJarPath: "/versions/client.jar",
		Arguments: metadata.Arguments{
			JVM: metadata.JVMArguments{
				Required: []string{"-XX:+UnlockExperimentalVMOptions", "-XX:+UseG1GC"},
				Arguments: []metadata.Template{
					{Name: "-Djava.library.path", Key: KeyNativesDirectory},
					{Name: "-Dminecraft.launcher.brand", Key: KeyLauncherName},
					{Name: "-Dminecraft.launcher.version", Key: KeyLauncherVersion},
					{Name: "-Dunknown", Key: "${unknown}"},
					{Name: "-cp", Key: KeyClasspath},
				},
			},
			Game: metadata.GameArguments{Arguments: gameTemplates()},
		},
	}
}

func expectedGameTokens() []string {
	return []string{
		"--username", "Steve",
		"--version", "1.16.5",
		"--gameDir", "/instances/main",
		"--assetsDir", "/common/assets",
		"--assetIndex", "1.16",
		"--uuid", "93ea0589-ec75-4cad-8619-995164382e8d",
		"--accessToken", "null_token",
		"--userType", "mojang",
		"--versionType", "release",
		"--userProperties", "{}",
	}
}

func TestBuild_Modern(t *testing.T) {
	b := newTestBuilder(t, linuxHost)

	spec := b.Build(testContext("1.16.5"), testLibraries())

	want := []string{
		"-XX:+UnlockExperimentalVMOptions",
		"-XX:+UseG1GC",
		"-Djava.library.path=" + b.NativesDir(),
		"-Dminecraft.launcher.brand=brand",
		"-Dminecraft.launcher.version=1.2.3",
		"-cp",
		"/libs/a.jar:/libs/n.jar:/libs/b.jar:/versions/client.jar",
		"-Xmx4096M",
		"-Xms1024M",
		"net.minecraft.client.main.Main",
	}
	want = append(want, expectedGameTokens()...)

	assert.Equal(t, want, spec.Parameters)
	assert.Equal(t, b.NativesDir(), spec.NativesDir)
}

func TestBuild_Legacy(t *testing.T) {
	ctx := testContext("1.12.2")
	ctx.Arguments.JVM = metadata.JVMArguments{}
	ctx.Arguments.Game.Arguments = ctx.Arguments.Game.Arguments[:2]

	t.Run("linux", func(t *testing.T) {
		b := newTestBuilder(t, linuxHost)
		spec := b.Build(ctx, testLibraries())

		want := []string{
			HeapDumpFlag,
			"-Dos.name=Linux",
			"-Dos.version=6.1.0",
			"-Dminecraft.launcher.brand=brand",
			"-Dminecraft.launcher.version=1.2.3",
			"-Djava.library.path=" + b.NativesDir(),
			"-cp",
			"/libs/a.jar:/libs/n.jar:/libs/b.jar:/versions/client.jar",
			"-Xmx4096M",
			"-Xms1024M",
			"net.minecraft.client.main.Main",
			"--username", "Steve",
			"--version", "1.12.2",
		}
		assert.Equal(t, want, spec.Parameters)
	})

	t.Run("windows 32-bit", func(t *testing.T) {
		b := newTestBuilder(t, windows32)
		spec := b.Build(ctx, testLibraries())

		require.GreaterOrEqual(t, len(spec.Parameters), 4)
		assert.Equal(t, []string{
			HeapDumpFlag,
			SmallStackFlag,
			"-Dos.name=Windows 6.1",
			"-Dos.version=6.1",
		}, spec.Parameters[:4])
	})

	t.Run("windows 64-bit has no stack flag", func(t *testing.T) {
		b := newTestBuilder(t, windowsHost)
		spec := b.Build(ctx, testLibraries())
		assert.NotContains(t, spec.Parameters, SmallStackFlag)
	})

	t.Run("macos omits os properties", func(t *testing.T) {
		b := newTestBuilder(t, macHost)
		spec := b.Build(ctx, testLibraries())

		for _, p := range spec.Parameters {
			assert.False(t, strings.HasPrefix(p, "-Dos.name="), p)
			assert.False(t, strings.HasPrefix(p, "-Dos.version="), p)
		}
		assert.Equal(t, "-Dminecraft.launcher.brand=brand", spec.Parameters[1])
	})
}

func TestBuild_SchemaSelection(t *testing.T) {
	b := newTestBuilder(t, linuxHost)

	for _, version := range []string{"1.13", "1.16.5"} {
		spec := b.Build(testContext(version), nil)
		assert.NotContains(t, spec.Parameters, HeapDumpFlag, version)
		assert.Equal(t, "-XX:+UnlockExperimentalVMOptions", spec.Parameters[0], version)
	}

	for _, version := range []string{"1.12.2", "1.9"} {
		spec := b.Build(testContext(version), nil)
		assert.Equal(t, HeapDumpFlag, spec.Parameters[0], version)
	}
}

func TestBuild_WindowsClasspath(t *testing.T) {
	b := newTestBuilder(t, windowsHost)

	spec := b.Build(testContext("1.16.5"), testLibraries())

	i := slices.Index(spec.Parameters, "-cp")
	require.GreaterOrEqual(t, i, 0)
	cp := spec.Parameters[i+1]
	assert.Equal(t, "/libs/a.jar;/libs/n.jar;/libs/b.jar;/versions/client.jar", cp)
	assert.True(t, strings.HasSuffix(cp, "/versions/client.jar"))
}

func TestClasspathSeparator(t *testing.T) {
	tests := []struct {
		os   platform.OSKind
		want string
	}{
		{platform.Windows, ";"},
		{platform.MacOS, ":"},
		{platform.Linux, ":"},
	}

	for _, tt := range tests {
		t.Run(tt.os.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, classpathSeparator(tt.os))
		})
	}
}

func TestBuild_EmptyLibrariesClasspath(t *testing.T) {
	b := newTestBuilder(t, linuxHost)

	spec := b.Build(testContext("1.16.5"), nil)

	i := slices.Index(spec.Parameters, "-cp")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "/versions/client.jar", spec.Parameters[i+1])
}

func TestBuild_MemoryFallbacks(t *testing.T) {
	b := newTestBuilder(t, linuxHost)

	tests := []struct {
		name string
		mem  Memory
		want []string
	}{
		{name: "configured", mem: Memory{MaxMB: 8192, MinMB: 512}, want: []string{"-Xmx8192M", "-Xms512M"}},
		{name: "zero max", mem: Memory{MaxMB: 0, MinMB: 512}, want: []string{"-Xmx2048M", "-Xms512M"}},
		{name: "zero min", mem: Memory{MaxMB: 3000, MinMB: 0}, want: []string{"-Xmx3000M", "-Xms1024M"}},
		{name: "both zero", mem: Memory{}, want: []string{"-Xmx2048M", "-Xms1024M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.memoryArguments(tt.mem))
		})
	}
}

func TestBuild_ConfiguredMemoryDefaults(t *testing.T) {
	layout := paths.NewLayout("root")
	b := NewBuilder(Config{DefaultMaxMemoryMB: 3072, DefaultMinMemoryMB: 768}, linuxHost, layout, nil)

	assert.Equal(t, []string{"-Xmx3072M", "-Xms768M"}, b.memoryArguments(Memory{}))
	assert.Equal(t, DefaultLauncherBrand, b.cfg.LauncherBrand)
}

func TestBuild_UnknownGamePlaceholderDropsPair(t *testing.T) {
	b := newTestBuilder(t, linuxHost)
	ctx := testContext("1.16.5")
	ctx.Arguments.Game.Arguments = []metadata.Template{
		{Name: "--username", Key: KeyAuthPlayerName},
		{Name: "--clientId", Key: "${clientid}"},
		{Name: "--xuid", Key: "${auth_xuid}"},
	}

	spec := b.Build(ctx, nil)

	assert.NotContains(t, spec.Parameters, "--clientId")
	assert.NotContains(t, spec.Parameters, "--xuid")
	assert.Equal(t, []string{"--username", "Steve"}, spec.Parameters[len(spec.Parameters)-2:])
}

func TestBuild_UnknownJVMPlaceholderDropped(t *testing.T) {
	b := newTestBuilder(t, linuxHost)

	spec := b.Build(testContext("1.16.5"), nil)

	for _, p := range spec.Parameters {
		assert.False(t, strings.HasPrefix(p, "-Dunknown"), p)
	}
}

func TestNewBuilder_UniqueNativesDir(t *testing.T) {
	layout := paths.NewLayout(filepath.Join("srv", "launcher"))

	const n = 64
	dirs := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dirs[i] = NewBuilder(DefaultConfig(), linuxHost, layout, nil).NativesDir()
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, d := range dirs {
		assert.False(t, seen[d], "duplicate natives dir %s", d)
		seen[d] = true
		assert.Equal(t, layout.Bin(), filepath.Dir(d))
	}
}

func TestBuild_SameBuilderIsDeterministic(t *testing.T) {
	b := newTestBuilder(t, windowsHost)
	ctx := testContext("1.16.5")

	first := b.Build(ctx, testLibraries())
	second := b.Build(ctx, testLibraries())
	assert.Equal(t, first, second)
}

func TestNewBuildContext(t *testing.T) {
	v := &metadata.Version{
		ID:         "1.16.5",
		MainClass:  "net.minecraft.client.main.Main",
		AssetIndex: metadata.AssetIndex{ID: "1.16"},
		Arguments:  metadata.Arguments{Game: metadata.GameArguments{Arguments: gameTemplates()}},
	}

	ctx := NewBuildContext(v)
	assert.Equal(t, "1.16.5", ctx.VersionID)
	assert.Equal(t, "1.16", ctx.AssetsIndexID)
	assert.Equal(t, "net.minecraft.client.main.Main", ctx.MainClass)
	assert.Len(t, ctx.Arguments.Game.Arguments, 10)
}
