package parameters

import (
	"fmt"

	"github.com/namelessrealms/launchcore/pkg/platform"
)

// jvmStrategy produces the JVM flags that precede the shared memory,
// main-class and game-argument tail.
type jvmStrategy interface {
	name() string
	jvmArguments(b *Builder, ctx *BuildContext, classpath string) []string
}

func selectStrategy(versionID string) jvmStrategy {
	if IsModern(versionID) {
		return modernStrategy{}
	}
	return legacyStrategy{}
}

// modernStrategy expands the templated JVM block of 1.13+ metadata.
type modernStrategy struct{}

func (modernStrategy) name() string { return "modern" }

func (modernStrategy) jvmArguments(b *Builder, ctx *BuildContext, classpath string) []string {
	jvm := ctx.Arguments.JVM
	args := make([]string, 0, len(jvm.Required)+len(jvm.Arguments)+1)
	args = append(args, jvm.Required...)

	for _, tmpl := range jvm.Arguments {
		var value string
		switch tmpl.Key {
		case KeyClasspath:
			args = append(args, "-cp", classpath)
			continue
		case KeyNativesDirectory:
			value = b.nativesDir
		case KeyLauncherName:
			value = b.cfg.LauncherBrand
		case KeyLauncherVersion:
			value = b.cfg.LauncherVersion
		default:
			b.logger.Trace("⏭️ Dropping JVM template", "name", tmpl.Name, "key", tmpl.Key)
			continue
		}
		args = append(args, tmpl.Name+"="+value)
	}

	return args
}

// legacyStrategy emits the fixed flag set pre-1.13 clients expect.
type legacyStrategy struct{}

func (legacyStrategy) name() string { return "legacy" }

func (legacyStrategy) jvmArguments(b *Builder, ctx *BuildContext, classpath string) []string {
	args := []string{HeapDumpFlag}

	if b.host.Arch == platform.X86 {
		args = append(args, SmallStackFlag)
	}

	args = append(args, osProperties(b.host)...)

	return append(args,
		"-Dminecraft.launcher.brand="+b.cfg.LauncherBrand,
		"-Dminecraft.launcher.version="+b.cfg.LauncherVersion,
		"-Djava.library.path="+b.nativesDir,
		"-cp",
		classpath,
	)
}

// osProperties returns the os.name/os.version overrides. macOS is left to the
// JVM's own values and gets neither.
func osProperties(host platform.Info) []string {
	switch host.OS {
	case platform.Windows:
		return []string{
			fmt.Sprintf("-Dos.name=Windows %s", host.Version),
			"-Dos.version=" + host.Version,
		}
	case platform.Linux:
		return []string{
			"-Dos.name=Linux",
			"-Dos.version=" + host.Version,
		}
	case platform.MacOS:
		return nil
	}
	return nil
}
