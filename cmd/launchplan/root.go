package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/namelessrealms/launchcore/internal/config"
	"github.com/namelessrealms/launchcore/pkg/libraries"
	"github.com/namelessrealms/launchcore/pkg/logging"
	"github.com/namelessrealms/launchcore/pkg/metadata"
	"github.com/namelessrealms/launchcore/pkg/platform"
	"github.com/spf13/cobra"
)

var errInvalidArgs = errors.New("❌ invalid arguments")

// options holds the flags shared by every subcommand.
type options struct {
	configFile   string
	metadataPath string
	libFormat    string
	cmdFormat    string
	targetOS     string
	targetArch   string
}

// plan is everything a subcommand needs after loading inputs.
type plan struct {
	cfg       *config.Config
	logger    hclog.Logger
	host      platform.Info
	version   *metadata.Version
	artifacts []libraries.Artifact
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "launchplan",
		Short:         "Show the library plan and launch command for a client version",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Path to launchcore.yaml")
	pf.StringVarP(&opts.metadataPath, "metadata", "m", "", "Path to the version metadata JSON (required)")
	pf.StringVar(&opts.targetOS, "target-os", "", "Plan for another OS (windows, osx, linux)")
	pf.StringVar(&opts.targetArch, "target-arch", "", "Plan for another architecture (x86, x64, arm)")
	pf.String("root-dir", "", "Launcher root directory")
	pf.String("instance", "", "Instance name under instances/")
	pf.String("log-level", "", "Log level (trace, debug, info, warn, error, json:<level>)")
	pf.Int("max-memory", 0, "Maximum heap in MB (0 uses the fallback)")
	pf.Int("min-memory", 0, "Initial heap in MB (0 uses the fallback)")
	pf.String("player-name", "", "Offline player name")

	if err := rootCmd.MarkPersistentFlagRequired("metadata"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newLibrariesCmd(opts), newCommandCmd(opts))
	return rootCmd
}

// loadPlan reads config, detects the host and resolves the libraries.
func loadPlan(cmd *cobra.Command, opts *options) (*plan, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger("launchplan", cfg.LogLevel, cmd.ErrOrStderr())

	host, err := resolveHost(opts, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("📖 Reading version metadata", "path", opts.metadataPath)
	v, err := metadata.Load(opts.metadataPath)
	if err != nil {
		return nil, err
	}

	resolver := libraries.NewResolver(cfg.Layout(), logger.Named("libraries"))
	return &plan{
		cfg:       cfg,
		logger:    logger,
		host:      host,
		version:   v,
		artifacts: resolver.Resolve(v.Libraries, host),
	}, nil
}

// resolveHost detects the host and applies --target-os/--target-arch.
func resolveHost(opts *options, logger hclog.Logger) (platform.Info, error) {
	host, err := platform.Detect(logger)
	if err != nil && (opts.targetOS == "" || opts.targetArch == "") {
		return platform.Info{}, err
	}

	if opts.targetOS != "" {
		kind, ok := platform.ParseOSKind(opts.targetOS)
		if !ok {
			return platform.Info{}, fmt.Errorf("%w: unknown --target-os %q", errInvalidArgs, opts.targetOS)
		}
		if kind != host.OS {
			host.Version = ""
		}
		host.OS = kind
	}
	if opts.targetArch != "" {
		arch, ok := platform.ParseArch(opts.targetArch)
		if !ok {
			return platform.Info{}, fmt.Errorf("%w: unknown --target-arch %q", errInvalidArgs, opts.targetArch)
		}
		host.Arch = arch
	}
	return host, nil
}
