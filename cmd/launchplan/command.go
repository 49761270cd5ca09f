package main

import (
	"github.com/namelessrealms/launchcore/pkg/parameters"
	"github.com/spf13/cobra"
)

func newCommandCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print the Java command tokens for this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(cmd, opts)
			if err != nil {
				return err
			}

			layout := p.cfg.Layout()
			ctx := parameters.NewBuildContext(p.version)
			ctx.Memory = p.cfg.MemoryRange()
			ctx.Player = p.cfg.PlayerIdentity()
			ctx.InstanceDir = layout.Instance(p.cfg.Instance)
			ctx.AssetsDir = layout.Assets()
			ctx.ClientJarPath = layout.ClientJar(p.version.ID)

			builder := parameters.NewBuilder(p.cfg.ParametersConfig(), p.host, layout, p.logger.Named("parameters"))
			spec := builder.Build(ctx, p.artifacts)

			p.logger.Info("🚀 Launch command ready", "version", p.version.ID, "tokens", len(spec.Parameters))
			return renderLaunchSpec(cmd.OutOrStdout(), spec, opts.cmdFormat)
		},
	}
	cmd.Flags().StringVarP(&opts.cmdFormat, "format", "f", "lines", "Output format (lines, json, yaml)")
	return cmd
}
