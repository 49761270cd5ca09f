package main

import (
	"github.com/spf13/cobra"
)

func newLibrariesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraries",
		Short: "List the library artifacts this host needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(cmd, opts)
			if err != nil {
				return err
			}
			p.logger.Info("📚 Library plan ready", "version", p.version.ID, "os", p.host.OS, "count", len(p.artifacts))
			return renderLibraries(cmd.OutOrStdout(), p.artifacts, opts.libFormat)
		},
	}
	cmd.Flags().StringVarP(&opts.libFormat, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}
