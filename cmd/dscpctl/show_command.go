package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dscpctl/internal/dscp"
	"dscpctl/internal/render"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var configName string
	var instances []uint
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show DSCP configuration state per dataplane instance",
		Long: `Show the marking policy and prefix filter of a configuration on each
requested dataplane instance. Without --instances every instance known to
the service is queried, in the order the service reports them. Without
--cfg the command lists the configurations known per instance instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			if configName == "" {
				return runConfigList(ctx, cmd, format)
			}
			return ctx.withService(func(svc *dscp.Service) error {
				results, err := svc.ShowConfig(configName, toUint32(instances))
				if err != nil {
					return err
				}
				out, err := render.Show(results, format, renderOptions(cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&configName, "cfg", "", "Configuration name to show")
	cmd.Flags().UintSliceVarP(&instances, "instances", "i", nil, "Dataplane instances to query (default: all known)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "tree", "Output format (tree or json)")
	return cmd
}
