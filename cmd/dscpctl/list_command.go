package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dscpctl/internal/dscp"
	"dscpctl/internal/render"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configurations known per dataplane instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return runConfigList(ctx, cmd, format)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "tree", "Output format (tree or json)")
	return cmd
}

func runConfigList(ctx *commandContext, cmd *cobra.Command, format render.Format) error {
	return ctx.withService(func(svc *dscp.Service) error {
		items, err := svc.ListConfigs()
		if err != nil {
			return err
		}
		out, err := render.ConfigList(items, format, renderOptions(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
}
