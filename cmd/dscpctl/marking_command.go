package main

import (
	"github.com/spf13/cobra"

	"dscpctl/internal/dscp"
)

func newSetMarkingCommand(ctx *commandContext) *cobra.Command {
	var configName string
	var instances []uint
	var flag uint32
	var mark uint32

	cmd := &cobra.Command{
		Use:   "set-marking",
		Short: "Set the DSCP marking policy of a configuration",
		Long: `Set the marking policy of a configuration on each listed dataplane
instance. Flag values: 0 never, 1 only if the original DSCP is 0, 2
always. Mark is the 6-bit DSCP value (0-63). Both are validated locally
before any instance is contacted. Instances are updated one at a time in
the order given; the first failure stops the run and instances already
updated stay updated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *dscp.Service) error {
				return svc.SetMarking(configName, toUint32(instances), flag, mark)
			})
		},
	}

	cmd.Flags().StringVar(&configName, "cfg", "", "Configuration name to operate on")
	cmd.Flags().UintSliceVarP(&instances, "instances", "i", nil, "Dataplane instances to apply the change to")
	cmd.Flags().Uint32Var(&flag, "flag", 0, "Marking flag: 0 never, 1 default-if-zero, 2 always")
	cmd.Flags().Uint32Var(&mark, "mark", 0, "DSCP mark value (0-63)")
	_ = cmd.MarkFlagRequired("cfg")
	_ = cmd.MarkFlagRequired("instances")
	_ = cmd.MarkFlagRequired("flag")
	_ = cmd.MarkFlagRequired("mark")
	return cmd
}
