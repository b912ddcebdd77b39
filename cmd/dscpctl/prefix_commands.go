package main

import (
	"github.com/spf13/cobra"

	"dscpctl/internal/dscp"
)

func newPrefixCommand(ctx *commandContext) *cobra.Command {
	prefixCmd := &cobra.Command{
		Use:   "prefix",
		Short: "Edit the input prefix filter of a configuration",
	}

	prefixCmd.AddCommand(newPrefixAddCommand(ctx))
	prefixCmd.AddCommand(newPrefixRemoveCommand(ctx))

	return prefixCmd
}

func newPrefixAddCommand(ctx *commandContext) *cobra.Command {
	var configName string
	var instances []uint
	var prefixes []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add prefixes to the input filter",
		Long: `Add prefixes to the input filter of a configuration on each listed
dataplane instance. Instances are updated one at a time in the order
given; the first failure stops the run and instances already updated stay
updated. Rerun the command to finish the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parsePrefixes(prefixes)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *dscp.Service) error {
				return svc.AddPrefixes(configName, toUint32(instances), parsed)
			})
		},
	}

	addPrefixFlags(cmd, &configName, &instances, &prefixes)
	return cmd
}

func newPrefixRemoveCommand(ctx *commandContext) *cobra.Command {
	var configName string
	var instances []uint
	var prefixes []string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove prefixes from the input filter",
		Long: `Remove prefixes from the input filter of a configuration on each listed
dataplane instance. Instances are updated one at a time in the order
given; the first failure stops the run and instances already updated stay
updated. Rerun the command to finish the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parsePrefixes(prefixes)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *dscp.Service) error {
				return svc.RemovePrefixes(configName, toUint32(instances), parsed)
			})
		},
	}

	addPrefixFlags(cmd, &configName, &instances, &prefixes)
	return cmd
}

func addPrefixFlags(cmd *cobra.Command, configName *string, instances *[]uint, prefixes *[]string) {
	cmd.Flags().StringVar(configName, "cfg", "", "Configuration name to operate on")
	cmd.Flags().UintSliceVarP(instances, "instances", "i", nil, "Dataplane instances to apply the change to")
	cmd.Flags().StringSliceVarP(prefixes, "prefix", "p", nil, "Network prefix (repeatable)")
	_ = cmd.MarkFlagRequired("cfg")
	_ = cmd.MarkFlagRequired("instances")
	_ = cmd.MarkFlagRequired("prefix")
}
