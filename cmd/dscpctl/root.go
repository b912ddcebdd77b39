package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var endpointFlag string
	var configFlag string
	var verboseFlag int

	ctx := newCommandContext(&endpointFlag, &configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "dscpctl",
		Short:         "Control DSCP packet marking on dataplane instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Control service endpoint (host:port, tcp:// or unix://)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newPrefixCommand(ctx))
	rootCmd.AddCommand(newSetMarkingCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
