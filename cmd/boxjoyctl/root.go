package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "boxjoyctl",
		Short:         "Inspect and maintain a BoxJoy collection",
		Long:          "boxjoyctl reads the collection from the store configured through the same environment as the API server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newSeriesCommand(ctx))
	rootCmd.AddCommand(newItemsCommand(ctx))
	rootCmd.AddCommand(newSlotsCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newResetCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))

	return rootCmd
}
