package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the meridiand command tree: offline utilities for
// relayer operators working with packet commitments and denom traces.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meridiand",
		Short:         "Meridian packet-routing utilities",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newDenomCmd(),
		newPacketCmd(),
	)
	return rootCmd
}
