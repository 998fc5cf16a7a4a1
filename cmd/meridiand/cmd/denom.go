package cmd

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	transfertypes "github.com/meridian-chain/meridian/x/transfer/types"
)

func newDenomCmd() *cobra.Command {
	denomCmd := &cobra.Command{
		Use:   "denom",
		Short: "Denomination trace utilities",
	}
	denomCmd.AddCommand(newDenomHashCmd(), newDenomParseCmd())
	return denomCmd
}

func newDenomHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [trace-path]",
		Short: "Compute the voucher denomination of a denom trace path",
		Long: `Compute the local bank denomination a voucher is minted under for a full
denom trace path, e.g. "transfer/client-0/uatom".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom := transfertypes.ExtractDenomFromPath(args[0])
			if err := denom.Validate(); err != nil {
				return err
			}
			cmd.Println(denom.IBCDenom())
			return nil
		},
	}
}

func newDenomParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [trace-path]",
		Short: "Split a denom trace path into its hops and base denomination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom := transfertypes.ExtractDenomFromPath(args[0])
			if err := denom.Validate(); err != nil {
				return err
			}
			cmd.Printf("base: %s\n", denom.Base)
			for i, hop := range denom.Trace {
				cmd.Printf("hop %d: port=%s client=%s\n", i, hop.PortID, hop.ClientID)
			}
			cmd.Printf("hash: %s\n", hex.EncodeToString(denom.Hash()))
			return nil
		},
	}
}
