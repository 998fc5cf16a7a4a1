package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

func newPacketCmd() *cobra.Command {
	packetCmd := &cobra.Command{
		Use:   "packet",
		Short: "Packet commitment utilities",
	}
	packetCmd.AddCommand(newPacketCommitCmd(), newPacketKeyCmd())
	return packetCmd
}

func newPacketCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit [packet.json]",
		Short: "Compute the commitment hash of a packet",
		Long: `Compute the commitment hash the sending chain stores for a packet. The
argument is a JSON file with the packet fields; pass "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bz []byte
			var err error
			if args[0] == "-" {
				bz, err = io.ReadAll(cmd.InOrStdin())
			} else {
				bz, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			var packet routertypes.Packet
			if err := json.Unmarshal(bz, &packet); err != nil {
				return fmt.Errorf("cannot decode packet: %w", err)
			}
			if err := packet.ValidateBasic(); err != nil {
				return err
			}
			cmd.Println(hex.EncodeToString(routertypes.CommitPacket(packet)))
			return nil
		},
	}
}

func newPacketKeyCmd() *cobra.Command {
	var sequence uint64

	keyCmd := &cobra.Command{
		Use:   "key [kind] [client-id]",
		Short: "Print the store key of a packet lifecycle record",
		Long:  `Print the hex store key for one of: commitment, receipt, ack.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := routertypes.ValidateClientID(args[1]); err != nil {
				return err
			}
			var key []byte
			switch args[0] {
			case "commitment":
				key = routertypes.PacketCommitmentKey(args[1], sequence)
			case "receipt":
				key = routertypes.PacketReceiptKey(args[1], sequence)
			case "ack":
				key = routertypes.PacketAcknowledgementKey(args[1], sequence)
			default:
				return fmt.Errorf("unknown record kind %q", args[0])
			}
			cmd.Println(hex.EncodeToString(key))
			return nil
		},
	}
	keyCmd.Flags().Uint64Var(&sequence, "sequence", 1, "packet sequence")
	return keyCmd
}
