package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes
var (
	PacketCommitmentPrefix      = []byte{0x01} // prefix for packet send commitments
	PacketReceiptPrefix         = []byte{0x02} // prefix for packet receipts
	PacketAcknowledgementPrefix = []byte{0x03} // prefix for acknowledgement commitments
	NextSequenceSendPrefix      = []byte{0x04} // prefix for next send sequence per client
	CounterpartyPrefix          = []byte{0x05} // prefix for counterparty records per client
)

// PacketCommitmentKey returns the store key for a packet send commitment.
func PacketCommitmentKey(clientID string, sequence uint64) []byte {
	return packetKey(PacketCommitmentPrefix, clientID, sequence)
}

// PacketReceiptKey returns the store key for a packet receipt.
func PacketReceiptKey(clientID string, sequence uint64) []byte {
	return packetKey(PacketReceiptPrefix, clientID, sequence)
}

// PacketAcknowledgementKey returns the store key for an acknowledgement commitment.
func PacketAcknowledgementKey(clientID string, sequence uint64) []byte {
	return packetKey(PacketAcknowledgementPrefix, clientID, sequence)
}

// NextSequenceSendKey returns the store key for the next send sequence of a client.
func NextSequenceSendKey(clientID string) []byte {
	return append(NextSequenceSendPrefix, []byte(clientID)...)
}

// CounterpartyKey returns the store key for a client's counterparty record.
func CounterpartyKey(clientID string) []byte {
	return append(CounterpartyPrefix, []byte(clientID)...)
}

func packetKey(prefix []byte, clientID string, sequence uint64) []byte {
	key := append(prefix, []byte(clientID)...)
	key = append(key, byte(0))
	return append(key, sdk.Uint64ToBigEndian(sequence)...)
}

// Commitment paths are the byte paths a counterparty proves against under its
// merkle prefix. They mirror the local store keys so both chains agree on the
// exact location of every lifecycle record.

// PacketCommitmentPath returns the counterparty proof path for a send commitment.
func PacketCommitmentPath(clientID string, sequence uint64) []byte {
	return PacketCommitmentKey(clientID, sequence)
}

// PacketReceiptPath returns the counterparty proof path for a receipt.
func PacketReceiptPath(clientID string, sequence uint64) []byte {
	return PacketReceiptKey(clientID, sequence)
}

// PacketAcknowledgementPath returns the counterparty proof path for an ack commitment.
func PacketAcknowledgementPath(clientID string, sequence uint64) []byte {
	return PacketAcknowledgementKey(clientID, sequence)
}
