package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PacketStatus is the outcome of an application receive callback.
type PacketStatus int

const (
	// PacketStatusSuccess indicates the application executed the payload.
	PacketStatusSuccess PacketStatus = iota
	// PacketStatusFailure indicates a business-logic failure. The router
	// converts it into the universal error acknowledgement instead of
	// aborting, so the packet lifecycle still closes cleanly.
	PacketStatusFailure
)

// RecvPacketResult is returned by OnRecvPacket. On success Acknowledgement
// carries the app-defined ack bytes; on failure it is ignored and the
// universal error acknowledgement is recorded.
type RecvPacketResult struct {
	Status          PacketStatus
	Acknowledgement []byte
}

// IBCApp is the callback surface an application exposes to the router. One
// application owns each port; the router dispatches every payload to the app
// owning its port and serializes all access, so callbacks are the only
// writers of application ledger state.
type IBCApp interface {
	// OnSendPacket validates and locks value for an outgoing payload. An
	// error aborts the whole SendPacket call; nothing has been committed yet.
	OnSendPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload Payload, signer sdk.AccAddress) error

	// OnRecvPacket executes an incoming payload. Business failures are
	// reported through the result status, never by aborting the transaction.
	OnRecvPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload Payload, relayer sdk.AccAddress) RecvPacketResult

	// OnAcknowledgementPacket finalizes a sent payload. success is derived
	// from whether the counterparty recorded the universal error ack.
	OnAcknowledgementPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload Payload, ack []byte, relayer sdk.AccAddress) error

	// OnTimeoutPacket reverts a sent payload that provably never arrived.
	OnTimeoutPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload Payload, relayer sdk.AccAddress) error
}
