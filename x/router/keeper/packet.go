package keeper

import (
	"bytes"
	"encoding/hex"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// SendPacket runs the sending half of the packet lifecycle: timeout policy,
// sequence allocation, application send callbacks and commitment storage.
// Any callback error aborts the whole call; nothing has been locked yet.
func (k Keeper) SendPacket(
	ctx sdk.Context,
	sourceClient string,
	timeoutTimestamp uint64,
	payloads []types.Payload,
	signer sdk.AccAddress,
) (uint64, error) {
	_, counterparty, err := k.getLightClient(ctx, sourceClient)
	if err != nil {
		return 0, err
	}

	now := uint64(ctx.BlockTime().Unix())
	if timeoutTimestamp <= now {
		return 0, errorsmod.Wrapf(types.ErrTimeoutInPast,
			"timeout %d is not after current time %d", timeoutTimestamp, now)
	}
	timeoutDuration := time.Duration(timeoutTimestamp-now) * time.Second
	if timeoutDuration > types.MaxTimeoutDuration {
		return 0, errorsmod.Wrapf(types.ErrInvalidTimeoutDuration,
			"maximum timeout duration is %s, requested %s", types.MaxTimeoutDuration, timeoutDuration)
	}

	sequence := k.nextSequenceSend(ctx, sourceClient)
	packet := types.NewPacket(sequence, sourceClient, counterparty.ClientID, timeoutTimestamp, payloads...)
	if err := packet.ValidateBasic(); err != nil {
		return 0, err
	}

	for _, payload := range packet.Payloads {
		app, err := k.Route(payload.SourcePort)
		if err != nil {
			return 0, err
		}
		if err := app.OnSendPacket(ctx, packet.SourceClient, packet.DestinationClient, sequence, payload, signer); err != nil {
			return 0, errorsmod.Wrapf(err, "send callback failed for port %q", payload.SourcePort)
		}
	}

	k.SetPacketCommitment(ctx, sourceClient, sequence, types.CommitPacket(packet))
	k.emitSendPacketEvent(ctx, packet)

	k.Logger(ctx).Debug("packet sent",
		"source_client", sourceClient,
		"destination_client", packet.DestinationClient,
		"sequence", sequence,
		"timeout_timestamp", timeoutTimestamp,
	)
	return sequence, nil
}

// RecvPacket runs the receiving half of the lifecycle. A replay of an
// already-received sequence is a Noop (nil acknowledgement, nil error); proof
// failure, an elapsed timeout and an unregistered destination port abort with
// no state change. Business failures inside app callbacks roll back the
// callback writes and record the universal error acknowledgement instead.
func (k Keeper) RecvPacket(
	ctx sdk.Context,
	packet types.Packet,
	proof []byte,
	proofHeight uint64,
	relayer sdk.AccAddress,
) (*types.Acknowledgement, error) {
	if err := packet.ValidateBasic(); err != nil {
		return nil, err
	}

	lightClient, counterparty, err := k.getLightClient(ctx, packet.DestinationClient)
	if err != nil {
		return nil, err
	}
	if counterparty.ClientID != packet.SourceClient {
		return nil, errorsmod.Wrapf(types.ErrInvalidCounterparty,
			"packet source client %q does not match counterparty %q of client %q",
			packet.SourceClient, counterparty.ClientID, packet.DestinationClient)
	}

	// Replay guard: a second delivery is the defined idempotent response, not
	// an error. No proof verification, no re-execution.
	if k.HasPacketReceipt(ctx, packet.DestinationClient, packet.Sequence) {
		k.emitNoopEvent(ctx, types.EventTypeRecvPacket, packet.DestinationClient, packet.Sequence)
		return nil, nil
	}

	// An acknowledgement without a receipt means the lifecycle records are
	// inconsistent; never overwrite a written acknowledgement.
	if k.HasPacketAcknowledgement(ctx, packet.DestinationClient, packet.Sequence) {
		return nil, errorsmod.Wrapf(types.ErrAcknowledgementExists,
			"sequence %d on client %q", packet.Sequence, packet.DestinationClient)
	}

	commitmentPath := counterparty.MerklePath(types.PacketCommitmentPath(packet.SourceClient, packet.Sequence))
	if err := lightClient.VerifyMembership(ctx, packet.DestinationClient, proofHeight, proof, commitmentPath, types.CommitPacket(packet)); err != nil {
		return nil, errorsmod.Wrapf(types.ErrMembershipVerification,
			"packet commitment for sequence %d on client %q: %s", packet.Sequence, packet.DestinationClient, err)
	}

	now := uint64(ctx.BlockTime().Unix())
	if packet.TimeoutTimestamp <= now {
		return nil, errorsmod.Wrapf(types.ErrTimeoutElapsed,
			"timeout %d is not after current time %d", packet.TimeoutTimestamp, now)
	}

	// Run every payload callback against a branched store: a failure in any
	// payload discards all application writes and downgrades the whole packet
	// to the universal error acknowledgement. The receipt is still recorded
	// so the lifecycle closes and the sender gets a definitive failure.
	ack := types.Acknowledgement{}
	cacheCtx, writeFn := ctx.CacheContext()
	failed := false
	for _, payload := range packet.Payloads {
		app, err := k.Route(payload.DestinationPort)
		if err != nil {
			return nil, err
		}
		result := app.OnRecvPacket(cacheCtx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, relayer)
		if result.Status != types.PacketStatusSuccess {
			failed = true
			break
		}
		if len(result.Acknowledgement) == 0 {
			return nil, errorsmod.Wrapf(types.ErrInvalidAcknowledgement,
				"application for port %q returned an empty acknowledgement", payload.DestinationPort)
		}
		ack.AppAcknowledgements = append(ack.AppAcknowledgements, result.Acknowledgement)
	}
	if failed {
		ack = types.NewErrorAcknowledgement()
	} else {
		writeFn()
	}

	k.SetPacketReceipt(ctx, packet.DestinationClient, packet.Sequence)
	k.SetPacketAcknowledgement(ctx, packet.DestinationClient, packet.Sequence, types.CommitAcknowledgement(ack))
	k.emitRecvPacketEvent(ctx, packet, !failed)

	return &ack, nil
}

// AcknowledgePacket closes a sent packet with its proven acknowledgement. A
// missing send-commitment means the packet was already acked or timed out;
// that replay is a Noop.
func (k Keeper) AcknowledgePacket(
	ctx sdk.Context,
	packet types.Packet,
	ack types.Acknowledgement,
	proof []byte,
	proofHeight uint64,
	relayer sdk.AccAddress,
) error {
	commitment, found := k.GetPacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	if !found {
		k.emitNoopEvent(ctx, types.EventTypeAcknowledgePacket, packet.SourceClient, packet.Sequence)
		return nil
	}
	if err := k.checkCommitment(commitment, packet); err != nil {
		return err
	}
	if err := ack.Validate(); err != nil {
		return err
	}
	if !ack.IsError() && len(ack.AppAcknowledgements) != len(packet.Payloads) {
		return errorsmod.Wrapf(types.ErrInvalidAcknowledgement,
			"expected %d app acknowledgements, got %d", len(packet.Payloads), len(ack.AppAcknowledgements))
	}

	lightClient, counterparty, err := k.getLightClient(ctx, packet.SourceClient)
	if err != nil {
		return err
	}
	if counterparty.ClientID != packet.DestinationClient {
		return errorsmod.Wrapf(types.ErrInvalidCounterparty,
			"packet destination client %q does not match counterparty %q of client %q",
			packet.DestinationClient, counterparty.ClientID, packet.SourceClient)
	}

	ackPath := counterparty.MerklePath(types.PacketAcknowledgementPath(packet.DestinationClient, packet.Sequence))
	if err := lightClient.VerifyMembership(ctx, packet.SourceClient, proofHeight, proof, ackPath, types.CommitAcknowledgement(ack)); err != nil {
		return errorsmod.Wrapf(types.ErrMembershipVerification,
			"acknowledgement for sequence %d on client %q: %s", packet.Sequence, packet.SourceClient, err)
	}

	isSuccess := !ack.IsError()
	for i, payload := range packet.Payloads {
		app, err := k.Route(payload.SourcePort)
		if err != nil {
			return err
		}
		appAck := types.ErrorAcknowledgement
		if isSuccess {
			appAck = ack.AppAcknowledgements[i]
		}
		if err := app.OnAcknowledgementPacket(ctx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, appAck, relayer); err != nil {
			return errorsmod.Wrapf(err, "acknowledgement callback failed for port %q", payload.SourcePort)
		}
	}

	k.DeletePacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	k.emitAcknowledgePacketEvent(ctx, packet, isSuccess)
	return nil
}

// TimeoutPacket closes a sent packet whose timeout elapsed on the
// counterparty (judged by the consensus timestamp at the proof height) and
// whose receipt is proven absent there. The timeout callback always refunds.
func (k Keeper) TimeoutPacket(
	ctx sdk.Context,
	packet types.Packet,
	proof []byte,
	proofHeight uint64,
	relayer sdk.AccAddress,
) error {
	commitment, found := k.GetPacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	if !found {
		k.emitNoopEvent(ctx, types.EventTypeTimeoutPacket, packet.SourceClient, packet.Sequence)
		return nil
	}
	if err := k.checkCommitment(commitment, packet); err != nil {
		return err
	}

	lightClient, counterparty, err := k.getLightClient(ctx, packet.SourceClient)
	if err != nil {
		return err
	}
	if counterparty.ClientID != packet.DestinationClient {
		return errorsmod.Wrapf(types.ErrInvalidCounterparty,
			"packet destination client %q does not match counterparty %q of client %q",
			packet.DestinationClient, counterparty.ClientID, packet.SourceClient)
	}

	proofTimestamp, err := lightClient.TimestampAtHeight(ctx, packet.SourceClient, proofHeight)
	if err != nil {
		return err
	}
	if proofTimestamp < packet.TimeoutTimestamp {
		return errorsmod.Wrapf(types.ErrTimeoutNotReached,
			"counterparty timestamp %d at height %d has not passed timeout %d",
			proofTimestamp, proofHeight, packet.TimeoutTimestamp)
	}

	receiptPath := counterparty.MerklePath(types.PacketReceiptPath(packet.DestinationClient, packet.Sequence))
	if err := lightClient.VerifyNonMembership(ctx, packet.SourceClient, proofHeight, proof, receiptPath); err != nil {
		return errorsmod.Wrapf(types.ErrMembershipVerification,
			"packet receipt absence for sequence %d on client %q: %s", packet.Sequence, packet.SourceClient, err)
	}

	for _, payload := range packet.Payloads {
		app, err := k.Route(payload.SourcePort)
		if err != nil {
			return err
		}
		if err := app.OnTimeoutPacket(ctx, packet.SourceClient, packet.DestinationClient, packet.Sequence, payload, relayer); err != nil {
			return errorsmod.Wrapf(err, "timeout callback failed for port %q", payload.SourcePort)
		}
	}

	k.DeletePacketCommitment(ctx, packet.SourceClient, packet.Sequence)
	k.emitTimeoutPacketEvent(ctx, packet)
	return nil
}

func (k Keeper) checkCommitment(stored []byte, packet types.Packet) error {
	expected := types.CommitPacket(packet)
	if !bytes.Equal(stored, expected) {
		return errorsmod.Wrapf(types.ErrCommitmentMismatch,
			"stored commitment %s does not match reconstructed packet commitment %s",
			hex.EncodeToString(stored), hex.EncodeToString(expected))
	}
	return nil
}
