package keeper

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
	"github.com/meridian-chain/meridian/x/transfer/types"
)

var _ routertypes.IBCApp = (*Keeper)(nil)

// Transfer resolves the message's coins to fully traced denoms, builds the
// fungible token payload and hands it to the router. The actual value
// movement happens in OnSendPacket when the router dispatches the payload
// back to this application.
func (k Keeper) Transfer(ctx sdk.Context, msg *types.MsgTransfer) (uint64, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return 0, errorsmod.Wrapf(types.ErrInvalidSender, "%s", err)
	}

	tokens := make([]types.Token, len(msg.Tokens))
	for i, coin := range msg.Tokens {
		token, err := k.tokenFromCoin(ctx, coin)
		if err != nil {
			return 0, err
		}
		tokens[i] = token
	}

	ftpd := types.NewFungibleTokenPacketData(tokens, msg.Sender, msg.Receiver, msg.Memo)
	ftpd.Forwarding = msg.Forwarding
	if err := ftpd.ValidateBasic(); err != nil {
		return 0, err
	}

	sequence, err := k.routerKeeper.SendPacket(ctx, msg.SourceClient, msg.TimeoutTimestamp,
		[]routertypes.Payload{types.NewTransferPayload(ftpd)}, sender)
	if err != nil {
		return 0, err
	}

	k.emitTransferEvent(ctx, types.EventTypeTransfer, msg.SourceClient, sequence, ftpd)
	return sequence, nil
}

// OnSendPacket locks value for an outgoing transfer payload: vouchers
// returning to their source are burned, native tokens are escrowed under the
// source client's escrow account. A pending transfer record is written so the
// acknowledgement or timeout can settle or refund exactly once.
func (k Keeper) OnSendPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, signer sdk.AccAddress) error {
	data, err := k.unmarshalPayload(payload)
	if err != nil {
		return err
	}

	sender, err := sdk.AccAddressFromBech32(data.Sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSender, "%s", err)
	}
	if !sender.Equals(signer) {
		return errorsmod.Wrapf(types.ErrInvalidSender, "sender %s does not match signer %s", data.Sender, signer)
	}

	if _, found := k.GetPendingTransfer(ctx, sourceClient, sequence); found {
		return errorsmod.Wrapf(types.ErrPendingTransferExists, "%s/%d", sourceClient, sequence)
	}

	for _, token := range data.Tokens {
		coin := sdk.NewCoin(token.Denom.IBCDenom(), token.ParsedAmount())

		if token.Denom.HasPrefix(payload.SourcePort, sourceClient) {
			// Returning voucher: burn it, the source chain will unescrow.
			if err := k.burnVoucher(ctx, sender, coin); err != nil {
				return err
			}
		} else {
			if err := k.escrowCoin(ctx, sender, sourceClient, coin); err != nil {
				return err
			}
		}
	}

	k.setPendingTransfer(ctx, sourceClient, sequence, types.PendingTransfer{
		Sender: data.Sender,
		Tokens: data.Tokens,
	})

	k.Logger(ctx).Info("transfer sent",
		"source_client", sourceClient,
		"sequence", sequence,
		"sender", data.Sender,
		"tokens", len(data.Tokens),
	)
	return nil
}

// OnRecvPacket executes an incoming transfer payload. Each released token is
// first charged against its daily rate-limit bucket. Every failure is
// reported through the result status so the router records the error
// acknowledgement; the router discards any partial writes, including bucket
// usage charged before the failing token.
func (k Keeper) OnRecvPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, relayer sdk.AccAddress) routertypes.RecvPacketResult {
	data, err := k.unmarshalPayload(payload)
	if err != nil {
		k.Logger(ctx).Error("transfer receive rejected", "sequence", sequence, "error", err)
		return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
	}

	// This chain is a terminal hop only.
	if !data.Forwarding.Empty() {
		k.Logger(ctx).Error("transfer receive rejected",
			"sequence", sequence,
			"error", types.ErrForwardingUnsupported,
		)
		return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
	}

	receiver, err := sdk.AccAddressFromBech32(data.Receiver)
	if err != nil {
		k.Logger(ctx).Error("transfer receive rejected", "sequence", sequence, "error", err)
		return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
	}
	if k.bankKeeper.BlockedAddr(receiver) {
		k.Logger(ctx).Error("transfer receive rejected",
			"sequence", sequence,
			"error", "receiver address is blocked",
		)
		return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
	}

	for _, token := range data.Tokens {
		amount := token.ParsedAmount()

		if token.Denom.HasPrefix(payload.SourcePort, sourceClient) {
			// Token is returning home: strip the hop and release escrow.
			unwrapped := token.Denom.RemoveHop()
			coin := sdk.NewCoin(unwrapped.IBCDenom(), amount)
			if err := k.consumeRateLimit(ctx, coin.Denom, coin.Amount); err != nil {
				k.Logger(ctx).Error("transfer receive failed", "sequence", sequence, "error", err)
				return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
			}
			if err := k.unescrowCoin(ctx, destClient, receiver, coin); err != nil {
				k.Logger(ctx).Error("transfer receive failed", "sequence", sequence, "error", err)
				return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
			}
		} else {
			// Token is foreign here: extend the trace and mint a voucher.
			wrapped := token.Denom.AddHop(types.NewHop(payload.DestinationPort, destClient))
			if err := wrapped.Validate(); err != nil {
				k.Logger(ctx).Error("transfer receive failed", "sequence", sequence, "error", err)
				return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
			}
			coin := sdk.NewCoin(wrapped.IBCDenom(), amount)
			if err := k.consumeRateLimit(ctx, coin.Denom, coin.Amount); err != nil {
				k.Logger(ctx).Error("transfer receive failed", "sequence", sequence, "error", err)
				return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
			}
			if err := k.mintVoucher(ctx, wrapped, receiver, coin); err != nil {
				k.Logger(ctx).Error("transfer receive failed", "sequence", sequence, "error", err)
				return routertypes.RecvPacketResult{Status: routertypes.PacketStatusFailure}
			}
		}
	}

	k.emitTransferEvent(ctx, types.EventTypeReceive, destClient, sequence, data)
	return routertypes.RecvPacketResult{
		Status:          routertypes.PacketStatusSuccess,
		Acknowledgement: types.SuccessAcknowledgement,
	}
}

// OnAcknowledgementPacket settles a sent transfer: a success acknowledgement
// closes the pending record, the error acknowledgement refunds the sender.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, ack []byte, relayer sdk.AccAddress) error {
	pending, found := k.GetPendingTransfer(ctx, sourceClient, sequence)
	if !found {
		return errorsmod.Wrapf(types.ErrPendingTransferMissing, "%s/%d", sourceClient, sequence)
	}

	success := !routertypes.IsErrorAcknowledgement(ack)
	if !success {
		if err := k.refundPendingTransfer(ctx, sourceClient, payload.SourcePort, pending); err != nil {
			return err
		}
	}
	k.deletePendingTransfer(ctx, sourceClient, sequence)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcknowledgement,
			sdk.NewAttribute(types.AttributeKeySourceClient, sourceClient),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(success)),
		),
	)
	return nil
}

// OnTimeoutPacket refunds a sent transfer that provably never arrived.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, relayer sdk.AccAddress) error {
	pending, found := k.GetPendingTransfer(ctx, sourceClient, sequence)
	if !found {
		return errorsmod.Wrapf(types.ErrPendingTransferMissing, "%s/%d", sourceClient, sequence)
	}

	if err := k.refundPendingTransfer(ctx, sourceClient, payload.SourcePort, pending); err != nil {
		return err
	}
	k.deletePendingTransfer(ctx, sourceClient, sequence)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeySourceClient, sourceClient),
			sdk.NewAttribute(types.AttributeKeySender, pending.Sender),
		),
	)
	return nil
}

// refundPendingTransfer reverses the send-time value movement: escrowed
// tokens are released back to the sender, burned vouchers are re-minted.
func (k Keeper) refundPendingTransfer(ctx sdk.Context, sourceClient, sourcePort string, pending types.PendingTransfer) error {
	sender, err := sdk.AccAddressFromBech32(pending.Sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSender, "%s", err)
	}

	for _, token := range pending.Tokens {
		coin := sdk.NewCoin(token.Denom.IBCDenom(), token.ParsedAmount())

		if token.Denom.HasPrefix(sourcePort, sourceClient) {
			if err := k.mintVoucher(ctx, token.Denom, sender, coin); err != nil {
				return err
			}
		} else {
			if err := k.unescrowCoin(ctx, sourceClient, sender, coin); err != nil {
				return err
			}
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefund,
			sdk.NewAttribute(types.AttributeKeySender, pending.Sender),
			sdk.NewAttribute(types.AttributeKeySourceClient, sourceClient),
		),
	)
	return nil
}

// tokenFromCoin resolves a local bank coin to its fully traced denom.
func (k Keeper) tokenFromCoin(ctx sdk.Context, coin sdk.Coin) (types.Token, error) {
	if !strings.HasPrefix(coin.Denom, types.DenomPrefix+"/") {
		return types.NewToken(types.NewDenom(coin.Denom), coin.Amount), nil
	}

	hash, err := types.ParseHexHash(strings.TrimPrefix(coin.Denom, types.DenomPrefix+"/"))
	if err != nil {
		return types.Token{}, err
	}
	denom, found := k.GetDenom(ctx, hash)
	if !found {
		return types.Token{}, errorsmod.Wrapf(types.ErrDenomNotFound, "no denom registered for %s", coin.Denom)
	}
	return types.NewToken(denom, coin.Amount), nil
}

// unmarshalPayload decodes a transfer payload after checking its version and
// encoding tags.
func (k Keeper) unmarshalPayload(payload routertypes.Payload) (types.FungibleTokenPacketData, error) {
	if payload.Version != types.Version {
		return types.FungibleTokenPacketData{}, errorsmod.Wrapf(types.ErrInvalidPacketData, "unsupported version %q", payload.Version)
	}
	return types.UnmarshalPacketData(payload.Value, payload.Encoding)
}

func (k Keeper) emitTransferEvent(ctx sdk.Context, eventType, clientID string, sequence uint64, data types.FungibleTokenPacketData) {
	tokens := make([]string, len(data.Tokens))
	for i, token := range data.Tokens {
		tokens[i] = token.Amount + token.Denom.Path()
	}
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeySender, data.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, data.Receiver),
			sdk.NewAttribute(types.AttributeKeyTokens, strings.Join(tokens, ",")),
			sdk.NewAttribute(types.AttributeKeySourceClient, clientID),
		),
	)
}
