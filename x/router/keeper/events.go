package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/meridian-chain/meridian/x/router/types"
)

func (k Keeper) emitSendPacketEvent(ctx sdk.Context, packet types.Packet) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSendPacket,
			sdk.NewAttribute(types.AttributeKeySourceClient, packet.SourceClient),
			sdk.NewAttribute(types.AttributeKeyDestClient, packet.DestinationClient),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
			sdk.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.TimeoutTimestamp)),
		),
	)
	incrPacketCounter("send", packet.SourceClient)
}

func (k Keeper) emitRecvPacketEvent(ctx sdk.Context, packet types.Packet, success bool) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecvPacket,
			sdk.NewAttribute(types.AttributeKeySourceClient, packet.SourceClient),
			sdk.NewAttribute(types.AttributeKeyDestClient, packet.DestinationClient),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
			sdk.NewAttribute(types.AttributeKeyAckSuccess, fmt.Sprintf("%t", success)),
		),
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWriteAcknowledgement,
			sdk.NewAttribute(types.AttributeKeyDestClient, packet.DestinationClient),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
		),
	)
	incrPacketCounter("recv", packet.DestinationClient)
}

func (k Keeper) emitAcknowledgePacketEvent(ctx sdk.Context, packet types.Packet, success bool) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcknowledgePacket,
			sdk.NewAttribute(types.AttributeKeySourceClient, packet.SourceClient),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
			sdk.NewAttribute(types.AttributeKeyAckSuccess, fmt.Sprintf("%t", success)),
		),
	)
	incrPacketCounter("ack", packet.SourceClient)
}

func (k Keeper) emitTimeoutPacketEvent(ctx sdk.Context, packet types.Packet) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTimeoutPacket,
			sdk.NewAttribute(types.AttributeKeySourceClient, packet.SourceClient),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
			sdk.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.TimeoutTimestamp)),
		),
	)
	incrPacketCounter("timeout", packet.SourceClient)
}

// emitNoopEvent marks an idempotent replay: the operation found its sequence
// already finalized and changed nothing.
func (k Keeper) emitNoopEvent(ctx sdk.Context, operation, clientID string, sequence uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNoop,
			sdk.NewAttribute(types.AttributeKeyOperation, operation),
			sdk.NewAttribute(types.AttributeKeyClientID, clientID),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", sequence)),
		),
	)
	incrPacketCounter("noop", clientID)
}

func incrPacketCounter(operation, clientID string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "packet", operation},
		1,
		[]metrics.Label{
			telemetry.NewLabel("client", clientID),
		},
	)
}
