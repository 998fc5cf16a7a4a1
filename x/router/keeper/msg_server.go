package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

type msgServer struct {
	*Keeper
}

// MsgServer is the router message handling surface consumed by relayers and
// applications.
type MsgServer interface {
	SendPacket(ctx sdk.Context, msg *types.MsgSendPacket) (*types.MsgSendPacketResponse, error)
	RecvPacket(ctx sdk.Context, msg *types.MsgRecvPacket) (*types.MsgRecvPacketResponse, error)
	AckPacket(ctx sdk.Context, msg *types.MsgAckPacket) (*types.MsgAckPacketResponse, error)
	TimeoutPacket(ctx sdk.Context, msg *types.MsgTimeoutPacket) (*types.MsgTimeoutPacketResponse, error)
	Multicall(ctx sdk.Context, msg *types.MsgMulticall) (*types.MsgMulticallResponse, error)
}

// NewMsgServerImpl returns an implementation of the router MsgServer interface.
func NewMsgServerImpl(keeper *Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ MsgServer = msgServer{}

func (ms msgServer) SendPacket(ctx sdk.Context, msg *types.MsgSendPacket) (*types.MsgSendPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SendPacket: validate: %w", err)
	}
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return nil, fmt.Errorf("SendPacket: invalid signer address: %w", err)
	}

	sequence, err := ms.Keeper.SendPacket(ctx, msg.SourceClient, msg.TimeoutTimestamp, msg.Payloads, signer)
	if err != nil {
		return nil, fmt.Errorf("SendPacket: %w", err)
	}
	return &types.MsgSendPacketResponse{Sequence: sequence}, nil
}

func (ms msgServer) RecvPacket(ctx sdk.Context, msg *types.MsgRecvPacket) (*types.MsgRecvPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RecvPacket: validate: %w", err)
	}
	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, fmt.Errorf("RecvPacket: invalid relayer address: %w", err)
	}

	ack, err := ms.Keeper.RecvPacket(ctx, msg.Packet, msg.Proof, msg.ProofHeight, relayer)
	if err != nil {
		return nil, fmt.Errorf("RecvPacket: %w", err)
	}
	return &types.MsgRecvPacketResponse{Acknowledgement: ack}, nil
}

func (ms msgServer) AckPacket(ctx sdk.Context, msg *types.MsgAckPacket) (*types.MsgAckPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AckPacket: validate: %w", err)
	}
	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, fmt.Errorf("AckPacket: invalid relayer address: %w", err)
	}

	if err := ms.Keeper.AcknowledgePacket(ctx, msg.Packet, msg.Acknowledgement, msg.Proof, msg.ProofHeight, relayer); err != nil {
		return nil, fmt.Errorf("AckPacket: %w", err)
	}
	return &types.MsgAckPacketResponse{}, nil
}

func (ms msgServer) TimeoutPacket(ctx sdk.Context, msg *types.MsgTimeoutPacket) (*types.MsgTimeoutPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TimeoutPacket: validate: %w", err)
	}
	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, fmt.Errorf("TimeoutPacket: invalid relayer address: %w", err)
	}

	if err := ms.Keeper.TimeoutPacket(ctx, msg.Packet, msg.Proof, msg.ProofHeight, relayer); err != nil {
		return nil, fmt.Errorf("TimeoutPacket: %w", err)
	}
	return &types.MsgTimeoutPacketResponse{}, nil
}

func (ms msgServer) Multicall(ctx sdk.Context, msg *types.MsgMulticall) (*types.MsgMulticallResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Multicall: validate: %w", err)
	}

	acks, err := ms.Keeper.Multicall(ctx, msg.Calls)
	if err != nil {
		return nil, fmt.Errorf("Multicall: %w", err)
	}
	return &types.MsgMulticallResponse{Acknowledgements: acks}, nil
}
