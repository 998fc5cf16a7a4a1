package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

type msgServer struct {
	*Keeper
}

// MsgServer is the transfer message handling surface.
type MsgServer interface {
	Transfer(ctx sdk.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error)
	SetRateLimit(ctx sdk.Context, msg *types.MsgSetRateLimit) (*types.MsgSetRateLimitResponse, error)
}

// NewMsgServerImpl returns an implementation of the transfer MsgServer interface.
func NewMsgServerImpl(keeper *Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ MsgServer = msgServer{}

func (ms msgServer) Transfer(ctx sdk.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Transfer: validate: %w", err)
	}

	sequence, err := ms.Keeper.Transfer(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}
	return &types.MsgTransferResponse{Sequence: sequence}, nil
}

func (ms msgServer) SetRateLimit(ctx sdk.Context, msg *types.MsgSetRateLimit) (*types.MsgSetRateLimitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetRateLimit: validate: %w", err)
	}
	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, errorsmod.Wrapf(types.ErrInvalidAuthority,
			"expected %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}

	ms.Keeper.SetRateLimit(ctx, msg.Denom, msg.DailyLimit)
	return &types.MsgSetRateLimitResponse{}, nil
}
