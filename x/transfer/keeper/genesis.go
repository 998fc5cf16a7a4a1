package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

// InitGenesis initializes the transfer state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid transfer genesis state: %s", err))
	}

	for _, denom := range genState.Denoms {
		k.SetDenom(ctx, denom)
	}
	for _, coin := range genState.TotalEscrows {
		k.SetTotalEscrowForDenom(ctx, coin.Denom, coin.Amount)
	}
	for _, pending := range genState.PendingTransfers {
		k.setPendingTransfer(ctx, pending.ClientID, pending.Sequence, pending.Transfer)
	}
	for _, limit := range genState.RateLimits {
		k.SetRateLimit(ctx, limit.Denom, limit.DailyLimit)
	}

	k.Logger(ctx).Info("transfer genesis initialized",
		"denoms", len(genState.Denoms),
		"pending_transfers", len(genState.PendingTransfers),
	)
}

// ExportGenesis exports the transfer state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Denoms:           k.GetAllDenoms(ctx),
		TotalEscrows:     k.GetAllTotalEscrows(ctx),
		PendingTransfers: k.GetAllPendingTransfers(ctx),
		RateLimits:       k.GetAllRateLimits(ctx),
	}
}
