package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

// CheckEscrowConsistency verifies that the recorded escrow totals match the
// coins actually held by the escrow accounts of the given clients. Every
// client with an escrow account must be listed or the sums will not line up.
func (k Keeper) CheckEscrowConsistency(ctx sdk.Context, clientIDs []string) error {
	expected := k.GetAllTotalEscrows(ctx)

	held := sdk.Coins{}
	for _, clientID := range clientIDs {
		escrowAddress := types.GetEscrowAddress(clientID)
		for _, coin := range expected {
			balance := k.bankKeeper.GetBalance(ctx, escrowAddress, coin.Denom)
			if !balance.IsZero() {
				held = held.Add(balance)
			}
		}
	}

	if !held.Equal(expected) {
		return errorsmod.Wrapf(types.ErrEscrowMismatch,
			"escrow accounts hold %s, recorded totals are %s", held, expected)
	}
	return nil
}

// TotalEscrowInvariant wraps CheckEscrowConsistency as an sdk invariant over
// a fixed client set.
func TotalEscrowInvariant(k *Keeper, clientIDs []string) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if err := k.CheckEscrowConsistency(ctx, clientIDs); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-escrow",
				fmt.Sprintf("escrow accounting out of balance: %s", err)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "total-escrow",
			"escrow accounting consistent"), false
	}
}
