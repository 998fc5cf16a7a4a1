package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/transfer/keeper"
)

func TestTotalEscrowInvariant(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)
	testkeeper.FundAccount(t, f, sender, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)))

	clients := []string{testkeeper.ClientID}
	invariant := keeper.TotalEscrowInvariant(f.Transfer, clients)

	_, broken := invariant(f.Ctx)
	require.False(t, broken)

	sendTransfer(t, f, sdk.NewInt64Coin("uatom", 400))
	_, broken = invariant(f.Ctx)
	require.False(t, broken)

	// Tampering with the recorded total must trip the invariant.
	f.Transfer.SetTotalEscrowForDenom(f.Ctx, "uatom", math.NewInt(999))
	msg, broken := invariant(f.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, "escrow accounting out of balance")
}
