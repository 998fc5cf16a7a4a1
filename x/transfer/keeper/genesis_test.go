package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/transfer/types"
)

func TestTransferGenesisRoundTrip(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)
	testkeeper.FundAccount(t, f, sender, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)))

	// Populate every table: an outgoing escrow with its pending record, a
	// registered voucher denom and a rate limit.
	sendTransfer(t, f, sdk.NewInt64Coin("uatom", 400))
	token := types.NewToken(types.NewDenom("ufoo"), math.NewInt(300))
	_, err := f.Router.RecvPacket(f.Ctx, inboundTransfer(1, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	f.Transfer.SetRateLimit(f.Ctx, "uatom", math.NewInt(500))

	exported := f.Transfer.ExportGenesis(f.Ctx)
	require.Len(t, exported.Denoms, 1)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin("uatom", 400)), exported.TotalEscrows)
	require.Len(t, exported.PendingTransfers, 1)
	require.Equal(t, testkeeper.ClientID, exported.PendingTransfers[0].ClientID)
	require.Equal(t, uint64(1), exported.PendingTransfers[0].Sequence)
	require.Len(t, exported.RateLimits, 1)

	fresh := testkeeper.MeridianKeeper(t)
	fresh.Transfer.InitGenesis(fresh.Ctx, *exported)
	require.Equal(t, exported, fresh.Transfer.ExportGenesis(fresh.Ctx))

	wrapped := types.NewDenom("ufoo", types.NewHop(types.PortID, testkeeper.ClientID))
	restored, found := fresh.Transfer.GetDenom(fresh.Ctx, wrapped.Hash())
	require.True(t, found)
	require.True(t, wrapped.Equal(restored))
}

func TestTransferInitGenesisRejectsInvalidState(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	require.Panics(t, func() {
		f.Transfer.InitGenesis(f.Ctx, types.GenesisState{
			Denoms: []types.Denom{types.NewDenom("uatom")}, // untraced
		})
	})

	require.Panics(t, func() {
		f.Transfer.InitGenesis(f.Ctx, types.GenesisState{
			RateLimits: []types.RateLimit{
				{Denom: "uatom", DailyLimit: math.NewInt(1)},
				{Denom: "uatom", DailyLimit: math.NewInt(2)},
			},
		})
	})
}

func TestTransferGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	traced := types.NewDenom("ufoo", types.NewHop(types.PortID, "client-0"))
	dup := types.GenesisState{Denoms: []types.Denom{traced, traced}}
	require.ErrorIs(t, dup.Validate(), types.ErrInvalidGenesis)

	badPending := types.GenesisState{
		PendingTransfers: []types.PendingTransferGenesis{
			{ClientID: "client-0", Sequence: 1, Transfer: types.PendingTransfer{Sender: "bad"}},
		},
	}
	require.ErrorIs(t, badPending.Validate(), types.ErrInvalidGenesis)
}
