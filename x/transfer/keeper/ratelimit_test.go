package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	routertypes "github.com/meridian-chain/meridian/x/router/types"
	"github.com/meridian-chain/meridian/x/transfer/types"
)

func TestRateLimitCapsVoucherMint(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	wrapped := types.NewDenom("ufoo", types.NewHop(types.PortID, testkeeper.ClientID))
	f.Transfer.SetRateLimit(f.Ctx, wrapped.IBCDenom(), math.NewInt(100))

	// A receive above the daily cap closes with an error ack: the receipt is
	// recorded but nothing is minted.
	token := types.NewToken(types.NewDenom("ufoo"), math.NewInt(10_000))
	ack, err := f.Router.RecvPacket(f.Ctx, inboundTransfer(1, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.True(t, ack.IsError())
	require.True(t, f.Bank.GetBalance(f.Ctx, receiver, wrapped.IBCDenom()).IsZero())
	require.True(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 1))

	// The failed receive consumed no quota: filling the bucket exactly still
	// succeeds.
	token = types.NewToken(types.NewDenom("ufoo"), math.NewInt(100))
	ack, err = f.Router.RecvPacket(f.Ctx, inboundTransfer(2, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.False(t, ack.IsError())
	require.Equal(t, int64(100), f.Bank.GetBalance(f.Ctx, receiver, wrapped.IBCDenom()).Amount.Int64())

	// The bucket is now full.
	token = types.NewToken(types.NewDenom("ufoo"), math.NewInt(1))
	ack, err = f.Router.RecvPacket(f.Ctx, inboundTransfer(3, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.True(t, ack.IsError())
	require.Equal(t, int64(100), f.Bank.GetBalance(f.Ctx, receiver, wrapped.IBCDenom()).Amount.Int64())
}

func TestRateLimitCapsUnescrow(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)
	testkeeper.FundAccount(t, f, sender, sdk.NewCoins(sdk.NewInt64Coin("uatom", 500)))

	sendTransfer(t, f, sdk.NewInt64Coin("uatom", 500))
	f.Transfer.SetRateLimit(f.Ctx, "uatom", math.NewInt(100))

	returning := types.NewToken(
		types.NewDenom("uatom", types.NewHop(types.PortID, testkeeper.CounterpartyClientID)),
		math.NewInt(500))
	ack, err := f.Router.RecvPacket(f.Ctx, inboundTransfer(1, returning, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.True(t, ack.IsError())

	// Escrow untouched, nothing released.
	require.Equal(t, int64(500), f.Transfer.GetTotalEscrowForDenom(f.Ctx, "uatom").Int64())
	require.True(t, f.Bank.GetBalance(f.Ctx, receiver, "uatom").IsZero())
}

func TestRateLimitDoesNotGateSends(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)
	testkeeper.FundAccount(t, f, sender, sdk.NewCoins(sdk.NewInt64Coin("uatom", 10_000)))

	// The cap only meters what incoming packets release; outgoing transfers
	// pass untouched and a later refund cannot leak bucket usage.
	f.Transfer.SetRateLimit(f.Ctx, "uatom", math.NewInt(100))

	msg := types.NewMsgTransfer(sender.String(), testkeeper.ClientID,
		[]sdk.Coin{sdk.NewInt64Coin("uatom", 10_000)}, receiver.String(), futureTimeout(), "")
	_, err := f.Transfer.Transfer(f.Ctx, msg)
	require.NoError(t, err)
}

func TestRateLimitResetsNextDay(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	wrapped := types.NewDenom("ufoo", types.NewHop(types.PortID, testkeeper.ClientID))
	f.Transfer.SetRateLimit(f.Ctx, wrapped.IBCDenom(), math.NewInt(500))

	recv := func(ctx sdk.Context, sequence uint64, amount int64, timeout uint64) *routertypes.Acknowledgement {
		ftpd := types.NewFungibleTokenPacketData(
			[]types.Token{types.NewToken(types.NewDenom("ufoo"), math.NewInt(amount))},
			sender.String(), receiver.String(), "")
		packet := routertypes.NewPacket(sequence, testkeeper.CounterpartyClientID, testkeeper.ClientID,
			timeout, types.NewTransferPayload(ftpd))
		ack, err := f.Router.RecvPacket(ctx, packet, []byte("proof"), 10, relayer)
		require.NoError(t, err)
		return ack
	}

	require.False(t, recv(f.Ctx, 1, 500, futureTimeout()).IsError())
	require.True(t, recv(f.Ctx, 2, 1, futureTimeout()).IsError())

	// A new UTC day gets a fresh bucket; the packet timeout tracks the
	// advanced block time.
	nextDay := f.Ctx.WithBlockTime(testkeeper.BlockTime.Add(24 * time.Hour))
	nextDayTimeout := uint64(testkeeper.BlockTime.Add(25 * time.Hour).Unix())
	require.False(t, recv(nextDay, 3, 500, nextDayTimeout).IsError())
	require.Equal(t, int64(1000), f.Bank.GetBalance(f.Ctx, receiver, wrapped.IBCDenom()).Amount.Int64())
}

func TestRateLimitZeroMeansUnlimited(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	wrapped := types.NewDenom("ufoo", types.NewHop(types.PortID, testkeeper.ClientID))
	f.Transfer.SetRateLimit(f.Ctx, wrapped.IBCDenom(), math.NewInt(10))

	token := types.NewToken(types.NewDenom("ufoo"), math.NewInt(100))
	ack, err := f.Router.RecvPacket(f.Ctx, inboundTransfer(1, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.True(t, ack.IsError())

	// Clearing the limit removes the restriction entirely.
	f.Transfer.SetRateLimit(f.Ctx, wrapped.IBCDenom(), math.ZeroInt())
	_, found := f.Transfer.GetRateLimit(f.Ctx, wrapped.IBCDenom())
	require.False(t, found)

	token = types.NewToken(types.NewDenom("ufoo"), math.NewInt(5_000))
	ack, err = f.Router.RecvPacket(f.Ctx, inboundTransfer(2, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.False(t, ack.IsError())
}

func TestRateLimitScopedPerDenom(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	limited := types.NewDenom("ufoo", types.NewHop(types.PortID, testkeeper.ClientID))
	f.Transfer.SetRateLimit(f.Ctx, limited.IBCDenom(), math.NewInt(10))

	// Only ufoo vouchers are limited.
	token := types.NewToken(types.NewDenom("ubar"), math.NewInt(900))
	ack, err := f.Router.RecvPacket(f.Ctx, inboundTransfer(1, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.False(t, ack.IsError())

	token = types.NewToken(types.NewDenom("ufoo"), math.NewInt(900))
	ack, err = f.Router.RecvPacket(f.Ctx, inboundTransfer(2, token, receiver.String()), []byte("proof"), 10, relayer)
	require.NoError(t, err)
	require.True(t, ack.IsError())
}

func TestGetAllRateLimits(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	f.Transfer.SetRateLimit(f.Ctx, "uatom", math.NewInt(500))
	f.Transfer.SetRateLimit(f.Ctx, "ufoo", math.NewInt(900))

	limits := f.Transfer.GetAllRateLimits(f.Ctx)
	require.Len(t, limits, 2)
	require.Equal(t, "uatom", limits[0].Denom)
	require.Equal(t, int64(500), limits[0].DailyLimit.Int64())
	require.Equal(t, "ufoo", limits[1].Denom)
}
