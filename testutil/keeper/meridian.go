package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	routerkeeper "github.com/meridian-chain/meridian/x/router/keeper"
	routertypes "github.com/meridian-chain/meridian/x/router/types"
	transferkeeper "github.com/meridian-chain/meridian/x/transfer/keeper"
	transfertypes "github.com/meridian-chain/meridian/x/transfer/types"
)

// Default client wiring used by the fixture. ClientID is registered locally
// and verifies against CounterpartyClientID on the remote chain.
const (
	ClientID             = "client-0"
	CounterpartyClientID = "client-7"
)

// BlockTime is the fixed block time of fixture contexts.
var BlockTime = time.Unix(1_700_000_000, 0).UTC()

// Fixture wires router and transfer keepers over an in-memory multistore
// with real auth and bank keepers.
type Fixture struct {
	Router      *routerkeeper.Keeper
	Transfer    *transferkeeper.Keeper
	Bank        bankkeeper.BaseKeeper
	LightClient *MockLightClient
	Authority   string
	Ctx         sdk.Context
}

// MeridianKeeper creates the full test fixture: stores mounted, the transfer
// application routed under its port and one client registered with a mock
// light-client handle.
func MeridianKeeper(t testing.TB) *Fixture {
	routerStoreKey := storetypes.NewKVStoreKey(routertypes.StoreKey)
	transferStoreKey := storetypes.NewKVStoreKey(transfertypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(routerStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(transferStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		transfertypes.ModuleName:   {authtypes.Minter, authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	routerKeeper := routerkeeper.NewKeeper(routerStoreKey, authority.String())
	transferKeeper := transferkeeper.NewKeeper(transferStoreKey, bankKeeper, routerKeeper, authority.String())
	routerKeeper.AddRoute(transfertypes.PortID, transferKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: BlockTime}, false, log.NewNopLogger())

	lightClient := &MockLightClient{}
	require.NoError(t, routerKeeper.AddClient(ctx, ClientID,
		routertypes.NewCounterparty(CounterpartyClientID, [][]byte{[]byte("ibc")}), lightClient))

	return &Fixture{
		Router:      routerKeeper,
		Transfer:    transferKeeper,
		Bank:        bankKeeper,
		LightClient: lightClient,
		Authority:   authority.String(),
		Ctx:         ctx,
	}
}

// FundAccount mints coins and credits them to the address.
func FundAccount(t testing.TB, f *Fixture, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, f.Bank.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.Bank.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// TestAddress returns a deterministic bech32 account address for tests.
func TestAddress(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = index
	}
	return sdk.AccAddress(addr)
}
