package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// BankKeeper defines the expected bank keeper used for escrow, voucher
// minting and voucher burning.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	HasDenomMetaData(ctx context.Context, denom string) bool
	SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata)
	BlockedAddr(addr sdk.AccAddress) bool
}

// RouterKeeper defines the packet router surface used to send transfer
// packets.
type RouterKeeper interface {
	SendPacket(ctx sdk.Context, sourceClient string, timeoutTimestamp uint64, payloads []routertypes.Payload, signer sdk.AccAddress) (uint64, error)
}
