package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

// escrowCoin moves a coin from the sender into the client's escrow account
// and bumps the escrowed total. The escrow balance delta is checked against
// the requested amount so a partial or hooked transfer cannot go unnoticed.
func (k Keeper) escrowCoin(ctx sdk.Context, sender sdk.AccAddress, clientID string, coin sdk.Coin) error {
	escrowAddress := types.GetEscrowAddress(clientID)
	before := k.bankKeeper.GetBalance(ctx, escrowAddress, coin.Denom)

	if err := k.bankKeeper.SendCoins(ctx, sender, escrowAddress, sdk.NewCoins(coin)); err != nil {
		return err
	}

	after := k.bankKeeper.GetBalance(ctx, escrowAddress, coin.Denom)
	if !after.Sub(before).IsEqual(coin) {
		return errorsmod.Wrapf(types.ErrEscrowMismatch,
			"escrow %s credited %s, expected %s", clientID, after.Sub(before), coin)
	}

	total := k.GetTotalEscrowForDenom(ctx, coin.Denom)
	k.SetTotalEscrowForDenom(ctx, coin.Denom, total.Add(coin.Amount))
	return nil
}

// unescrowCoin releases a coin from the client's escrow account to the
// receiver and decrements the escrowed total.
func (k Keeper) unescrowCoin(ctx sdk.Context, clientID string, receiver sdk.AccAddress, coin sdk.Coin) error {
	escrowAddress := types.GetEscrowAddress(clientID)

	balance := k.bankKeeper.GetBalance(ctx, escrowAddress, coin.Denom)
	if balance.Amount.LT(coin.Amount) {
		return errorsmod.Wrapf(types.ErrInsufficientEscrow,
			"escrow %s holds %s, need %s", clientID, balance, coin)
	}

	if err := k.bankKeeper.SendCoins(ctx, escrowAddress, receiver, sdk.NewCoins(coin)); err != nil {
		return err
	}

	total := k.GetTotalEscrowForDenom(ctx, coin.Denom)
	if total.LT(coin.Amount) {
		return errorsmod.Wrapf(types.ErrEscrowMismatch,
			"escrow total for %s is %s, cannot release %s", coin.Denom, total, coin.Amount)
	}
	k.SetTotalEscrowForDenom(ctx, coin.Denom, total.Sub(coin.Amount))
	return nil
}

// mintVoucher mints voucher coins for a traced denom to the receiver,
// registering the denom and its bank metadata on first sight.
func (k Keeper) mintVoucher(ctx sdk.Context, denom types.Denom, receiver sdk.AccAddress, coin sdk.Coin) error {
	if !k.HasDenom(ctx, denom.Hash()) {
		k.SetDenom(ctx, denom)
		k.setDenomMetadata(ctx, denom)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDenomRegistered,
				sdk.NewAttribute(types.AttributeKeyDenomPath, denom.Path()),
				sdk.NewAttribute(types.AttributeKeyVoucherDenom, denom.IBCDenom()),
			),
		)
	}

	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, sdk.NewCoins(coin))
}

// burnVoucher pulls voucher coins from the holder and burns them.
func (k Keeper) burnVoucher(ctx sdk.Context, holder sdk.AccAddress, coin sdk.Coin) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return err
	}
	return k.bankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(coin))
}

// setDenomMetadata publishes bank metadata for a freshly registered voucher
// denom so wallets can resolve the hash back to its path.
func (k Keeper) setDenomMetadata(ctx sdk.Context, denom types.Denom) {
	ibcDenom := denom.IBCDenom()
	if k.bankKeeper.HasDenomMetaData(ctx, ibcDenom) {
		return
	}
	k.bankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: "IBC voucher for " + denom.Path(),
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: ibcDenom, Exponent: 0},
		},
		Base:    ibcDenom,
		Display: ibcDenom,
		Name:    denom.Path(),
		Symbol:  denom.Base,
	})
}
