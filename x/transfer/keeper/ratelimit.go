package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

const secondsPerDay = 24 * 60 * 60

// SetRateLimit sets the daily cap on a local denom released by incoming
// transfers (unescrow and voucher mint). A zero limit clears the cap.
func (k Keeper) SetRateLimit(ctx sdk.Context, denom string, dailyLimit math.Int) {
	store := k.getStore(ctx)
	if dailyLimit.IsZero() {
		store.Delete(types.RateLimitForDenomKey(denom))
	} else {
		bz, err := dailyLimit.Marshal()
		if err != nil {
			panic(fmt.Sprintf("failed to marshal rate limit for %s: %s", denom, err))
		}
		store.Set(types.RateLimitForDenomKey(denom), bz)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRateLimitSet,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyDailyLimit, dailyLimit.String()),
		),
	)
}

// GetRateLimit returns the daily cap of a denom; found is false when the
// denom is unrestricted.
func (k Keeper) GetRateLimit(ctx sdk.Context, denom string) (math.Int, bool) {
	bz := k.getStore(ctx).Get(types.RateLimitForDenomKey(denom))
	if bz == nil {
		return math.ZeroInt(), false
	}
	var limit math.Int
	if err := limit.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("failed to unmarshal rate limit for %s: %s", denom, err))
	}
	return limit, true
}

// GetAllRateLimits returns every configured rate limit.
func (k Keeper) GetAllRateLimits(ctx sdk.Context) []types.RateLimit {
	var limits []types.RateLimit

	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.RateLimitKey)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var limit math.Int
		if err := limit.Unmarshal(iter.Value()); err != nil {
			continue
		}
		limits = append(limits, types.RateLimit{
			Denom:      string(iter.Key()[len(types.RateLimitKey):]),
			DailyLimit: limit,
		})
	}
	return limits
}

// consumeRateLimit charges an outflow against the denom's bucket for the
// current UTC day. Buckets for past days are left behind and simply never
// read again.
func (k Keeper) consumeRateLimit(ctx sdk.Context, denom string, amount math.Int) error {
	limit, found := k.GetRateLimit(ctx, denom)
	if !found {
		return nil
	}

	epochDay := ctx.BlockTime().UTC().Unix() / secondsPerDay
	key := types.RateLimitUsageForKey(denom, epochDay)
	store := k.getStore(ctx)

	used := math.ZeroInt()
	if bz := store.Get(key); bz != nil {
		if err := used.Unmarshal(bz); err != nil {
			panic(fmt.Sprintf("failed to unmarshal rate limit usage for %s: %s", denom, err))
		}
	}

	newUsed := used.Add(amount)
	if newUsed.GT(limit) {
		return errorsmod.Wrapf(types.ErrRateLimitExceeded,
			"%s: %s of %s daily limit already used, cannot release %s", denom, used, limit, amount)
	}

	bz, err := newUsed.Marshal()
	if err != nil {
		panic(fmt.Sprintf("failed to marshal rate limit usage for %s: %s", denom, err))
	}
	store.Set(key, bz)
	return nil
}
