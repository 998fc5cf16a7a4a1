package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

// Keeper implements the fungible token transfer application: the voucher
// denom registry, per-client escrow accounts, pending transfer records and
// rate limits. All packet-driven state transitions run inside router
// callbacks.
type Keeper struct {
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	routerKeeper types.RouterKeeper
	authority    string
}

// NewKeeper creates a new transfer Keeper instance.
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper, routerKeeper types.RouterKeeper, authority string) *Keeper {
	if bankKeeper == nil {
		panic("transfer keeper requires a bank keeper")
	}
	if routerKeeper == nil {
		panic("transfer keeper requires a router keeper")
	}
	return &Keeper{
		storeKey:     key,
		bankKeeper:   bankKeeper,
		routerKeeper: routerKeeper,
		authority:    authority,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority account.
func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// SetDenom registers a traced denom under its path hash. Registration is
// idempotent: re-registering the same denom overwrites it with equal bytes.
func (k Keeper) SetDenom(ctx sdk.Context, denom types.Denom) {
	bz, err := json.Marshal(denom)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal denom: %s", err))
	}
	k.getStore(ctx).Set(types.DenomHashKey(denom.Hash()), bz)
}

// GetDenom looks up a registered denom by its path hash.
func (k Keeper) GetDenom(ctx sdk.Context, hash []byte) (types.Denom, bool) {
	bz := k.getStore(ctx).Get(types.DenomHashKey(hash))
	if bz == nil {
		return types.Denom{}, false
	}
	var denom types.Denom
	if err := json.Unmarshal(bz, &denom); err != nil {
		return types.Denom{}, false
	}
	return denom, true
}

// HasDenom reports whether a denom is registered under the given path hash.
func (k Keeper) HasDenom(ctx sdk.Context, hash []byte) bool {
	return k.getStore(ctx).Has(types.DenomHashKey(hash))
}

// GetAllDenoms returns every registered denom.
func (k Keeper) GetAllDenoms(ctx sdk.Context) []types.Denom {
	var denoms []types.Denom

	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.DenomKey)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var denom types.Denom
		if err := json.Unmarshal(iter.Value(), &denom); err != nil {
			continue
		}
		denoms = append(denoms, denom)
	}
	return denoms
}

// GetTotalEscrowForDenom returns the amount of a denom currently held across
// all escrow accounts.
func (k Keeper) GetTotalEscrowForDenom(ctx sdk.Context, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.TotalEscrowForDenomKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("failed to unmarshal escrow total for %s: %s", denom, err))
	}
	return amount
}

// SetTotalEscrowForDenom records the escrowed total of a denom. Zero totals
// are deleted so exports stay minimal.
func (k Keeper) SetTotalEscrowForDenom(ctx sdk.Context, denom string, amount math.Int) {
	if amount.IsNegative() {
		panic(fmt.Sprintf("negative escrow total for %s: %s", denom, amount))
	}
	if amount.IsZero() {
		k.getStore(ctx).Delete(types.TotalEscrowForDenomKey(denom))
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Sprintf("failed to marshal escrow total for %s: %s", denom, err))
	}
	k.getStore(ctx).Set(types.TotalEscrowForDenomKey(denom), bz)
}

// GetAllTotalEscrows returns the escrowed totals of every denom.
func (k Keeper) GetAllTotalEscrows(ctx sdk.Context) sdk.Coins {
	coins := sdk.Coins{}

	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.TotalEscrowKey)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		denom := string(iter.Key()[len(types.TotalEscrowKey):])
		var amount math.Int
		if err := amount.Unmarshal(iter.Value()); err != nil {
			continue
		}
		coins = coins.Add(sdk.NewCoin(denom, amount))
	}
	return coins
}

// setPendingTransfer records the funds locked for an in-flight packet.
func (k Keeper) setPendingTransfer(ctx sdk.Context, clientID string, sequence uint64, pending types.PendingTransfer) {
	bz, err := json.Marshal(pending)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal pending transfer: %s", err))
	}
	k.getStore(ctx).Set(types.PendingTransferForKey(clientID, sequence), bz)
}

// GetPendingTransfer looks up the pending record of an in-flight packet.
func (k Keeper) GetPendingTransfer(ctx sdk.Context, clientID string, sequence uint64) (types.PendingTransfer, bool) {
	bz := k.getStore(ctx).Get(types.PendingTransferForKey(clientID, sequence))
	if bz == nil {
		return types.PendingTransfer{}, false
	}
	var pending types.PendingTransfer
	if err := json.Unmarshal(bz, &pending); err != nil {
		return types.PendingTransfer{}, false
	}
	return pending, true
}

func (k Keeper) deletePendingTransfer(ctx sdk.Context, clientID string, sequence uint64) {
	k.getStore(ctx).Delete(types.PendingTransferForKey(clientID, sequence))
}

// GetAllPendingTransfers returns every pending transfer with its packet identity.
func (k Keeper) GetAllPendingTransfers(ctx sdk.Context) []types.PendingTransferGenesis {
	var pendings []types.PendingTransferGenesis

	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PendingTransferKey)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		clientID, sequence, ok := parsePendingKey(iter.Key())
		if !ok {
			continue
		}
		var pending types.PendingTransfer
		if err := json.Unmarshal(iter.Value(), &pending); err != nil {
			continue
		}
		pendings = append(pendings, types.PendingTransferGenesis{
			ClientID: clientID,
			Sequence: sequence,
			Transfer: pending,
		})
	}
	return pendings
}

// parsePendingKey inverts PendingTransferForKey: prefix, client id, zero
// separator, then the big-endian sequence.
func parsePendingKey(key []byte) (string, uint64, bool) {
	body := key[len(types.PendingTransferKey):]
	if len(body) < 1+8+1 {
		return "", 0, false
	}
	sep := len(body) - 9
	if body[sep] != 0 {
		return "", 0, false
	}
	return string(body[:sep]), sdk.BigEndianToUint64(body[sep+1:]), true
}
