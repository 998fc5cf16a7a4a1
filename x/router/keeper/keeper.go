package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// Keeper is the packet router: it owns the commitment store, the client
// registry and the port/app registry, and drives the packet lifecycle state
// machine. It is the only caller of application callbacks, which serializes
// all access to application ledger state.
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string

	// apps maps a port id to the one application owning it. Populated at
	// wiring time, never mutated afterwards.
	apps map[string]types.IBCApp

	// clients maps a client id to its light-client verification handle. The
	// counterparty metadata lives in the store; the handle is process state.
	clients map[string]types.LightClientModule
}

// NewKeeper creates a new router Keeper instance.
func NewKeeper(key storetypes.StoreKey, authority string) *Keeper {
	return &Keeper{
		storeKey:  key,
		authority: authority,
		apps:      make(map[string]types.IBCApp),
		clients:   make(map[string]types.LightClientModule),
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

// AddRoute registers an application under a port id. Duplicate registration
// and empty identifiers are wiring bugs and panic.
func (k *Keeper) AddRoute(portID string, app types.IBCApp) {
	if portID == "" || len(portID) > types.MaxPortIDLength {
		panic(fmt.Sprintf("invalid port identifier %q", portID))
	}
	if app == nil {
		panic(fmt.Sprintf("nil application for port %q", portID))
	}
	if _, ok := k.apps[portID]; ok {
		panic(fmt.Sprintf("application already registered for port %q", portID))
	}
	k.apps[portID] = app
}

// HasRoute reports whether an application is registered for the port.
func (k Keeper) HasRoute(portID string) bool {
	_, ok := k.apps[portID]
	return ok
}

// Route returns the application registered for the port.
func (k Keeper) Route(portID string) (types.IBCApp, error) {
	app, ok := k.apps[portID]
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrAppNotFound, "port %q", portID)
	}
	return app, nil
}

// AddClient registers a client: the counterparty record is persisted and the
// light-client handle is attached in memory. The identifier must be unused.
func (k *Keeper) AddClient(ctx sdk.Context, clientID string, counterparty types.Counterparty, lightClient types.LightClientModule) error {
	if err := types.ValidateClientID(clientID); err != nil {
		return err
	}
	if err := counterparty.Validate(); err != nil {
		return err
	}
	if lightClient == nil {
		return errorsmod.Wrapf(types.ErrInvalidClientID, "nil light client for %q", clientID)
	}
	if k.hasCounterparty(ctx, clientID) {
		return errorsmod.Wrapf(types.ErrClientExists, "client %q", clientID)
	}

	k.setCounterparty(ctx, clientID, counterparty)
	k.clients[clientID] = lightClient

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddClient,
			sdk.NewAttribute(types.AttributeKeyClientID, clientID),
			sdk.NewAttribute(types.AttributeKeyCounterpartyID, counterparty.ClientID),
		),
	)
	return nil
}

// AttachLightClient re-binds a light-client handle to a client restored from
// genesis. The counterparty record must already exist.
func (k *Keeper) AttachLightClient(ctx sdk.Context, clientID string, lightClient types.LightClientModule) error {
	if !k.hasCounterparty(ctx, clientID) {
		return errorsmod.Wrapf(types.ErrClientNotFound, "client %q", clientID)
	}
	if lightClient == nil {
		return errorsmod.Wrapf(types.ErrInvalidClientID, "nil light client for %q", clientID)
	}
	k.clients[clientID] = lightClient
	return nil
}

// getLightClient resolves the verification handle for a registered client.
func (k Keeper) getLightClient(ctx sdk.Context, clientID string) (types.LightClientModule, types.Counterparty, error) {
	counterparty, found := k.GetCounterparty(ctx, clientID)
	if !found {
		return nil, types.Counterparty{}, errorsmod.Wrapf(types.ErrClientNotFound, "client %q", clientID)
	}
	lightClient, ok := k.clients[clientID]
	if !ok {
		return nil, types.Counterparty{}, errorsmod.Wrapf(types.ErrClientNotFound, "no light client attached for %q", clientID)
	}
	return lightClient, counterparty, nil
}

// HasClient reports whether a client id is registered.
func (k Keeper) HasClient(ctx sdk.Context, clientID string) bool {
	return k.hasCounterparty(ctx, clientID)
}

// UpdateClient forwards a client message to the light-client handle.
func (k Keeper) UpdateClient(ctx sdk.Context, clientID string, msg []byte) (types.UpdateResult, error) {
	lightClient, _, err := k.getLightClient(ctx, clientID)
	if err != nil {
		return types.UpdateResultNoop, err
	}
	result, err := lightClient.UpdateClient(ctx, clientID, msg)
	if err != nil {
		return result, err
	}

	eventType := types.EventTypeUpdateClient
	if result == types.UpdateResultMisbehaviour {
		eventType = types.EventTypeMisbehaviour
	}
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyClientID, clientID),
			sdk.NewAttribute(types.AttributeKeyUpdateResult, fmt.Sprintf("%d", result)),
		),
	)
	return result, nil
}

// SubmitMisbehaviour forwards misbehaviour evidence to the light-client handle.
func (k Keeper) SubmitMisbehaviour(ctx sdk.Context, clientID string, msg []byte) error {
	lightClient, _, err := k.getLightClient(ctx, clientID)
	if err != nil {
		return err
	}
	if err := lightClient.Misbehaviour(ctx, clientID, msg); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMisbehaviour,
			sdk.NewAttribute(types.AttributeKeyClientID, clientID),
		),
	)
	return nil
}

// ClientState returns the opaque client state bytes for a registered client.
func (k Keeper) ClientState(ctx sdk.Context, clientID string) ([]byte, error) {
	lightClient, _, err := k.getLightClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return lightClient.ClientState(ctx, clientID)
}

// GetCounterparty returns the persisted counterparty record for a client.
func (k Keeper) GetCounterparty(ctx sdk.Context, clientID string) (types.Counterparty, bool) {
	bz := k.getStore(ctx).Get(types.CounterpartyKey(clientID))
	if bz == nil {
		return types.Counterparty{}, false
	}
	var counterparty types.Counterparty
	if err := json.Unmarshal(bz, &counterparty); err != nil {
		return types.Counterparty{}, false
	}
	return counterparty, true
}

func (k Keeper) hasCounterparty(ctx sdk.Context, clientID string) bool {
	return k.getStore(ctx).Has(types.CounterpartyKey(clientID))
}

func (k Keeper) setCounterparty(ctx sdk.Context, clientID string, counterparty types.Counterparty) {
	bz, err := json.Marshal(counterparty)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal counterparty: %s", err))
	}
	k.getStore(ctx).Set(types.CounterpartyKey(clientID), bz)
}
