package keeper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

func TestAddRoute(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)
	app := &testkeeper.MockApp{}

	f.Router.AddRoute("mock", app)
	require.True(t, f.Router.HasRoute("mock"))

	routed, err := f.Router.Route("mock")
	require.NoError(t, err)
	require.Same(t, app, routed.(*testkeeper.MockApp))

	_, err = f.Router.Route("unknown")
	require.ErrorIs(t, err, types.ErrAppNotFound)

	require.Panics(t, func() { f.Router.AddRoute("mock", app) })
	require.Panics(t, func() { f.Router.AddRoute("", app) })
	require.Panics(t, func() { f.Router.AddRoute("other", nil) })
}

func TestAddClient(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	// The fixture already registered ClientID.
	require.True(t, f.Router.HasClient(f.Ctx, testkeeper.ClientID))

	counterparty, found := f.Router.GetCounterparty(f.Ctx, testkeeper.ClientID)
	require.True(t, found)
	require.Equal(t, testkeeper.CounterpartyClientID, counterparty.ClientID)

	err := f.Router.AddClient(f.Ctx, testkeeper.ClientID,
		types.NewCounterparty("client-9", [][]byte{[]byte("ibc")}), &testkeeper.MockLightClient{})
	require.ErrorIs(t, err, types.ErrClientExists)

	err = f.Router.AddClient(f.Ctx, "bad/id",
		types.NewCounterparty("client-9", [][]byte{[]byte("ibc")}), &testkeeper.MockLightClient{})
	require.ErrorIs(t, err, types.ErrInvalidClientID)

	err = f.Router.AddClient(f.Ctx, "client-1",
		types.NewCounterparty("", [][]byte{[]byte("ibc")}), &testkeeper.MockLightClient{})
	require.ErrorIs(t, err, types.ErrInvalidCounterparty)

	err = f.Router.AddClient(f.Ctx, "client-1",
		types.NewCounterparty("client-9", [][]byte{[]byte("ibc")}), nil)
	require.Error(t, err)
}

func TestAttachLightClient(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	err := f.Router.AttachLightClient(f.Ctx, "client-99", &testkeeper.MockLightClient{})
	require.ErrorIs(t, err, types.ErrClientNotFound)

	require.NoError(t, f.Router.AttachLightClient(f.Ctx, testkeeper.ClientID, &testkeeper.MockLightClient{}))
}

func TestUpdateClient(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	f.LightClient.UpdateResult = types.UpdateResultUpdate
	result, err := f.Router.UpdateClient(f.Ctx, testkeeper.ClientID, []byte("header"))
	require.NoError(t, err)
	require.Equal(t, types.UpdateResultUpdate, result)

	f.LightClient.UpdateResult = types.UpdateResultMisbehaviour
	result, err = f.Router.UpdateClient(f.Ctx, testkeeper.ClientID, []byte("conflicting headers"))
	require.NoError(t, err)
	require.Equal(t, types.UpdateResultMisbehaviour, result)

	f.LightClient.UpdateErr = errors.New("invalid header")
	_, err = f.Router.UpdateClient(f.Ctx, testkeeper.ClientID, []byte("garbage"))
	require.Error(t, err)

	_, err = f.Router.UpdateClient(f.Ctx, "client-99", []byte("header"))
	require.ErrorIs(t, err, types.ErrClientNotFound)
}

func TestNextSequenceSend(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	require.Equal(t, uint64(1), f.Router.GetNextSequenceSend(f.Ctx, testkeeper.ClientID))

	f.Router.SetNextSequenceSend(f.Ctx, testkeeper.ClientID, 42)
	require.Equal(t, uint64(42), f.Router.GetNextSequenceSend(f.Ctx, testkeeper.ClientID))

	// Sequences are scoped per client.
	require.Equal(t, uint64(1), f.Router.GetNextSequenceSend(f.Ctx, "client-other"))
}
