package keeper_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f, _ := mockFixture(t)

	sent := sendPacket(t, f)
	_, err := f.Router.RecvPacket(f.Ctx, inboundPacket(1), []byte("proof"), 10, relayer)
	require.NoError(t, err)

	exported := f.Router.ExportGenesis(f.Ctx)
	require.Len(t, exported.Clients, 1)
	require.Equal(t, testkeeper.ClientID, exported.Clients[0].ClientID)
	require.Len(t, exported.Sequences, 1)
	require.Equal(t, uint64(2), exported.Sequences[0].Sequence)
	require.Len(t, exported.Commitments, 1)
	require.Equal(t, hex.EncodeToString(types.CommitPacket(sent)), exported.Commitments[0].Data)
	require.Len(t, exported.Receipts, 1)
	require.Len(t, exported.Acknowledgements, 1)

	fresh := testkeeper.MeridianKeeper(t)
	fresh.Router.InitGenesis(fresh.Ctx, *exported)

	require.Equal(t, exported, fresh.Router.ExportGenesis(fresh.Ctx))

	commitment, found := fresh.Router.GetPacketCommitment(fresh.Ctx, testkeeper.ClientID, sent.Sequence)
	require.True(t, found)
	require.Equal(t, types.CommitPacket(sent), commitment)
	require.True(t, fresh.Router.HasPacketReceipt(fresh.Ctx, testkeeper.ClientID, 1))
	require.Equal(t, uint64(2), fresh.Router.GetNextSequenceSend(fresh.Ctx, testkeeper.ClientID))
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	f := testkeeper.MeridianKeeper(t)

	require.Panics(t, func() {
		f.Router.InitGenesis(f.Ctx, types.GenesisState{
			Clients: []types.ClientGenesis{
				{ClientID: "bad/id", Counterparty: types.NewCounterparty("client-7", [][]byte{[]byte("ibc")})},
			},
		})
	})

	require.Panics(t, func() {
		f.Router.InitGenesis(f.Ctx, types.GenesisState{
			Commitments: []types.PacketState{
				{ClientID: "client-0", Sequence: 1, Data: "not-hex"},
			},
		})
	})
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	dup := types.GenesisState{
		Clients: []types.ClientGenesis{
			{ClientID: "client-0", Counterparty: types.NewCounterparty("client-7", [][]byte{[]byte("ibc")})},
			{ClientID: "client-0", Counterparty: types.NewCounterparty("client-8", [][]byte{[]byte("ibc")})},
		},
	}
	require.ErrorIs(t, dup.Validate(), types.ErrInvalidGenesis)

	zeroSeq := types.GenesisState{
		Sequences: []types.PacketSequence{{ClientID: "client-0", Sequence: 0}},
	}
	require.ErrorIs(t, zeroSeq.Validate(), types.ErrInvalidGenesis)
}
