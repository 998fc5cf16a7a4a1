package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

func recvCall(packet types.Packet) types.MulticallMsg {
	return types.MulticallMsg{
		RecvPacket: &types.MsgRecvPacket{
			Packet:      packet,
			Proof:       []byte("proof"),
			ProofHeight: 10,
			Relayer:     relayer.String(),
		},
	}
}

func TestMulticall(t *testing.T) {
	f, app := mockFixture(t)

	acks, err := f.Router.Multicall(f.Ctx, []types.MulticallMsg{
		recvCall(inboundPacket(1)),
		recvCall(inboundPacket(2)),
	})
	require.NoError(t, err)
	require.Len(t, acks, 2)
	require.NotNil(t, acks[0])
	require.NotNil(t, acks[1])
	require.Equal(t, 2, app.RecvCalls)

	require.True(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 1))
	require.True(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 2))
}

func TestMulticallAtomicity(t *testing.T) {
	f, app := mockFixture(t)

	// The second call targets an unknown counterparty and fails; the first
	// call's receipt must not survive the batch.
	bad := inboundPacket(2)
	bad.SourceClient = "client-9"

	_, err := f.Router.Multicall(f.Ctx, []types.MulticallMsg{
		recvCall(inboundPacket(1)),
		recvCall(bad),
	})
	require.ErrorIs(t, err, types.ErrInvalidCounterparty)

	require.False(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 1))
	require.False(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 2))
	require.Equal(t, 1, app.RecvCalls)
}

func TestMulticallReplayNoopInsideBatch(t *testing.T) {
	f, _ := mockFixture(t)

	_, err := f.Router.RecvPacket(f.Ctx, inboundPacket(1), []byte("proof"), 10, relayer)
	require.NoError(t, err)

	// Replaying sequence 1 inside a batch yields a nil ack entry, not a
	// failure; the fresh sequence 2 still executes.
	acks, err := f.Router.Multicall(f.Ctx, []types.MulticallMsg{
		recvCall(inboundPacket(1)),
		recvCall(inboundPacket(2)),
	})
	require.NoError(t, err)
	require.Nil(t, acks[0])
	require.NotNil(t, acks[1])
	require.True(t, f.Router.HasPacketReceipt(f.Ctx, testkeeper.ClientID, 2))
}

func TestMulticallMixedCalls(t *testing.T) {
	f, app := mockFixture(t)
	sent := sendPacket(t, f)
	f.LightClient.Timestamp = sent.TimeoutTimestamp

	acks, err := f.Router.Multicall(f.Ctx, []types.MulticallMsg{
		recvCall(inboundPacket(1)),
		{
			TimeoutPacket: &types.MsgTimeoutPacket{
				Packet:      sent,
				Proof:       []byte("proof"),
				ProofHeight: 10,
				Relayer:     relayer.String(),
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, acks[0])
	require.Nil(t, acks[1])
	require.Equal(t, 1, app.TimeoutCalls)

	_, found := f.Router.GetPacketCommitment(f.Ctx, testkeeper.ClientID, sent.Sequence)
	require.False(t, found)
}

func TestMulticallEmptyBatch(t *testing.T) {
	f, _ := mockFixture(t)

	_, err := f.Router.Multicall(f.Ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidMulticall)
}
