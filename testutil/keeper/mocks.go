package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// MockLightClient is a configurable light-client handle for tests. Zero value
// verifies every proof and reports timestamp zero.
type MockLightClient struct {
	Timestamp        uint64
	UpdateResult     routertypes.UpdateResult
	UpdateErr        error
	MembershipErr    error
	NonMembershipErr error
	MisbehaviourErr  error
	TimestampErr     error
	State            []byte

	MembershipCalls    int
	NonMembershipCalls int
	LastPath           [][]byte
	LastValue          []byte
}

var _ routertypes.LightClientModule = (*MockLightClient)(nil)

func (m *MockLightClient) UpdateClient(ctx sdk.Context, clientID string, msg []byte) (routertypes.UpdateResult, error) {
	return m.UpdateResult, m.UpdateErr
}

func (m *MockLightClient) VerifyMembership(ctx sdk.Context, clientID string, height uint64, proof []byte, path [][]byte, value []byte) error {
	m.MembershipCalls++
	m.LastPath = path
	m.LastValue = value
	return m.MembershipErr
}

func (m *MockLightClient) VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, proof []byte, path [][]byte) error {
	m.NonMembershipCalls++
	m.LastPath = path
	return m.NonMembershipErr
}

func (m *MockLightClient) TimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error) {
	return m.Timestamp, m.TimestampErr
}

func (m *MockLightClient) Misbehaviour(ctx sdk.Context, clientID string, msg []byte) error {
	return m.MisbehaviourErr
}

func (m *MockLightClient) ClientState(ctx sdk.Context, clientID string) ([]byte, error) {
	return m.State, nil
}

// MockApp is a configurable application for router tests. Zero value accepts
// every callback and acknowledges with "ok".
type MockApp struct {
	SendErr    error
	RecvResult *routertypes.RecvPacketResult
	AckErr     error
	TimeoutErr error

	SendCalls    int
	RecvCalls    int
	AckCalls     int
	TimeoutCalls int
	LastAck      []byte
	LastPayload  routertypes.Payload
}

var _ routertypes.IBCApp = (*MockApp)(nil)

func (m *MockApp) OnSendPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, signer sdk.AccAddress) error {
	m.SendCalls++
	m.LastPayload = payload
	return m.SendErr
}

func (m *MockApp) OnRecvPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, relayer sdk.AccAddress) routertypes.RecvPacketResult {
	m.RecvCalls++
	m.LastPayload = payload
	if m.RecvResult != nil {
		return *m.RecvResult
	}
	return routertypes.RecvPacketResult{
		Status:          routertypes.PacketStatusSuccess,
		Acknowledgement: []byte("ok"),
	}
}

func (m *MockApp) OnAcknowledgementPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, ack []byte, relayer sdk.AccAddress) error {
	m.AckCalls++
	m.LastAck = ack
	return m.AckErr
}

func (m *MockApp) OnTimeoutPacket(ctx sdk.Context, sourceClient, destClient string, sequence uint64, payload routertypes.Payload, relayer sdk.AccAddress) error {
	m.TimeoutCalls++
	return m.TimeoutErr
}
