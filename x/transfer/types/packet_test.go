package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

var (
	testSender   = sdk.AccAddress([]byte("sender_______addr_20")).String()
	testReceiver = sdk.AccAddress([]byte("receiver_____addr_20")).String()
)

func validPacketData() types.FungibleTokenPacketData {
	token := types.NewToken(types.NewDenom("uatom"), math.NewInt(1000))
	return types.NewFungibleTokenPacketData([]types.Token{token}, testSender, testReceiver, "")
}

func TestPacketDataValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.FungibleTokenPacketData)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(d *types.FungibleTokenPacketData) {},
		},
		{
			name:   "valid with memo",
			mutate: func(d *types.FungibleTokenPacketData) { d.Memo = "swap" },
		},
		{
			name:    "no tokens",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Tokens = nil },
			wantErr: types.ErrInvalidPacketData,
		},
		{
			name: "too many tokens",
			mutate: func(d *types.FungibleTokenPacketData) {
				token := d.Tokens[0]
				for i := 0; i <= types.MaxTokensPerPacket; i++ {
					d.Tokens = append(d.Tokens, token)
				}
			},
			wantErr: types.ErrInvalidPacketData,
		},
		{
			name:    "zero amount",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Tokens[0].Amount = "0" },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Tokens[0].Amount = "-5" },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "unparsable amount",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Tokens[0].Amount = "ten" },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "empty sender",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Sender = " " },
			wantErr: types.ErrInvalidSender,
		},
		{
			name:    "empty receiver",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Receiver = "" },
			wantErr: types.ErrInvalidReceiver,
		},
		{
			name:    "oversized memo",
			mutate:  func(d *types.FungibleTokenPacketData) { d.Memo = strings.Repeat("m", types.MaxMemoLength+1) },
			wantErr: types.ErrInvalidMemo,
		},
		{
			name: "too many forwarding hops",
			mutate: func(d *types.FungibleTokenPacketData) {
				for i := 0; i <= types.MaxForwardingHops; i++ {
					d.Forwarding.Hops = append(d.Forwarding.Hops, types.NewHop("transfer", "client-1"))
				}
			},
			wantErr: types.ErrInvalidForwarding,
		},
		{
			name: "destination memo without hops",
			mutate: func(d *types.FungibleTokenPacketData) {
				d.Forwarding.DestinationMemo = "unroll"
			},
			wantErr: types.ErrInvalidForwarding,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := validPacketData()
			tc.mutate(&data)

			err := data.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestPacketDataJSONRoundTrip(t *testing.T) {
	data := validPacketData()
	data.Memo = "note"
	data.Tokens[0].Denom = types.NewDenom("uatom", types.NewHop("transfer", "client-0"))

	decoded, err := types.UnmarshalPacketData(data.GetBytes(), types.EncodingJSON)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestUnmarshalPacketDataRejectsBadInput(t *testing.T) {
	data := validPacketData()

	_, err := types.UnmarshalPacketData(data.GetBytes(), "application/x-protobuf")
	require.ErrorIs(t, err, types.ErrInvalidPacketData)

	_, err = types.UnmarshalPacketData([]byte("not json"), types.EncodingJSON)
	require.ErrorIs(t, err, types.ErrInvalidPacketData)

	// Well-formed JSON that fails semantic validation.
	_, err = types.UnmarshalPacketData([]byte(`{"tokens":[],"sender":"a","receiver":"b"}`), types.EncodingJSON)
	require.ErrorIs(t, err, types.ErrInvalidPacketData)
}

func TestNewTransferPayload(t *testing.T) {
	payload := types.NewTransferPayload(validPacketData())

	require.Equal(t, types.PortID, payload.SourcePort)
	require.Equal(t, types.PortID, payload.DestinationPort)
	require.Equal(t, types.Version, payload.Version)
	require.Equal(t, types.EncodingJSON, payload.Encoding)
	require.NoError(t, payload.ValidateBasic())
}

func TestMsgTransferValidateBasic(t *testing.T) {
	valid := types.NewMsgTransfer(testSender, "client-0",
		[]sdk.Coin{sdk.NewInt64Coin("uatom", 100)}, testReceiver, 1_700_000_100, "")
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.Sender = "notbech32"
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidSender)

	bad = *valid
	bad.SourceClient = "client/0"
	require.Error(t, bad.ValidateBasic())

	bad = *valid
	bad.Tokens = nil
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = *valid
	bad.Tokens = []sdk.Coin{{Denom: "uatom", Amount: math.ZeroInt()}}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = *valid
	bad.Receiver = ""
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidReceiver)
}

func TestMsgSetRateLimitValidateBasic(t *testing.T) {
	valid := types.NewMsgSetRateLimit(testSender, "uatom", math.NewInt(1_000_000))
	require.NoError(t, valid.ValidateBasic())

	require.NoError(t, types.NewMsgSetRateLimit(testSender, "uatom", math.ZeroInt()).ValidateBasic())

	require.ErrorIs(t, types.NewMsgSetRateLimit("bad", "uatom", math.OneInt()).ValidateBasic(), types.ErrInvalidAuthority)
	require.ErrorIs(t, types.NewMsgSetRateLimit(testSender, " ", math.OneInt()).ValidateBasic(), types.ErrInvalidDenom)
	require.ErrorIs(t, types.NewMsgSetRateLimit(testSender, "uatom", math.NewInt(-1)).ValidateBasic(), types.ErrInvalidAmount)
}
