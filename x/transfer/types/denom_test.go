package types_test

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/transfer/types"
)

func TestDenomPath(t *testing.T) {
	native := types.NewDenom("uatom")
	require.Equal(t, "uatom", native.Path())
	require.False(t, native.IsTraced())

	oneHop := types.NewDenom("uatom", types.NewHop("transfer", "client-0"))
	require.Equal(t, "transfer/client-0/uatom", oneHop.Path())

	twoHops := types.NewDenom("uatom",
		types.NewHop("transfer", "client-0"),
		types.NewHop("transfer", "client-3"),
	)
	require.Equal(t, "transfer/client-0/transfer/client-3/uatom", twoHops.Path())
}

func TestIBCDenom(t *testing.T) {
	native := types.NewDenom("uatom")
	require.Equal(t, "uatom", native.IBCDenom())

	traced := types.NewDenom("uatom", types.NewHop("transfer", "client-0"))
	sum := sha256.Sum256([]byte("transfer/client-0/uatom"))
	expected := "ibc/" + strings.ToUpper(hex.EncodeToString(sum[:]))
	require.Equal(t, expected, traced.IBCDenom())
	require.Equal(t, sum[:], traced.Hash())
}

func TestExtractDenomFromPathRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		denom types.Denom
	}{
		{"native", types.NewDenom("uatom")},
		{"one hop", types.NewDenom("uatom", types.NewHop("transfer", "client-0"))},
		{"two hops", types.NewDenom("uatom",
			types.NewHop("transfer", "client-0"),
			types.NewHop("transfer", "client-3"),
		)},
		{"base with slash", types.NewDenom("gamm/pool/1", types.NewHop("transfer", "client-0"))},
		{"base that looks hoppish", types.NewDenom("factory/creator/token")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed := types.ExtractDenomFromPath(tc.denom.Path())
			require.True(t, tc.denom.Equal(parsed), "got %#v", parsed)
		})
	}
}

func TestAddRemoveHopRoundTrip(t *testing.T) {
	base := types.NewDenom("uatom")

	hopA := types.NewHop("transfer", "client-1")
	hopB := types.NewHop("transfer", "client-2")

	wrapped := base.AddHop(hopA).AddHop(hopB)
	require.Equal(t, "transfer/client-2/transfer/client-1/uatom", wrapped.Path())
	require.True(t, wrapped.HasPrefix("transfer", "client-2"))
	require.False(t, wrapped.HasPrefix("transfer", "client-1"))

	unwrapped := wrapped.RemoveHop().RemoveHop()
	require.True(t, base.Equal(unwrapped))
	require.Equal(t, "uatom", unwrapped.IBCDenom())
}

func TestDenomValidate(t *testing.T) {
	require.Error(t, types.NewDenom("").Validate())
	require.Error(t, types.NewDenom("uatom", types.NewHop("", "client-0")).Validate())
	require.Error(t, types.NewDenom("uatom", types.NewHop("transfer", "cli/ent")).Validate())

	hops := make([]types.Hop, types.MaxTraceLength+1)
	for i := range hops {
		hops[i] = types.NewHop("transfer", "client-0")
	}
	require.ErrorIs(t, types.NewDenom("uatom", hops...).Validate(), types.ErrMaxTraceLength)
	require.NoError(t, types.NewDenom("uatom", hops[:types.MaxTraceLength]...).Validate())
}

func TestParseHexHash(t *testing.T) {
	sum := sha256.Sum256([]byte("transfer/client-0/uatom"))

	hash, err := types.ParseHexHash(strings.ToUpper(hex.EncodeToString(sum[:])))
	require.NoError(t, err)
	require.Equal(t, sum[:], hash)

	_, err = types.ParseHexHash("zz")
	require.ErrorIs(t, err, types.ErrInvalidDenom)
	_, err = types.ParseHexHash("abcd")
	require.ErrorIs(t, err, types.ErrInvalidDenom)
}
