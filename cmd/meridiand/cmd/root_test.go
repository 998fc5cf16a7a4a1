package cmd_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/cmd/meridiand/cmd"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := cmd.NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDenomHashCommand(t *testing.T) {
	out, err := runCommand(t, "denom", "hash", "transfer/client-0/uatom")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("transfer/client-0/uatom"))
	expected := "ibc/" + strings.ToUpper(hex.EncodeToString(sum[:]))
	require.Equal(t, expected, strings.TrimSpace(out))
}

func TestDenomParseCommand(t *testing.T) {
	out, err := runCommand(t, "denom", "parse", "transfer/client-0/gamm/pool/1")
	require.NoError(t, err)
	require.Contains(t, out, "base: gamm/pool/1")
	require.Contains(t, out, "hop 0: port=transfer client=client-0")
}

func TestPacketCommitCommand(t *testing.T) {
	packetJSON := `{
		"sequence": 1,
		"source_client": "client-0",
		"destination_client": "client-7",
		"timeout_timestamp": 1700000100,
		"payloads": [{
			"source_port": "transfer",
			"destination_port": "transfer",
			"version": "transfer-1",
			"encoding": "application/json",
			"value": "e30="
		}]
	}`
	file := t.TempDir() + "/packet.json"
	require.NoError(t, os.WriteFile(file, []byte(packetJSON), 0o600))

	out, err := runCommand(t, "packet", "commit", file)
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(out), 64)
}

func TestPacketKeyCommand(t *testing.T) {
	out, err := runCommand(t, "packet", "key", "commitment", "client-0", "--sequence", "7")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "01"))

	_, err = runCommand(t, "packet", "key", "nonsense", "client-0")
	require.Error(t, err)
}
