package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UpdateResult is the outcome of a client update.
type UpdateResult int

const (
	// UpdateResultUpdate indicates the client state was advanced.
	UpdateResultUpdate UpdateResult = iota
	// UpdateResultNoop indicates the update carried no new information.
	UpdateResultNoop
	// UpdateResultMisbehaviour indicates the update proved misbehaviour and
	// froze the client.
	UpdateResultMisbehaviour
)

// LightClientModule is the opaque verification capability the router consumes,
// keyed by client id. Proof verification and state-update logic live entirely
// behind this interface.
type LightClientModule interface {
	// UpdateClient processes a client message (header, batch, misbehaviour).
	UpdateClient(ctx sdk.Context, clientID string, msg []byte) (UpdateResult, error)

	// VerifyMembership verifies that value exists at path on the counterparty
	// at the given height. path is the key path under the counterparty's
	// merkle prefix.
	VerifyMembership(ctx sdk.Context, clientID string, height uint64, proof []byte, path [][]byte, value []byte) error

	// VerifyNonMembership verifies that no value exists at path on the
	// counterparty at the given height.
	VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, proof []byte, path [][]byte) error

	// TimestampAtHeight returns the counterparty consensus timestamp (unix
	// seconds) recorded at the given height.
	TimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error)

	// Misbehaviour submits misbehaviour evidence for the client.
	Misbehaviour(ctx sdk.Context, clientID string, msg []byte) error

	// ClientState returns the opaque encoded client state.
	ClientState(ctx sdk.Context, clientID string) ([]byte, error)
}

// Counterparty records the identity a local client verifies against: the
// client id our packets are addressed to on the remote chain and the merkle
// key prefix its commitments are stored under.
type Counterparty struct {
	ClientID     string   `json:"client_id"`
	MerklePrefix [][]byte `json:"merkle_prefix"`
}

// NewCounterparty constructs a counterparty record.
func NewCounterparty(clientID string, merklePrefix [][]byte) Counterparty {
	return Counterparty{ClientID: clientID, MerklePrefix: merklePrefix}
}

// Validate checks the counterparty record.
func (c Counterparty) Validate() error {
	if err := ValidateClientID(c.ClientID); err != nil {
		return errorsmod.Wrap(ErrInvalidCounterparty, err.Error())
	}
	if len(c.MerklePrefix) == 0 {
		return errorsmod.Wrap(ErrInvalidCounterparty, "merkle prefix cannot be empty")
	}
	return nil
}

// MerklePath returns the full proof path for a key under the counterparty's
// merkle prefix.
func (c Counterparty) MerklePath(key []byte) [][]byte {
	path := make([][]byte, 0, len(c.MerklePrefix)+1)
	path = append(path, c.MerklePrefix...)
	return append(path, key)
}
