package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PendingTransferGenesis is a pending transfer together with the packet
// identity it belongs to.
type PendingTransferGenesis struct {
	ClientID string          `json:"client_id"`
	Sequence uint64          `json:"sequence"`
	Transfer PendingTransfer `json:"transfer"`
}

// GenesisState is the transfer module genesis state.
type GenesisState struct {
	Denoms           []Denom                  `json:"denoms"`
	TotalEscrows     sdk.Coins                `json:"total_escrows"`
	PendingTransfers []PendingTransferGenesis `json:"pending_transfers"`
	RateLimits       []RateLimit              `json:"rate_limits"`
}

// DefaultGenesis returns the empty transfer genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	seenDenoms := make(map[string]struct{}, len(gs.Denoms))
	for _, denom := range gs.Denoms {
		if err := denom.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "denom %q: %s", denom.Path(), err)
		}
		if !denom.IsTraced() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "denom %q has no trace", denom.Base)
		}
		path := denom.Path()
		if _, ok := seenDenoms[path]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate denom %q", path)
		}
		seenDenoms[path] = struct{}{}
	}

	if err := gs.TotalEscrows.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidGenesis, "total escrows: %s", err)
	}

	seenPending := make(map[string]struct{}, len(gs.PendingTransfers))
	for _, pending := range gs.PendingTransfers {
		if pending.ClientID == "" {
			return errorsmod.Wrap(ErrInvalidGenesis, "pending transfer client id cannot be empty")
		}
		if err := pending.Transfer.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pending transfer %s/%d: %s", pending.ClientID, pending.Sequence, err)
		}
		key := string(PendingTransferForKey(pending.ClientID, pending.Sequence))
		if _, ok := seenPending[key]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate pending transfer %s/%d", pending.ClientID, pending.Sequence)
		}
		seenPending[key] = struct{}{}
	}

	seenLimits := make(map[string]struct{}, len(gs.RateLimits))
	for _, limit := range gs.RateLimits {
		if err := limit.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "rate limit %q: %s", limit.Denom, err)
		}
		if _, ok := seenLimits[limit.Denom]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate rate limit %q", limit.Denom)
		}
		seenLimits[limit.Denom] = struct{}{}
	}
	return nil
}
