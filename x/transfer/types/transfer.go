package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PendingTransfer records the funds moved out of a sender's account for an
// in-flight packet. It is written exactly once at send time and consumed
// exactly once, either by the acknowledgement or by the timeout, which makes
// refunds replay-safe.
type PendingTransfer struct {
	Sender string  `json:"sender"`
	Tokens []Token `json:"tokens"`
}

// Validate checks the pending transfer record.
func (pt PendingTransfer) Validate() error {
	if _, err := sdk.AccAddressFromBech32(pt.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidSender, "%s", err)
	}
	if len(pt.Tokens) == 0 {
		return errorsmod.Wrap(ErrInvalidPacketData, "pending transfer has no tokens")
	}
	for i, token := range pt.Tokens {
		if err := token.Validate(); err != nil {
			return errorsmod.Wrapf(err, "token %d", i)
		}
	}
	return nil
}

// RateLimit is the daily outflow cap of a local denom. A zero limit means the
// denom is unrestricted.
type RateLimit struct {
	Denom      string   `json:"denom"`
	DailyLimit math.Int `json:"daily_limit"`
}

// Validate checks the rate limit entry.
func (rl RateLimit) Validate() error {
	if rl.Denom == "" {
		return errorsmod.Wrap(ErrInvalidDenom, "rate limit denom cannot be empty")
	}
	if rl.DailyLimit.IsNil() || rl.DailyLimit.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "daily limit cannot be nil or negative")
	}
	return nil
}
