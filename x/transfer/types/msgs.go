package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// MsgTransfer initiates a fungible token transfer over a client. Coins are
// named by their local bank denomination; the keeper resolves vouchers back
// to their full trace through the denom registry.
type MsgTransfer struct {
	Sender           string               `json:"sender"`
	SourceClient     string               `json:"source_client"`
	Tokens           []sdk.Coin           `json:"tokens"`
	Receiver         string               `json:"receiver"`
	TimeoutTimestamp uint64               `json:"timeout_timestamp"`
	Memo             string               `json:"memo,omitempty"`
	Forwarding       ForwardingPacketData `json:"forwarding,omitempty"`
}

// NewMsgTransfer constructs a transfer message without forwarding.
func NewMsgTransfer(sender, sourceClient string, tokens []sdk.Coin, receiver string, timeoutTimestamp uint64, memo string) *MsgTransfer {
	return &MsgTransfer{
		Sender:           sender,
		SourceClient:     sourceClient,
		Tokens:           tokens,
		Receiver:         receiver,
		TimeoutTimestamp: timeoutTimestamp,
		Memo:             memo,
	}
}

// ValidateBasic performs stateless validation.
func (msg *MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidSender, "%s", err)
	}
	if err := routertypes.ValidateClientID(msg.SourceClient); err != nil {
		return err
	}
	if len(msg.Tokens) == 0 {
		return errorsmod.Wrap(ErrInvalidAmount, "tokens cannot be empty")
	}
	if len(msg.Tokens) > MaxTokensPerPacket {
		return errorsmod.Wrapf(ErrInvalidAmount, "%d tokens, maximum is %d", len(msg.Tokens), MaxTokensPerPacket)
	}
	for _, coin := range msg.Tokens {
		if err := coin.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidAmount, "%s", err)
		}
		if !coin.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidAmount, "amount must be strictly positive, got %s", coin)
		}
	}
	if strings.TrimSpace(msg.Receiver) == "" {
		return errorsmod.Wrap(ErrInvalidReceiver, "receiver cannot be empty")
	}
	if len(msg.Memo) > MaxMemoLength {
		return errorsmod.Wrapf(ErrInvalidMemo, "memo exceeds %d bytes", MaxMemoLength)
	}
	return msg.Forwarding.Validate()
}

// MsgTransferResponse returns the sequence allocated to the transfer packet.
type MsgTransferResponse struct {
	Sequence uint64 `json:"sequence"`
}

// MsgSetRateLimit sets or clears the daily outflow limit of a denom. Only the
// module authority may submit it. A zero limit removes the restriction.
type MsgSetRateLimit struct {
	Authority  string   `json:"authority"`
	Denom      string   `json:"denom"`
	DailyLimit math.Int `json:"daily_limit"`
}

// NewMsgSetRateLimit constructs a rate limit message.
func NewMsgSetRateLimit(authority, denom string, dailyLimit math.Int) *MsgSetRateLimit {
	return &MsgSetRateLimit{Authority: authority, Denom: denom, DailyLimit: dailyLimit}
}

// ValidateBasic performs stateless validation.
func (msg *MsgSetRateLimit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(ErrInvalidAuthority, "%s", err)
	}
	if strings.TrimSpace(msg.Denom) == "" {
		return errorsmod.Wrap(ErrInvalidDenom, "denom cannot be empty")
	}
	if msg.DailyLimit.IsNil() || msg.DailyLimit.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "daily limit cannot be nil or negative")
	}
	return nil
}

// MsgSetRateLimitResponse is the response to MsgSetRateLimit.
type MsgSetRateLimitResponse struct{}
