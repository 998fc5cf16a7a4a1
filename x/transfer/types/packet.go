package types

import (
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// SuccessAcknowledgement is the app-level acknowledgement written for a
// successfully executed transfer payload.
var SuccessAcknowledgement = []byte{0x01}

// Token is one asset entry in a fungible token packet.
type Token struct {
	Denom  Denom  `json:"denom"`
	Amount string `json:"amount"`
}

// NewToken constructs a token from a denom and an integer amount.
func NewToken(denom Denom, amount math.Int) Token {
	return Token{Denom: denom, Amount: amount.String()}
}

// Validate checks the token denom and amount.
func (t Token) Validate() error {
	if err := t.Denom.Validate(); err != nil {
		return err
	}
	amount, ok := math.NewIntFromString(t.Amount)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidAmount, "cannot parse %q", t.Amount)
	}
	if !amount.IsPositive() {
		return errorsmod.Wrapf(ErrInvalidAmount, "amount must be strictly positive, got %s", amount)
	}
	return nil
}

// ParsedAmount returns the token amount as an integer. Call Validate first.
func (t Token) ParsedAmount() math.Int {
	amount, _ := math.NewIntFromString(t.Amount)
	return amount
}

// ForwardingPacketData carries the remaining hops of a multi-hop transfer.
// This chain never acts as an intermediary: any received packet carrying a
// non-empty forwarding path is rejected with an error acknowledgement.
type ForwardingPacketData struct {
	DestinationMemo string `json:"destination_memo,omitempty"`
	Hops            []Hop  `json:"hops,omitempty"`
}

// Validate checks the forwarding path bounds.
func (fpd ForwardingPacketData) Validate() error {
	if len(fpd.Hops) > MaxForwardingHops {
		return errorsmod.Wrapf(ErrInvalidForwarding, "%d hops, maximum is %d", len(fpd.Hops), MaxForwardingHops)
	}
	for i, hop := range fpd.Hops {
		if err := hop.Validate(); err != nil {
			return errorsmod.Wrapf(err, "forwarding hop %d", i)
		}
	}
	if len(fpd.Hops) == 0 && fpd.DestinationMemo != "" {
		return errorsmod.Wrap(ErrInvalidForwarding, "destination memo requires forwarding hops")
	}
	if len(fpd.Hops) > 0 && len(fpd.DestinationMemo) > MaxMemoLength {
		return errorsmod.Wrapf(ErrInvalidMemo, "destination memo exceeds %d bytes", MaxMemoLength)
	}
	return nil
}

// Empty reports whether no forwarding is requested.
func (fpd ForwardingPacketData) Empty() bool {
	return len(fpd.Hops) == 0
}

// FungibleTokenPacketData is the JSON payload of a token transfer packet.
type FungibleTokenPacketData struct {
	Tokens     []Token              `json:"tokens"`
	Sender     string               `json:"sender"`
	Receiver   string               `json:"receiver"`
	Memo       string               `json:"memo,omitempty"`
	Forwarding ForwardingPacketData `json:"forwarding,omitempty"`
}

// NewFungibleTokenPacketData constructs packet data without forwarding.
func NewFungibleTokenPacketData(tokens []Token, sender, receiver, memo string) FungibleTokenPacketData {
	return FungibleTokenPacketData{
		Tokens:   tokens,
		Sender:   sender,
		Receiver: receiver,
		Memo:     memo,
	}
}

// ValidateBasic performs stateless packet data validation.
func (ftpd FungibleTokenPacketData) ValidateBasic() error {
	if len(ftpd.Tokens) == 0 {
		return errorsmod.Wrap(ErrInvalidPacketData, "tokens cannot be empty")
	}
	if len(ftpd.Tokens) > MaxTokensPerPacket {
		return errorsmod.Wrapf(ErrInvalidPacketData, "%d tokens, maximum is %d", len(ftpd.Tokens), MaxTokensPerPacket)
	}
	for i, token := range ftpd.Tokens {
		if err := token.Validate(); err != nil {
			return errorsmod.Wrapf(err, "token %d", i)
		}
	}
	if strings.TrimSpace(ftpd.Sender) == "" {
		return errorsmod.Wrap(ErrInvalidSender, "sender cannot be empty")
	}
	if strings.TrimSpace(ftpd.Receiver) == "" {
		return errorsmod.Wrap(ErrInvalidReceiver, "receiver cannot be empty")
	}
	if len(ftpd.Memo) > MaxMemoLength {
		return errorsmod.Wrapf(ErrInvalidMemo, "memo exceeds %d bytes", MaxMemoLength)
	}
	return ftpd.Forwarding.Validate()
}

// GetBytes serializes the packet data as JSON for the payload value.
func (ftpd FungibleTokenPacketData) GetBytes() []byte {
	bz, err := json.Marshal(ftpd)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalPacketData decodes a payload value into fungible token packet
// data, checking the declared encoding first.
func UnmarshalPacketData(bz []byte, encoding string) (FungibleTokenPacketData, error) {
	if encoding != EncodingJSON {
		return FungibleTokenPacketData{}, errorsmod.Wrapf(ErrInvalidPacketData, "unsupported encoding %q", encoding)
	}
	var ftpd FungibleTokenPacketData
	if err := json.Unmarshal(bz, &ftpd); err != nil {
		return FungibleTokenPacketData{}, errorsmod.Wrapf(ErrInvalidPacketData, "cannot decode packet data: %s", err)
	}
	if err := ftpd.ValidateBasic(); err != nil {
		return FungibleTokenPacketData{}, err
	}
	return ftpd, nil
}

// NewTransferPayload builds the router payload carrying the packet data.
func NewTransferPayload(ftpd FungibleTokenPacketData) routertypes.Payload {
	return routertypes.NewPayload(PortID, PortID, Version, EncodingJSON, ftpd.GetBytes())
}
