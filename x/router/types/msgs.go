package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSendPacket requests the router to send a packet through a client.
type MsgSendPacket struct {
	SourceClient     string    `json:"source_client"`
	TimeoutTimestamp uint64    `json:"timeout_timestamp"`
	Payloads         []Payload `json:"payloads"`
	Signer           string    `json:"signer"`
}

// ValidateBasic performs stateless validation.
func (msg MsgSendPacket) ValidateBasic() error {
	if err := ValidateClientID(msg.SourceClient); err != nil {
		return err
	}
	if msg.TimeoutTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "timeout timestamp must be set")
	}
	if len(msg.Payloads) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "at least one payload required")
	}
	for i, payload := range msg.Payloads {
		if err := payload.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "payload %d", i)
		}
	}
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid signer address: %s", err)
	}
	return nil
}

// MsgSendPacketResponse reports the allocated sequence.
type MsgSendPacketResponse struct {
	Sequence uint64 `json:"sequence"`
}

// MsgRecvPacket delivers a proven packet to this chain.
type MsgRecvPacket struct {
	Packet      Packet `json:"packet"`
	Proof       []byte `json:"proof"`
	ProofHeight uint64 `json:"proof_height"`
	Relayer     string `json:"relayer"`
}

// ValidateBasic performs stateless validation.
func (msg MsgRecvPacket) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof cannot be empty")
	}
	if msg.ProofHeight == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof height must be set")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid relayer address: %s", err)
	}
	return nil
}

// MsgRecvPacketResponse carries the acknowledgement for the relayer to
// transport back to the sending chain. Empty on a replay noop.
type MsgRecvPacketResponse struct {
	Acknowledgement *Acknowledgement `json:"acknowledgement,omitempty"`
}

// MsgAckPacket closes a sent packet with its proven acknowledgement.
type MsgAckPacket struct {
	Packet          Packet          `json:"packet"`
	Acknowledgement Acknowledgement `json:"acknowledgement"`
	Proof           []byte          `json:"proof"`
	ProofHeight     uint64          `json:"proof_height"`
	Relayer         string          `json:"relayer"`
}

// ValidateBasic performs stateless validation.
func (msg MsgAckPacket) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if err := msg.Acknowledgement.Validate(); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof cannot be empty")
	}
	if msg.ProofHeight == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof height must be set")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid relayer address: %s", err)
	}
	return nil
}

// MsgAckPacketResponse is the (empty) ack handler response.
type MsgAckPacketResponse struct{}

// MsgTimeoutPacket closes a sent packet whose timeout elapsed and whose
// non-delivery is proven.
type MsgTimeoutPacket struct {
	Packet      Packet `json:"packet"`
	Proof       []byte `json:"proof"`
	ProofHeight uint64 `json:"proof_height"`
	Relayer     string `json:"relayer"`
}

// ValidateBasic performs stateless validation.
func (msg MsgTimeoutPacket) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof cannot be empty")
	}
	if msg.ProofHeight == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "proof height must be set")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid relayer address: %s", err)
	}
	return nil
}

// MsgTimeoutPacketResponse is the (empty) timeout handler response.
type MsgTimeoutPacketResponse struct{}

// MulticallMsg is one entry of a multicall batch. Exactly one field is set.
type MulticallMsg struct {
	RecvPacket    *MsgRecvPacket    `json:"recv_packet,omitempty"`
	AckPacket     *MsgAckPacket     `json:"ack_packet,omitempty"`
	TimeoutPacket *MsgTimeoutPacket `json:"timeout_packet,omitempty"`
}

// ValidateBasic checks that exactly one call is populated and valid.
func (m MulticallMsg) ValidateBasic() error {
	set := 0
	if m.RecvPacket != nil {
		set++
		if err := m.RecvPacket.ValidateBasic(); err != nil {
			return err
		}
	}
	if m.AckPacket != nil {
		set++
		if err := m.AckPacket.ValidateBasic(); err != nil {
			return err
		}
	}
	if m.TimeoutPacket != nil {
		set++
		if err := m.TimeoutPacket.ValidateBasic(); err != nil {
			return err
		}
	}
	if set != 1 {
		return errorsmod.Wrapf(ErrInvalidMulticall, "expected exactly one call per entry, got %d", set)
	}
	return nil
}

// MsgMulticall executes an ordered list of packet calls atomically: any
// failure discards the effects of the entire batch.
type MsgMulticall struct {
	Calls  []MulticallMsg `json:"calls"`
	Signer string         `json:"signer"`
}

// ValidateBasic performs stateless validation.
func (msg MsgMulticall) ValidateBasic() error {
	if len(msg.Calls) == 0 {
		return errorsmod.Wrap(ErrInvalidMulticall, "batch cannot be empty")
	}
	for i, call := range msg.Calls {
		if err := call.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "call %d", i)
		}
	}
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid signer address: %s", err)
	}
	return nil
}

// MsgMulticallResponse carries per-call receive acknowledgements (nil entries
// for ack/timeout calls and replay noops).
type MsgMulticallResponse struct {
	Acknowledgements []*Acknowledgement `json:"acknowledgements"`
}
