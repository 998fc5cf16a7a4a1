package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Payload is one application message carried by a packet. Value is opaque to
// the router; the application registered under DestinationPort decodes it
// according to Version and Encoding.
type Payload struct {
	SourcePort      string `json:"source_port"`
	DestinationPort string `json:"destination_port"`
	Version         string `json:"version"`
	Encoding        string `json:"encoding"`
	Value           []byte `json:"value"`
}

// NewPayload constructs a payload.
func NewPayload(sourcePort, destPort, version, encoding string, value []byte) Payload {
	return Payload{
		SourcePort:      sourcePort,
		DestinationPort: destPort,
		Version:         version,
		Encoding:        encoding,
		Value:           value,
	}
}

// ValidateBasic performs stateless validation of a payload.
func (p Payload) ValidateBasic() error {
	if p.SourcePort == "" || len(p.SourcePort) > MaxPortIDLength {
		return errorsmod.Wrapf(ErrInvalidPayload, "invalid source port %q", p.SourcePort)
	}
	if p.DestinationPort == "" || len(p.DestinationPort) > MaxPortIDLength {
		return errorsmod.Wrapf(ErrInvalidPayload, "invalid destination port %q", p.DestinationPort)
	}
	if p.Version == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "version cannot be empty")
	}
	if p.Encoding == "" {
		return errorsmod.Wrap(ErrInvalidPayload, "encoding cannot be empty")
	}
	if len(p.Value) == 0 {
		return errorsmod.Wrap(ErrInvalidPayload, "value cannot be empty")
	}
	return nil
}

// Packet is one routed message between two clients. It is ephemeral:
// constructed at send time and reconstructed identically by the relayer at
// receive, acknowledge and timeout time, where its hash must match the stored
// commitment.
type Packet struct {
	Sequence          uint64    `json:"sequence"`
	SourceClient      string    `json:"source_client"`
	DestinationClient string    `json:"destination_client"`
	TimeoutTimestamp  uint64    `json:"timeout_timestamp"` // unix seconds
	Payloads          []Payload `json:"payloads"`
}

// NewPacket constructs a packet.
func NewPacket(sequence uint64, sourceClient, destClient string, timeoutTimestamp uint64, payloads ...Payload) Packet {
	return Packet{
		Sequence:          sequence,
		SourceClient:      sourceClient,
		DestinationClient: destClient,
		TimeoutTimestamp:  timeoutTimestamp,
		Payloads:          payloads,
	}
}

// ValidateBasic performs stateless validation of a packet.
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "sequence must be greater than zero")
	}
	if err := validateClientID(p.SourceClient); err != nil {
		return errorsmod.Wrap(err, "source client")
	}
	if err := validateClientID(p.DestinationClient); err != nil {
		return errorsmod.Wrap(err, "destination client")
	}
	if p.TimeoutTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "timeout timestamp must be set")
	}
	if len(p.Payloads) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet must carry at least one payload")
	}
	if len(p.Payloads) > MaxPayloadsPerPacket {
		return errorsmod.Wrapf(ErrInvalidPacket, "packet carries %d payloads, maximum is %d", len(p.Payloads), MaxPayloadsPerPacket)
	}
	for i, payload := range p.Payloads {
		if err := payload.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "payload %d", i)
		}
	}
	return nil
}

func validateClientID(clientID string) error {
	if clientID == "" {
		return errorsmod.Wrap(ErrInvalidClientID, "identifier cannot be empty")
	}
	if len(clientID) > MaxClientIDLength {
		return errorsmod.Wrapf(ErrInvalidClientID, "identifier %q exceeds %d characters", clientID, MaxClientIDLength)
	}
	for _, c := range clientID {
		if c == '/' || c == 0 {
			return errorsmod.Wrapf(ErrInvalidClientID, "identifier %q contains illegal character", clientID)
		}
	}
	return nil
}

// ValidateClientID reports whether an identifier is usable as a client id.
func ValidateClientID(clientID string) error {
	return validateClientID(clientID)
}
