package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// DenomPrefix prefixes every voucher denomination minted for a foreign asset.
const DenomPrefix = "ibc"

// Hop is one (port, client) crossing in a denomination trace.
type Hop struct {
	PortID   string `json:"port_id"`
	ClientID string `json:"client_id"`
}

// NewHop constructs a hop.
func NewHop(portID, clientID string) Hop {
	return Hop{PortID: portID, ClientID: clientID}
}

// String serializes a hop as "port/client".
func (h Hop) String() string {
	return h.PortID + "/" + h.ClientID
}

// Validate checks the hop identifiers.
func (h Hop) Validate() error {
	if strings.TrimSpace(h.PortID) == "" || strings.Contains(h.PortID, "/") {
		return errorsmod.Wrapf(ErrInvalidDenom, "invalid hop port %q", h.PortID)
	}
	if strings.TrimSpace(h.ClientID) == "" || strings.Contains(h.ClientID, "/") {
		return errorsmod.Wrapf(ErrInvalidDenom, "invalid hop client %q", h.ClientID)
	}
	return nil
}

// Denom is a token denomination together with the ordered trace of hops it
// crossed since its native chain, most recent hop first. An empty trace means
// the token is native here and Base is the local denomination; a non-empty
// trace identifies a voucher for a foreign asset.
type Denom struct {
	Base  string `json:"base"`
	Trace []Hop  `json:"trace,omitempty"`
}

// NewDenom constructs a denom from a base and ordered hops.
func NewDenom(base string, trace ...Hop) Denom {
	return Denom{Base: base, Trace: trace}
}

// Validate checks the denom structure.
func (d Denom) Validate() error {
	if strings.TrimSpace(d.Base) == "" {
		return errorsmod.Wrap(ErrInvalidDenom, "base cannot be empty")
	}
	if len(d.Trace) > MaxTraceLength {
		return errorsmod.Wrapf(ErrMaxTraceLength, "%d hops, maximum is %d", len(d.Trace), MaxTraceLength)
	}
	for i, hop := range d.Trace {
		if err := hop.Validate(); err != nil {
			return errorsmod.Wrapf(err, "hop %d", i)
		}
	}
	return nil
}

// Path serializes the denom as "hop1Port/hop1Client/.../base". This exact
// format is a cross-chain wire contract and feeds the voucher denom hash.
func (d Denom) Path() string {
	if !d.IsTraced() {
		return d.Base
	}
	var sb strings.Builder
	for _, hop := range d.Trace {
		sb.WriteString(hop.String())
		sb.WriteByte('/')
	}
	sb.WriteString(d.Base)
	return sb.String()
}

// Hash returns the sha256 of the denom path, the registry key of the
// voucher contract for this denom.
func (d Denom) Hash() []byte {
	h := sha256.Sum256([]byte(d.Path()))
	return h[:]
}

// IBCDenom returns the local bank denomination: the base itself for native
// tokens, "ibc/<hex path hash>" for traced vouchers.
func (d Denom) IBCDenom() string {
	if !d.IsTraced() {
		return d.Base
	}
	return DenomPrefix + "/" + strings.ToUpper(hex.EncodeToString(d.Hash()))
}

// IsTraced reports whether the denom crossed at least one hop.
func (d Denom) IsTraced() bool {
	return len(d.Trace) > 0
}

// HasPrefix reports whether the denom's most recent hop is (portID, clientID).
// A chain is the source for an outgoing token exactly when this is false for
// the outgoing (sourcePort, sourceClient); when it is true the token is
// returning home and must be burned, not escrowed.
func (d Denom) HasPrefix(portID, clientID string) bool {
	return len(d.Trace) > 0 && d.Trace[0].PortID == portID && d.Trace[0].ClientID == clientID
}

// AddHop returns the denom with a hop prepended, as performed by the
// receiving chain of a forward transfer.
func (d Denom) AddHop(hop Hop) Denom {
	trace := make([]Hop, 0, len(d.Trace)+1)
	trace = append(trace, hop)
	trace = append(trace, d.Trace...)
	return Denom{Base: d.Base, Trace: trace}
}

// RemoveHop returns the denom with its most recent hop stripped, as performed
// by the receiving chain of a return transfer.
func (d Denom) RemoveHop() Denom {
	if len(d.Trace) == 0 {
		return d
	}
	trace := make([]Hop, len(d.Trace)-1)
	copy(trace, d.Trace[1:])
	return Denom{Base: d.Base, Trace: trace}
}

// Equal reports structural denom equality.
func (d Denom) Equal(other Denom) bool {
	if d.Base != other.Base || len(d.Trace) != len(other.Trace) {
		return false
	}
	for i := range d.Trace {
		if d.Trace[i] != other.Trace[i] {
			return false
		}
	}
	return true
}

// ExtractDenomFromPath parses a full denom path back into a Denom. Leading
// "port/client" pairs are consumed while the client slot matches the client
// identifier format; the remainder (which may itself contain "/") is the
// base. Together with Path this round-trips losslessly.
func ExtractDenomFromPath(fullPath string) Denom {
	parts := strings.Split(fullPath, "/")

	var trace []Hop
	i := 0
	for i+1 < len(parts) {
		if parts[i] == "" || !isClientIdentifier(parts[i+1]) {
			break
		}
		trace = append(trace, NewHop(parts[i], parts[i+1]))
		i += 2
	}
	return Denom{Base: strings.Join(parts[i:], "/"), Trace: trace}
}

// isClientIdentifier reports whether a path segment follows the client id
// convention "<name>-<number>" (e.g. "client-7").
func isClientIdentifier(segment string) bool {
	idx := strings.LastIndex(segment, "-")
	if idx <= 0 || idx == len(segment)-1 {
		return false
	}
	_, err := strconv.ParseUint(segment[idx+1:], 10, 64)
	return err == nil
}

// ParseHexHash parses the hash portion of an "ibc/<hash>" bank denomination.
func ParseHexHash(hexHash string) ([]byte, error) {
	hash, err := hex.DecodeString(strings.ToLower(hexHash))
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidDenom, "cannot decode denom hash %q: %s", hexHash, err)
	}
	if len(hash) != sha256.Size {
		return nil, errorsmod.Wrapf(ErrInvalidDenom, "denom hash has %d bytes, want %d", len(hash), sha256.Size)
	}
	return hash, nil
}
