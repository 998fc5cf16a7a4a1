package types

const (
	// ModuleName defines the module name
	ModuleName = "transfer"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// PortID is the port the transfer application is registered under.
	PortID = "transfer"

	// Version is the payload version of the fungible token transfer protocol.
	Version = "transfer-1"

	// EncodingJSON is the payload encoding for fungible token packet data.
	EncodingJSON = "application/json"
)

const (
	// MaxTraceLength bounds how many hops a denomination may accumulate.
	MaxTraceLength = 32

	// MaxForwardingHops bounds origin-side forwarding paths.
	MaxForwardingHops = 8

	// MaxMemoLength bounds the packet memo (bytes).
	MaxMemoLength = 32 * 1024

	// MaxTokensPerPacket bounds the tokens carried in one payload. All tokens
	// of a payload are processed atomically.
	MaxTokensPerPacket = 16
)
