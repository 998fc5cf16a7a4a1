package types

import "time"

const (
	// ModuleName defines the module name
	ModuleName = "router"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

const (
	// MaxTimeoutDuration bounds how far in the future a packet timeout may be
	// set. Relayers cannot be forced to track commitments indefinitely.
	MaxTimeoutDuration = 24 * time.Hour

	// MaxClientIDLength bounds client identifiers stored in commitment keys.
	MaxClientIDLength = 64

	// MaxPortIDLength bounds port identifiers carried in payloads.
	MaxPortIDLength = 128

	// MaxPayloadsPerPacket bounds the number of payloads a single packet may
	// carry. Multi-payload packets are processed atomically.
	MaxPayloadsPerPacket = 16
)
