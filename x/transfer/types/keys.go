package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Store key prefixes
var (
	DenomKey           = []byte{0x01} // prefix for the voucher denom registry (by path hash)
	TotalEscrowKey     = []byte{0x02} // prefix for per-denom escrowed totals
	PendingTransferKey = []byte{0x03} // prefix for pending transfer records
	RateLimitKey       = []byte{0x04} // prefix for per-denom daily limits
	RateLimitUsageKey  = []byte{0x05} // prefix for per-denom daily usage buckets
)

// DenomHashKey returns the registry key for a denom by its path hash.
func DenomHashKey(hash []byte) []byte {
	return append(DenomKey, hash...)
}

// TotalEscrowForDenomKey returns the key tracking the escrowed total of a denom.
func TotalEscrowForDenomKey(denom string) []byte {
	return append(TotalEscrowKey, []byte(denom)...)
}

// PendingTransferForKey returns the key of a pending transfer record.
func PendingTransferForKey(clientID string, sequence uint64) []byte {
	key := append(PendingTransferKey, []byte(clientID)...)
	key = append(key, byte(0))
	return append(key, sdk.Uint64ToBigEndian(sequence)...)
}

// RateLimitForDenomKey returns the key of a denom's daily limit.
func RateLimitForDenomKey(denom string) []byte {
	return append(RateLimitKey, []byte(denom)...)
}

// RateLimitUsageForKey returns the key of a denom's usage bucket for a UTC day.
func RateLimitUsageForKey(denom string, epochDay int64) []byte {
	key := append(RateLimitUsageKey, sdk.Uint64ToBigEndian(uint64(epochDay))...)
	return append(key, []byte(denom)...)
}

// GetEscrowAddress derives the escrow account for a client. One escrow
// account exists per (transfer app, client); it is created lazily by the
// first send through that client.
func GetEscrowAddress(clientID string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(clientID)))
}
