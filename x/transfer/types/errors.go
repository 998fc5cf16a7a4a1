package types

import (
	"cosmossdk.io/errors"
)

// Transfer module sentinel errors
var (
	ErrInvalidDenom           = errors.Register(ModuleName, 2, "invalid denomination")
	ErrDenomNotFound          = errors.Register(ModuleName, 3, "denom not found")
	ErrInvalidAmount          = errors.Register(ModuleName, 4, "invalid transfer amount")
	ErrInvalidPacketData      = errors.Register(ModuleName, 5, "invalid fungible token packet data")
	ErrInvalidMemo            = errors.Register(ModuleName, 6, "invalid memo")
	ErrMaxTraceLength         = errors.Register(ModuleName, 7, "denomination trace exceeds maximum length")
	ErrForwardingUnsupported  = errors.Register(ModuleName, 8, "forwarding not supported on receiving chain")
	ErrInvalidForwarding      = errors.Register(ModuleName, 9, "invalid forwarding path")
	ErrEscrowMismatch         = errors.Register(ModuleName, 10, "escrow balance delta mismatch")
	ErrInsufficientEscrow     = errors.Register(ModuleName, 11, "insufficient escrow balance")
	ErrRateLimitExceeded      = errors.Register(ModuleName, 12, "daily rate limit exceeded")
	ErrPendingTransferExists  = errors.Register(ModuleName, 13, "pending transfer already recorded")
	ErrPendingTransferMissing = errors.Register(ModuleName, 14, "pending transfer not found")
	ErrInvalidSender          = errors.Register(ModuleName, 15, "invalid sender")
	ErrInvalidReceiver        = errors.Register(ModuleName, 16, "invalid receiver")
	ErrInvalidAuthority       = errors.Register(ModuleName, 17, "invalid authority")
	ErrInvalidGenesis         = errors.Register(ModuleName, 18, "invalid genesis state")
)
