package types

import (
	"cosmossdk.io/errors"
)

// Router module sentinel errors
var (
	ErrInvalidPacket           = errors.Register(ModuleName, 2, "invalid packet")
	ErrInvalidPayload          = errors.Register(ModuleName, 3, "invalid payload")
	ErrClientNotFound          = errors.Register(ModuleName, 4, "client not found")
	ErrClientExists            = errors.Register(ModuleName, 5, "client identifier already in use")
	ErrAppNotFound             = errors.Register(ModuleName, 6, "no application registered for port")
	ErrTimeoutInPast           = errors.Register(ModuleName, 7, "timeout in past")
	ErrInvalidTimeoutDuration  = errors.Register(ModuleName, 8, "invalid timeout duration")
	ErrTimeoutElapsed          = errors.Register(ModuleName, 9, "invalid timeout timestamp")
	ErrTimeoutNotReached       = errors.Register(ModuleName, 10, "timeout not reached")
	ErrCommitmentMismatch      = errors.Register(ModuleName, 11, "packet commitment mismatch")
	ErrMembershipVerification  = errors.Register(ModuleName, 12, "membership verification failed")
	ErrInvalidAcknowledgement  = errors.Register(ModuleName, 13, "invalid acknowledgement")
	ErrAcknowledgementExists   = errors.Register(ModuleName, 14, "acknowledgement already written")
	ErrInvalidClientID         = errors.Register(ModuleName, 15, "invalid client identifier")
	ErrInvalidCounterparty     = errors.Register(ModuleName, 16, "invalid counterparty")
	ErrInvalidMulticall        = errors.Register(ModuleName, 17, "invalid multicall")
	ErrInvalidSigner           = errors.Register(ModuleName, 18, "invalid signer")
	ErrInvalidGenesis          = errors.Register(ModuleName, 19, "invalid genesis state")
)
