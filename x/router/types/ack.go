package types

import (
	"bytes"
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"
)

// ErrorAcknowledgement is the universal error acknowledgement. An app callback
// that fails during receive does not abort the transaction; the router records
// this sentinel instead so the sending chain gets a definitive failure ack and
// can release or refund escrow.
var ErrorAcknowledgement = func() []byte {
	h := sha256.Sum256([]byte("UNIVERSAL_ERROR_ACKNOWLEDGEMENT"))
	return h[:]
}()

// Acknowledgement carries one app acknowledgement per packet payload, in
// payload order.
type Acknowledgement struct {
	AppAcknowledgements [][]byte `json:"app_acknowledgements"`
}

// NewAcknowledgement constructs an acknowledgement.
func NewAcknowledgement(appAcks ...[]byte) Acknowledgement {
	return Acknowledgement{AppAcknowledgements: appAcks}
}

// NewErrorAcknowledgement returns the acknowledgement recorded when any
// payload callback fails: a single universal error sentinel replacing all
// per-payload acks.
func NewErrorAcknowledgement() Acknowledgement {
	return NewAcknowledgement(ErrorAcknowledgement)
}

// Validate checks the acknowledgement structure.
func (a Acknowledgement) Validate() error {
	if len(a.AppAcknowledgements) == 0 {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot be empty")
	}
	for i, appAck := range a.AppAcknowledgements {
		if len(appAck) == 0 {
			return errorsmod.Wrapf(ErrInvalidAcknowledgement, "app acknowledgement %d is empty", i)
		}
	}
	return nil
}

// IsError reports whether the acknowledgement is the universal error
// acknowledgement.
func (a Acknowledgement) IsError() bool {
	return len(a.AppAcknowledgements) == 1 && bytes.Equal(a.AppAcknowledgements[0], ErrorAcknowledgement)
}

// IsErrorAcknowledgement reports whether a single app acknowledgement equals
// the universal error sentinel.
func IsErrorAcknowledgement(appAck []byte) bool {
	return bytes.Equal(appAck, ErrorAcknowledgement)
}
