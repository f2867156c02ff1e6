package sigs

import (
	"github.com/starbounty/vault/errors"
)

// x/sigs reserves codes 120 ~ 129.
var (
	// ErrInvalidSequence is returned when a signature nonce does not match
	// the stored sequence of its signer.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")
)
