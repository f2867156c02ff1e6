// Package bech32 converts addresses to and from the bech32 format. The
// checksum and the base32 alphabet are implemented by btcutil, this package
// only regroups the payload bits.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"

	"github.com/starbounty/vault/errors"
)

// Encode returns the bech32 representation of payload prefixed with hrp.
func Encode(hrp string, payload []byte) (string, error) {
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "regroup bits: %s", err)
	}
	enc, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "encode %q: %s", hrp, err)
	}
	return enc, nil
}

// Decode returns the human readable prefix and the payload of enc.
func Decode(enc string) (hrp string, payload []byte, err error) {
	hrp, words, err := bech32.Decode(enc)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "decode: %s", err)
	}
	if payload, err = bech32.ConvertBits(words, 5, 8, false); err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "regroup bits: %s", err)
	}
	return hrp, payload, nil
}
