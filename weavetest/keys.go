package weavetest

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKey()
}

func NewCondition() vault.Condition {
	return NewKey().PublicKey().Condition()
}

// NewAddress returns the address of a fresh random condition.
func NewAddress() vault.Address {
	return NewCondition().Address()
}
