package sigs

import (
	"context"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/x"
)

type signersKey struct{}

func withSigners(ctx vault.Context, signers []vault.Condition) vault.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate reports the conditions of the signatures verified by the
// Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signer conditions in signature order. The
// result is empty when nothing was signed.
func (Authenticate) GetConditions(ctx vault.Context) []vault.Condition {
	signers, _ := ctx.Value(signersKey{}).([]vault.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, cond := range a.GetConditions(ctx) {
		if cond.Address().Equals(addr) {
			return true
		}
	}
	return false
}
