package x

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// Authenticator tells which conditions a transaction fulfils. Handlers get
// one in their constructor and never look at signatures themselves.
type Authenticator interface {
	// GetConditions returns all fulfilled conditions, the main signer
	// first.
	GetConditions(vault.Context) []vault.Condition
	// HasAddress returns true if any fulfilled condition maps to addr.
	HasAddress(vault.Context, vault.Address) bool
}

// MultiAuth accepts everything that any of its members accepts.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth combines authenticators. Conditions are reported in the order
// the authenticators are given.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

func (m MultiAuth) GetConditions(ctx vault.Context) []vault.Condition {
	var all []vault.Condition
	for _, a := range m {
		all = append(all, a.GetConditions(ctx)...)
	}
	return all
}

func (m MultiAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses returns the addresses of all fulfilled conditions.
func GetAddresses(ctx vault.Context, auth Authenticator) []vault.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]vault.Address, 0, len(conds))
	for _, c := range conds {
		addrs = append(addrs, c.Address())
	}
	return addrs
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx vault.Context, auth Authenticator) vault.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// RequireAddress returns ErrUnauthorized unless addr is authorized. Role
// names the party in the error message.
func RequireAddress(ctx vault.Context, auth Authenticator, role string, addr vault.Address) error {
	if addr == nil || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s %s", role, addr)
	}
	return nil
}
