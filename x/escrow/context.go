package escrow

import (
	"context"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/x"
)

type contextKey int // local to the escrow module

const (
	contextKeyVault contextKey = iota
)

// withVault is a private method, as only this module
// can authorize a debit of the custodial address
func withVault(ctx vault.Context, cond vault.Condition) vault.Context {
	return context.WithValue(ctx, contextKeyVault, cond)
}

// Authenticate grants the custodial condition of the vault that is
// currently paying out. Chain it into the authenticator of the ledger.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns permissions previously set on this context
func (a Authenticate) GetConditions(ctx vault.Context) []vault.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyVault).(vault.Condition)
	if val == nil {
		return nil
	}
	return []vault.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
