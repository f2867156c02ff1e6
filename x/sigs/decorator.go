/*
Package sigs verifies ed25519 signatures attached to a transaction and
tracks a per key sequence that protects against replays.

Verified signers are placed on the context and exposed with Authenticate.
*/
package sigs

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// Decorator verifies transaction signatures before passing the call down
// the stack. By default at least one signature is required.
type Decorator struct {
	optional bool
}

var _ vault.Decorator = Decorator{}

// NewDecorator returns a decorator that rejects unsigned transactions.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy of the decorator that lets unsigned
// transactions through with no signers on the context.
func (d Decorator) AllowMissingSigs() Decorator {
	return Decorator{optional: true}
}

func (d Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	signed, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(signed, db, tx)
}

func (d Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	signed, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(signed, db, tx)
}

// verify returns ctx extended with the conditions of all signers. Sequences
// are incremented in db, so a failed transaction must discard db.
func (d Decorator) verify(ctx vault.Context, db vault.KVStore, tx vault.Tx) (vault.Context, error) {
	var signers []vault.Condition
	if stx, ok := tx.(SignedTx); ok {
		conds, err := VerifyTxSignatures(db, stx, vault.GetChainID(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "signatures")
		}
		signers = conds
	}
	if len(signers) == 0 && !d.optional {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signature")
	}
	return withSigners(ctx, signers), nil
}
