package cash

import (
	"math/big"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x"
)

// Ledger moves balances between holders. Every debit must be authorized
// by the debited party through the configured authenticator.
type Ledger struct {
	auth   x.Authenticator
	bucket Bucket
}

// NewLedger returns a ledger that verifies debits with given authenticator.
func NewLedger(auth x.Authenticator) Ledger {
	return Ledger{auth: auth, bucket: NewBucket()}
}

// Transfer moves the given amount of asset from src to dest.
// If src doesn't have sufficient funds, it fails. A failed transfer leaves
// both balances unchanged.
func (l Ledger) Transfer(ctx vault.Context, db vault.KVStore, src, dest, asset vault.Address, amount vault.Int128) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive transfer: %s", amount)
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if err := asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if !l.auth.HasAddress(ctx, src) {
		return errors.Wrapf(errors.ErrUnauthorized, "debit of %s not authorized", src)
	}

	sender, err := l.bucket.GetOrCreate(db, src, asset)
	if err != nil {
		return err
	}
	left := new(big.Int).Sub(sender.Amount.Big(), amount.Big())
	if left.Sign() < 0 {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %s", src, sender.Amount)
	}
	if src.Equals(dest) {
		return nil
	}

	recipient, err := l.bucket.GetOrCreate(db, dest, asset)
	if err != nil {
		return err
	}
	received, err := vault.NewInt128FromBig(new(big.Int).Add(recipient.Amount.Big(), amount.Big()))
	if err != nil {
		return errors.Wrapf(err, "balance of %s", dest)
	}

	before := *sender
	// left is between zero and the sender balance, so it always fits
	sender.Amount, _ = vault.NewInt128FromBig(left)
	recipient.Amount = received
	if err := sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}

	if err := l.bucket.Save(db, sender); err != nil {
		return err
	}
	if err := l.bucket.Save(db, recipient); err != nil {
		if rerr := l.bucket.Save(db, &before); rerr != nil {
			return errors.Wrapf(err, "restore %s: %s", src, rerr)
		}
		return err
	}
	return nil
}

// Issue adds the given amount of asset to the destination. Fails if the
// balance would overflow.
func (l Ledger) Issue(db vault.KVStore, dest, asset vault.Address, amount vault.Int128) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive issue: %s", amount)
	}
	w, err := l.bucket.GetOrCreate(db, dest, asset)
	if err != nil {
		return err
	}
	total, err := vault.NewInt128FromBig(new(big.Int).Add(w.Amount.Big(), amount.Big()))
	if err != nil {
		return errors.Wrapf(err, "balance of %s", dest)
	}
	w.Amount = total
	return l.bucket.Save(db, w)
}

// Balance returns how much of asset the holder owns.
func (l Ledger) Balance(db vault.ReadOnlyKVStore, holder, asset vault.Address) (vault.Int128, error) {
	w, err := l.bucket.GetOrCreate(db, holder, asset)
	if err != nil {
		return vault.Int128{}, err
	}
	return w.Amount, nil
}
