package sigs

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// NextNonce returns the sequence the next signature of signer must carry.
// Keys that never signed start at zero.
func NextNonce(db vault.ReadOnlyKVStore, signer vault.Address) (int64, error) {
	user, err := NewBucket().Get(db, signer)
	switch {
	case err != nil:
		return 0, errors.Wrapf(err, "user %s", signer)
	case user == nil:
		return 0, nil
	default:
		return user.Sequence, nil
	}
}
