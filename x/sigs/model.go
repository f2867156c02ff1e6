package sigs

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/crypto"
	"github.com/starbounty/vault/errors"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// UserData is the replay protection state of a single public key.
type UserData struct {
	Pubkey   crypto.PublicKey `json:"pubkey"`
	Sequence int64            `json:"sequence"`
}

func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if u.Sequence > 0 && u.Pubkey == nil {
		return errors.Wrap(ErrInvalidSequence, "needs Pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
// Before incrementing the sequence, this function is testing for a value
// overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	next := u.Sequence + 1

	// The greatest nonce value a javascript client can represent is
	//   Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores UserData indexed by the address of the public key.
type Bucket struct {
	prefix []byte
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{prefix: []byte(BucketName + ":")}
}

func (b Bucket) key(addr vault.Address) []byte {
	return append(append([]byte{}, b.prefix...), addr...)
}

// Get returns the user stored under given address or nil if none exists.
func (b Bucket) Get(db vault.ReadOnlyKVStore, addr vault.Address) (*UserData, error) {
	raw, err := db.Get(b.key(addr))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	var u UserData
	if err := cdc.UnmarshalBinaryBare(raw, &u); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "cannot decode user: %s", err)
	}
	return &u, nil
}

// GetOrCreate initializes a UserData if none exist for that key
func (b Bucket) GetOrCreate(db vault.ReadOnlyKVStore, pubkey crypto.PublicKey) (*UserData, error) {
	u, err := b.Get(db, pubkey.Address())
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &UserData{Pubkey: pubkey}
	}
	return u, nil
}

// Save validates and persists given user.
func (b Bucket) Save(db vault.KVStore, u *UserData) error {
	if err := u.Validate(); err != nil {
		return errors.Wrap(err, "user")
	}
	raw, err := cdc.MarshalBinaryBare(u)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidModel, "cannot encode user: %s", err)
	}
	return db.Set(b.key(u.Pubkey.Address()), raw)
}
