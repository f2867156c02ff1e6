package cash

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// BucketName is the prefix of all balance keys.
const BucketName = "cash"

// Wallet is the balance of a single asset held by a single party.
type Wallet struct {
	Holder vault.Address `json:"holder"`
	Asset  vault.Address `json:"asset"`
	Amount vault.Int128  `json:"amount"`
}

// Validate ensures a wallet can be persisted.
func (w *Wallet) Validate() error {
	if err := w.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	if err := w.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if w.Amount.Sign() < 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "negative balance %s", w.Amount)
	}
	return nil
}

// Bucket stores wallets indexed by asset and holder.
type Bucket struct {
	prefix []byte
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{prefix: []byte(BucketName + ":")}
}

func (b Bucket) key(holder, asset vault.Address) []byte {
	k := make([]byte, 0, len(b.prefix)+len(asset)+len(holder))
	k = append(k, b.prefix...)
	k = append(k, asset...)
	return append(k, holder...)
}

// GetOrCreate returns the wallet of holder for given asset. A wallet with
// zero balance is returned if none was stored yet.
func (b Bucket) GetOrCreate(db vault.ReadOnlyKVStore, holder, asset vault.Address) (*Wallet, error) {
	raw, err := db.Get(b.key(holder, asset))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return &Wallet{Holder: holder, Asset: asset}, nil
	}
	var w Wallet
	if err := cdc.UnmarshalBinaryBare(raw, &w); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "cannot decode wallet: %s", err)
	}
	return &w, nil
}

// Save persists given wallet. Empty wallets are removed from the store.
func (b Bucket) Save(db vault.KVStore, w *Wallet) error {
	if err := w.Validate(); err != nil {
		return errors.Wrap(err, "wallet")
	}
	key := b.key(w.Holder, w.Asset)
	if w.Amount.IsZero() {
		if err := db.Delete(key); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return nil
	}
	raw, err := cdc.MarshalBinaryBare(w)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidModel, "cannot encode wallet: %s", err)
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
