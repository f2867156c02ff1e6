package escrow

import (
	"regexp"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// BucketName is the prefix of all agreement keys.
const BucketName = "escrow"

var isValidID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`).MatchString

// ValidateID returns an error if id cannot address a vault instance.
func ValidateID(id string) error {
	if !isValidID(id) {
		return errors.Wrapf(errors.ErrInvalidInput, "vault id %q", id)
	}
	return nil
}

// Agreement is the escrow held by a vault instance. Once stored it is never
// modified, only deleted on release.
type Agreement struct {
	Owner       vault.Address `json:"owner"`
	Beneficiary vault.Address `json:"beneficiary"`
	Asset       vault.Address `json:"asset"`
	Amount      vault.Int128  `json:"amount"`
	// UnlockTime may take any value. A time no block reaches leaves
	// release to the owner alone.
	UnlockTime vault.UnixTime `json:"unlock_time"`
}

// Validate ensures the agreement can be persisted.
func (a *Agreement) Validate() error {
	if !a.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount %s", a.Amount)
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := a.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if err := a.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	return nil
}

// State of a vault instance.
type State int

const (
	// Empty vaults hold no agreement. Every vault starts and ends Empty.
	Empty State = iota
	// Funded vaults hold an agreement and the escrowed amount.
	Funded
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Funded:
		return "funded"
	default:
		return "unknown"
	}
}

func agreementKey(id string) []byte {
	return []byte(BucketName + ":" + id)
}

func loadAgreement(db vault.ReadOnlyKVStore, id string) (*Agreement, error) {
	raw, err := db.Get(agreementKey(id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	var a Agreement
	if err := cdc.UnmarshalBinaryBare(raw, &a); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "cannot decode agreement: %s", err)
	}
	return &a, nil
}

func saveAgreement(db vault.KVStore, id string, a *Agreement) error {
	if err := a.Validate(); err != nil {
		return errors.Wrap(err, "agreement")
	}
	raw, err := cdc.MarshalBinaryBare(a)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidModel, "cannot encode agreement: %s", err)
	}
	return db.Set(agreementKey(id), raw)
}

func deleteAgreement(db vault.KVStore, id string) error {
	return db.Delete(agreementKey(id))
}
