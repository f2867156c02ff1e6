package escrow

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x"
)

// AssetLedger moves funds between parties. Implementations must check that
// src authorized the debit.
type AssetLedger interface {
	Transfer(ctx vault.Context, db vault.KVStore, src, dest, asset vault.Address, amount vault.Int128) error
}

// Condition returns the custodial condition of the vault with given id.
func Condition(id string) vault.Condition {
	return vault.NewCondition("escrow", "vault", []byte(id))
}

// Vault is a single escrow instance. It keeps no state in memory, the
// agreement lives in the store passed to every call. Calls against the same
// instance must be serialized by the caller.
type Vault struct {
	id     string
	auth   x.Authenticator
	ledger AssetLedger
}

// NewVault returns the vault instance addressed by id.
func NewVault(id string, auth x.Authenticator, ledger AssetLedger) (*Vault, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return &Vault{id: id, auth: auth, ledger: ledger}, nil
}

// ID returns the instance id.
func (v *Vault) ID() string {
	return v.id
}

// Condition returns the custodial condition that holds the escrowed funds.
func (v *Vault) Condition() vault.Condition {
	return Condition(v.id)
}

// Address returns the custodial address that holds the escrowed funds.
func (v *Vault) Address() vault.Address {
	return v.Condition().Address()
}

// Init locks amount of asset from owner in the vault. The owner must
// authorize the call.
func (v *Vault) Init(
	ctx vault.Context,
	db vault.KVStore,
	owner, beneficiary, asset vault.Address,
	amount vault.Int128,
	unlockTime vault.UnixTime,
) error {
	current, err := loadAgreement(db, v.id)
	if err != nil {
		return errors.Wrap(err, "load agreement")
	}
	if current != nil {
		return errors.Wrapf(errors.ErrAlreadyInitialized, "vault %s", v.id)
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount %s", amount)
	}

	a := Agreement{
		Owner:       owner,
		Beneficiary: beneficiary,
		Asset:       asset,
		Amount:      amount,
		UnlockTime:  unlockTime,
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, v.auth, "owner", owner); err != nil {
		return err
	}

	if err := v.ledger.Transfer(ctx, db, owner, v.Address(), asset, amount); err != nil {
		return errors.Wrapf(errors.ErrTransferFailed, "fund vault %s: %s", v.id, err)
	}
	if err := saveAgreement(db, v.id, &a); err != nil {
		return errors.Wrap(err, "save agreement")
	}

	vault.GetLogger(ctx).Info("escrow funded",
		"vault", v.id,
		"owner", owner.String(),
		"beneficiary", beneficiary.String(),
		"amount", amount.String(),
		"unlock", unlockTime.String())
	return nil
}

// Release pays the escrowed amount to the beneficiary. The invoker must
// authorize the call and, unless it is the owner, the unlock time must have
// been reached. A release by anyone but the owner requires a block time on
// ctx and fails with ErrInvalidState without one.
func (v *Vault) Release(ctx vault.Context, db vault.KVStore, invoker vault.Address) error {
	a, err := loadAgreement(db, v.id)
	if err != nil {
		return errors.Wrap(err, "load agreement")
	}
	if a == nil {
		return errors.Wrapf(errors.ErrNotInitialized, "vault %s", v.id)
	}
	if err := x.RequireAddress(ctx, v.auth, "invoker", invoker); err != nil {
		return err
	}
	if !invoker.Equals(a.Owner) {
		if _, ok := vault.BlockTime(ctx); !ok {
			return errors.Wrap(errors.ErrInvalidState, "no block time")
		}
		if !vault.IsExpired(ctx, a.UnlockTime) {
			return errors.Wrapf(errors.ErrTimelockNotExpired, "locked until %s", a.UnlockTime)
		}
	}

	payout := withVault(ctx, v.Condition())
	if err := v.ledger.Transfer(payout, db, v.Address(), a.Beneficiary, a.Asset, a.Amount); err != nil {
		return errors.Wrapf(errors.ErrTransferFailed, "pay out vault %s: %s", v.id, err)
	}
	if err := deleteAgreement(db, v.id); err != nil {
		return errors.Wrap(err, "delete agreement")
	}

	vault.GetLogger(ctx).Info("escrow released",
		"vault", v.id,
		"invoker", invoker.String(),
		"beneficiary", a.Beneficiary.String(),
		"amount", a.Amount.String())
	return nil
}

// State returns Funded if the vault holds an agreement.
func (v *Vault) State(db vault.ReadOnlyKVStore) (State, error) {
	a, err := loadAgreement(db, v.id)
	if err != nil {
		return Empty, err
	}
	if a == nil {
		return Empty, nil
	}
	return Funded, nil
}

// Agreement returns the agreement held by the vault. ErrNotInitialized is
// returned for an empty vault.
func (v *Vault) Agreement(db vault.ReadOnlyKVStore) (*Agreement, error) {
	a, err := loadAgreement(db, v.id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.Wrapf(errors.ErrNotInitialized, "vault %s", v.id)
	}
	return a, nil
}
