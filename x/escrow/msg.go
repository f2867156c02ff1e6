package escrow

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

const (
	pathInitMsg    = "escrow/init"
	pathReleaseMsg = "escrow/release"
)

var _ vault.Msg = (*InitMsg)(nil)
var _ vault.Msg = (*ReleaseMsg)(nil)

// InitMsg funds the vault VaultID with the given agreement.
//
// The amount is not validated here. The vault decides between an already
// initialized instance and an invalid amount.
type InitMsg struct {
	VaultID     string         `json:"vault_id"`
	Owner       vault.Address  `json:"owner"`
	Beneficiary vault.Address  `json:"beneficiary"`
	Asset       vault.Address  `json:"asset"`
	Amount      vault.Int128   `json:"amount"`
	UnlockTime  vault.UnixTime `json:"unlock_time"`
}

// Path returns the routing path for this message
func (InitMsg) Path() string {
	return pathInitMsg
}

// Validate makes sure that this is sensible
func (m InitMsg) Validate() error {
	if err := ValidateID(m.VaultID); err != nil {
		return err
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if err := m.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	return nil
}

// ReleaseMsg pays out the vault VaultID. If Invoker is not set, the main
// signer of the transaction is used.
type ReleaseMsg struct {
	VaultID string        `json:"vault_id"`
	Invoker vault.Address `json:"invoker,omitempty"`
}

// Path returns the routing path for this message
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Validate makes sure that this is sensible
func (m ReleaseMsg) Validate() error {
	if err := ValidateID(m.VaultID); err != nil {
		return err
	}
	if m.Invoker != nil {
		if err := m.Invoker.Validate(); err != nil {
			return errors.Wrap(err, "invoker")
		}
	}
	return nil
}
