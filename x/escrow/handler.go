package escrow

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vault.Registry, auth x.Authenticator, ledger AssetLedger) {
	r.Handle(pathInitMsg, InitHandler{auth: auth, ledger: ledger})
	r.Handle(pathReleaseMsg, ReleaseHandler{auth: auth, ledger: ledger})
}

// InitHandler funds a vault
type InitHandler struct {
	auth   x.Authenticator
	ledger AssetLedger
}

var _ vault.Handler = InitHandler{}

// Check verifies the message is well formed and signed by the owner.
func (h InitHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg InitMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, "owner", msg.Owner); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver moves the funds into the vault and stores the agreement. The
// custodial address is returned as data.
func (h InitHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg InitMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	v, err := NewVault(msg.VaultID, h.auth, h.ledger)
	if err != nil {
		return nil, err
	}
	err = v.Init(ctx, db, msg.Owner, msg.Beneficiary, msg.Asset, msg.Amount, msg.UnlockTime)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: v.Address(), Log: "funded"}, nil
}

// ReleaseHandler pays out a vault
type ReleaseHandler struct {
	auth   x.Authenticator
	ledger AssetLedger
}

var _ vault.Handler = ReleaseHandler{}

// Check verifies the message is well formed and signed by the invoker.
func (h ReleaseHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, "invoker", msg.Invoker); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver pays the beneficiary and erases the agreement.
func (h ReleaseHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	v, err := NewVault(msg.VaultID, h.auth, h.ledger)
	if err != nil {
		return nil, err
	}
	if err := v.Release(ctx, db, msg.Invoker); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Log: "released"}, nil
}

// load returns the message with the main signer applied as a default
// invoker.
func (h ReleaseHandler) load(ctx vault.Context, tx vault.Tx) (*ReleaseMsg, error) {
	var msg ReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg.Invoker == nil {
		if signer := x.MainSigner(ctx, h.auth); signer != nil {
			msg.Invoker = signer.Address()
		}
	}
	return &msg, nil
}
