package cash

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x"
)

// RegisterRoutes adds the cash handlers to r. Senders are authorized with
// auth.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	r.Handle(pathSendMsg, NewSendHandler(auth))
}

// SendHandler moves tokens between two holders.
type SendHandler struct {
	auth   x.Authenticator
	ledger Ledger
}

var _ vault.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator) SendHandler {
	return SendHandler{auth: auth, ledger: NewLedger(auth)}
}

// Check only validates the message and the sender signature. Balances
// are checked on delivery.
func (h SendHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, err := loadSend(tx)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, "source", msg.Src); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

func (h SendHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := loadSend(tx)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Transfer(ctx, db, msg.Src, msg.Dest, msg.Asset, msg.Amount); err != nil {
		return nil, err
	}
	vault.GetLogger(ctx).Debug("tokens sent",
		"src", msg.Src, "dest", msg.Dest, "asset", msg.Asset, "amount", msg.Amount.String())
	return &vault.DeliverResult{}, nil
}

func loadSend(tx vault.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "send")
	}
	return &msg, nil
}
