package sigs

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/weavetest"
)

// StdTx implements a minimal signed transaction for testing.
type StdTx struct {
	weavetest.Tx
	Signable   []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vault.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:       weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/sigs"}},
		Signable: payload,
	}
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.Signable, nil
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

// SigCheckHandler stores the seen signers on each call.
type SigCheckHandler struct {
	Signers []vault.Condition
}

var _ vault.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.DeliverResult{}, nil
}
