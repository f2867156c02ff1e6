package escrow

import (
	"testing"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/weavetest"
	"github.com/starbounty/vault/weavetest/assert"
)

// router is a minimal vault.Registry for the tests.
type router map[string]vault.Handler

func (r router) Handle(path string, h vault.Handler) {
	r[path] = h
}

func TestRegisterRoutes(t *testing.T) {
	e := newEnv(t, 0)
	r := make(router)
	RegisterRoutes(r, e.auth, e.ledger)
	if _, ok := r[InitMsg{}.Path()]; !ok {
		t.Fatal("init handler not registered")
	}
	if _, ok := r[ReleaseMsg{}.Path()]; !ok {
		t.Fatal("release handler not registered")
	}
}

func TestInitHandler(t *testing.T) {
	e := newEnv(t, 1000)
	h := InitHandler{auth: e.auth, ledger: e.ledger}
	msg := InitMsg{
		VaultID:     "bounty-7",
		Owner:       e.owner.Address(),
		Beneficiary: e.beneficiary.Address(),
		Asset:       e.asset,
		Amount:      vault.NewInt128(250),
		UnlockTime:  unlockAt,
	}
	tx := &weavetest.Tx{Msg: &msg}

	_, err := h.Check(e.ctx(1, e.stranger), e.db.CacheWrap(), tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = h.Deliver(e.ctx(1, e.stranger), e.db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = h.Check(e.ctx(1, e.owner), e.db.CacheWrap(), tx)
	assert.Nil(t, err)
	res, err := h.Deliver(e.ctx(1, e.owner), e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []byte(Condition("bounty-7").Address()), res.Data)
	assert.Equal(t, vault.NewInt128(250), e.balance(t, Condition("bounty-7").Address()))

	_, err = h.Deliver(e.ctx(1, e.owner), e.db, tx)
	assert.IsErr(t, errors.ErrAlreadyInitialized, err)

	bad := &weavetest.Tx{Msg: &InitMsg{VaultID: "bounty-8"}}
	_, err = h.Deliver(e.ctx(1, e.owner), e.db, bad)
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestReleaseHandler(t *testing.T) {
	e := newEnv(t, 1000)
	v := e.vault(t, "bounty-9", e.ledger)
	e.fund(t, v, 1000)
	h := ReleaseHandler{auth: e.auth, ledger: e.ledger}

	// invoker defaults to the main signer
	tx := &weavetest.Tx{Msg: &ReleaseMsg{VaultID: "bounty-9"}}
	_, err := h.Check(e.ctx(int64(unlockAt)-1, e.stranger), e.db.CacheWrap(), tx)
	assert.Nil(t, err)
	_, err = h.Deliver(e.ctx(int64(unlockAt)-1, e.stranger), e.db, tx)
	assert.IsErr(t, errors.ErrTimelockNotExpired, err)

	// naming somebody else as the invoker requires their signature
	other := &weavetest.Tx{Msg: &ReleaseMsg{VaultID: "bounty-9", Invoker: e.owner.Address()}}
	_, err = h.Check(e.ctx(1, e.stranger), e.db.CacheWrap(), other)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = h.Deliver(e.ctx(1, e.stranger), e.db, other)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// an unsigned release cannot pick an invoker
	_, err = h.Check(e.ctx(int64(unlockAt)), e.db.CacheWrap(), tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = h.Deliver(e.ctx(int64(unlockAt), e.stranger), e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, vault.NewInt128(1000), e.balance(t, e.beneficiary.Address()))

	_, err = h.Deliver(e.ctx(int64(unlockAt), e.stranger), e.db, tx)
	assert.IsErr(t, errors.ErrNotInitialized, err)
}
