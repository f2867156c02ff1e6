package utils

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// Recovery turns a panic of the wrapped handler into ErrPanic, so that a
// single broken transaction cannot stop the application. Place it right
// below Logging to get the panic logged.
type Recovery struct{}

var _ vault.Decorator = Recovery{}

// NewRecovery returns the recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (res *vault.CheckResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Check(ctx, db, tx)
	return res, err
}

func (Recovery) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (res *vault.DeliverResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Deliver(ctx, db, tx)
	return res, err
}
