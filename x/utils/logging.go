package utils

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/starbounty/vault"
)

// Logging writes one entry per processed transaction, with the message
// path and the processing time. Failures are logged as errors, successful
// checks at debug and successful deliveries at info level.
type Logging struct{}

var _ vault.Decorator = Logging{}

// NewLogging returns the logging decorator.
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logger.Error("check failed", "err", err)
		return nil, err
	}
	logger.Debug("checked", "log", res.Log)
	return res, nil
}

func (Logging) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logger.Error("deliver failed", "err", err)
		return nil, err
	}
	logger.Info("delivered", "log", res.Log)
	return res, nil
}

func txLogger(ctx vault.Context, tx vault.Tx, start time.Time) log.Logger {
	return vault.GetLogger(ctx).With(
		"path", vault.GetPath(tx),
		"took", time.Since(start).String())
}
