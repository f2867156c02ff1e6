package vault

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the per call environment through decorators and
// handlers. Values are attached with the WithX helpers below. Values that
// the host sets once per call (chain id, block time) cannot be replaced
// further down the stack.
type Context = context.Context

type (
	chainIDKey   struct{}
	loggerKey    struct{}
	blockTimeKey struct{}
)

// DefaultLogger is returned by GetLogger when no logger was attached.
var DefaultLogger = log.NewNopLogger()

var chainIDRx = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`)

// IsValidChainID returns true if id may be used as a chain id.
func IsValidChainID(id string) bool {
	return chainIDRx.MatchString(id)
}

// WithBlockTime attaches the time all time based checks are made
// against. It panics when a time is already attached.
func WithBlockTime(ctx Context, t time.Time) Context {
	if _, ok := BlockTime(ctx); ok {
		panic("block time already set")
	}
	return context.WithValue(ctx, blockTimeKey{}, t.UTC())
}

// BlockTime returns the attached time, if any.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(blockTimeKey{}).(time.Time)
	return t, ok
}

// IsExpired returns true if t is not after the block time. A deadline
// equal to the block time is expired.
//
// It panics if no block time is attached. A handler without a clock must
// not process time bound data.
func IsExpired(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("block time not set")
	}
	return AsUnixTime(now) >= t
}

// WithChainID attaches the chain id. It panics if the id is invalid or if
// a chain id is already attached.
func WithChainID(ctx Context, chainID string) Context {
	if _, ok := ctx.Value(chainIDKey{}).(string); ok {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic("invalid chain id " + chainID)
	}
	return context.WithValue(ctx, chainIDKey{}, chainID)
}

// GetChainID returns the attached chain id and panics if there is none.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey{}).(string)
	if !ok {
		panic("chain id not set")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithLogInfo replaces the logger with one that adds keyvals to every
// entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

// GetLogger returns the attached logger or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
