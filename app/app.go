package app

import (
	"context"
	"sync"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// Application runs transactions against a committed store. Calls are
// serialized: every transaction runs to completion before the next one
// starts, and a delivered transaction is committed as a new version.
type Application struct {
	mu sync.Mutex

	name        string
	store       vault.CommitKVStore
	handler     vault.Handler
	initializer vault.Initializer
	logger      log.Logger
	chainID     string
}

// NewApplication loads the latest version of the store and returns an
// application serving it.
func NewApplication(
	name string,
	store vault.CommitKVStore,
	handler vault.Handler,
	initializer vault.Initializer,
	logger log.Logger,
) (*Application, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load store")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	a := &Application{
		name:        name,
		store:       store,
		handler:     handler,
		initializer: initializer,
		logger:      logger.With("module", name),
	}

	view := store.CacheWrap()
	defer view.Discard()
	chainID, err := loadChainID(view)
	if err != nil {
		return nil, err
	}
	a.chainID = chainID
	return a, nil
}

// ChainID returns the chain id set by InitChain or an empty string.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// InitChain stores the chain id, loads the genesis state and commits it as
// the first version.
func (a *Application) InitChain(gen Genesis) (vault.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != "" {
		return vault.CommitID{}, errors.Wrapf(errors.ErrAlreadyInitialized, "chain %s", a.chainID)
	}

	cache := a.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return vault.CommitID{}, err
	}
	if a.initializer != nil {
		if err := a.initializer.FromGenesis(gen.AppOptions, cache); err != nil {
			cache.Discard()
			return vault.CommitID{}, errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return vault.CommitID{}, errors.Wrap(err, "write genesis")
	}
	id, err := a.store.Commit()
	if err != nil {
		return vault.CommitID{}, err
	}
	a.chainID = gen.ChainID
	a.logger.Info("chain initialized", "chain_id", gen.ChainID, "version", id.Version)
	return id, nil
}

func (a *Application) context(now time.Time, call string) vault.Context {
	ctx := context.Background()
	ctx = vault.WithLogger(ctx, a.logger)
	ctx = vault.WithChainID(ctx, a.chainID)
	ctx = vault.WithBlockTime(ctx, now)
	return vault.WithLogInfo(ctx, "call", call)
}

// Check runs the checks of the transaction as of now against the committed
// state. Nothing is written.
func (a *Application) Check(now time.Time, tx vault.Tx) (*vault.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrInvalidState, "chain not initialized")
	}
	cache := a.store.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(a.context(now, "check"), cache, tx)
}

// Deliver executes the transaction as of now. On success the changes are
// committed as a new version of the store, on failure they are dropped.
func (a *Application) Deliver(now time.Time, tx vault.Tx) (*vault.DeliverResult, vault.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID == "" {
		return nil, vault.CommitID{}, errors.Wrap(errors.ErrInvalidState, "chain not initialized")
	}
	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(a.context(now, "deliver"), cache, tx)
	if err != nil {
		cache.Discard()
		return nil, vault.CommitID{}, err
	}
	if err := cache.Write(); err != nil {
		return nil, vault.CommitID{}, errors.Wrap(err, "write")
	}
	id, err := a.store.Commit()
	if err != nil {
		return nil, vault.CommitID{}, err
	}
	return res, id, nil
}

// DeliverBytes decodes and delivers a serialized transaction.
func (a *Application) DeliverBytes(now time.Time, raw []byte) (*vault.DeliverResult, vault.CommitID, error) {
	tx, err := DecodeTx(raw)
	if err != nil {
		return nil, vault.CommitID{}, err
	}
	return a.Deliver(now, tx)
}

// View calls fn with a read only view of the committed state.
func (a *Application) View(fn func(db vault.ReadOnlyKVStore) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.CacheWrap()
	defer cache.Discard()
	return fn(cache)
}

// LatestVersion returns the last committed version of the store.
func (a *Application) LatestVersion() (vault.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.LatestVersion()
}
