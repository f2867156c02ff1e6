package cash

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

// GenesisAccount is a starting balance read from the "cash" section of the
// genesis file. Addresses are hex encoded.
type GenesisAccount struct {
	Address vault.Address `json:"address"`
	Asset   vault.Address `json:"asset"`
	Amount  vault.Int128  `json:"amount"`
}

// Validate checks both addresses. The amount is checked by Issue.
func (a GenesisAccount) Validate() error {
	if err := a.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return errors.Wrap(a.Asset.Validate(), "asset")
}

// Initializer issues the genesis balances.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

func (Initializer) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return err
	}
	ledger := NewLedger(nil)
	for i, a := range accounts {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "genesis account %d", i)
		}
		if err := ledger.Issue(kv, a.Address, a.Asset, a.Amount); err != nil {
			return errors.Wrapf(err, "genesis account %d", i)
		}
	}
	return nil
}
