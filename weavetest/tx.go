package weavetest

import "github.com/starbounty/vault"

// Tx is a transaction carrying Msg. If Err is set, GetMsg fails with it.
type Tx struct {
	Msg vault.Msg
	Err error
}

var _ vault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (vault.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Msg is routed to RoutePath. Validate returns Err.
type Msg struct {
	RoutePath string
	Err       error
}

var _ vault.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
