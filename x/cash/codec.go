package cash

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes the balances kept by this extension.
var cdc = amino.NewCodec()

// RegisterCodec registers the messages of this extension.
func RegisterCodec(c *amino.Codec) {
	c.RegisterConcrete(SendMsg{}, "cash/send", nil)
}
