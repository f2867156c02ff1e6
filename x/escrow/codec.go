package escrow

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes the agreements kept by this extension.
var cdc = amino.NewCodec()

// RegisterCodec registers the messages of this extension.
func RegisterCodec(c *amino.Codec) {
	c.RegisterConcrete(InitMsg{}, "escrow/init", nil)
	c.RegisterConcrete(ReleaseMsg{}, "escrow/release", nil)
}
