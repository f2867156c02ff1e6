package app

import (
	amino "github.com/tendermint/go-amino"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/x/cash"
	"github.com/starbounty/vault/x/escrow"
)

// cdc knows all messages supported by the application.
var cdc = MakeCodec()

// MakeCodec returns a codec with every message of the application
// registered.
func MakeCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*vault.Msg)(nil), nil)
	cash.RegisterCodec(c)
	escrow.RegisterCodec(c)
	return c
}

// Codec returns the codec used for transactions and their messages.
func Codec() *amino.Codec {
	return cdc
}
