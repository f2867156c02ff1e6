package sigs

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes the signer accounts kept by this extension.
var cdc = amino.NewCodec()
