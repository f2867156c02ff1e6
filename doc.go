/*
Package vault defines interfaces used throughout the app, such as: storage,
transactions, handlers, conditions and addresses.
It also contains the value types shared by all extensions: Int128 amounts,
UnixTime and the context helpers for block time, chain id and logging.
Look into this package to get a brief overview of the building blocks the
escrow and cash extensions are made of.
*/
package vault
