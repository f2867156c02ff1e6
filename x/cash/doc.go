/*
Package cash implements the asset ledger of the vault application.

Every holder has a balance per asset. Balances move only through
Transfer, which requires the debited party to be authenticated, or are
created by Issue when loading the genesis state. The escrow extension uses
the Ledger to lock funds under its custodial address and to pay them out.
*/
package cash
