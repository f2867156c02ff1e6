/*
Package escrow implements a timelocked escrow vault.

A vault instance, addressed by its id, holds at most one Agreement. Init
moves the agreed amount from the owner to the custodial address of the
vault and records the agreement. Release pays the full amount to the
beneficiary and erases the agreement. The owner may release at any time,
anybody else only once the unlock time has been reached.

Funds are moved before the agreement is written or erased, so a failed
transfer leaves the vault untouched and the operation can be retried.
*/
package escrow
