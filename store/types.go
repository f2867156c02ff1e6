// Package store implements the storage interfaces declared in the vault
// package: in memory cache wraps backed by a btree, and an iavl backed
// CommitKVStore in the iavl subpackage.
package store

import "github.com/starbounty/vault"

type (
	ReadOnlyKVStore  = vault.ReadOnlyKVStore
	SetDeleter       = vault.SetDeleter
	KVStore          = vault.KVStore
	CacheableKVStore = vault.CacheableKVStore
	KVCacheWrap      = vault.KVCacheWrap
	CommitKVStore    = vault.CommitKVStore
	CommitID         = vault.CommitID
)

// Batch collects writes and applies them on Write.
type Batch interface {
	SetDeleter
	Write() error
}
