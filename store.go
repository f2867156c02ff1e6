package vault

// ReadOnlyKVStore reads from a key value store. A missing key reads as a
// nil value. Keys must not be nil.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter writes to a store or to a batch. Implementations must not
// retain or modify the given slices.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the state handed to decorators and handlers.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// CacheableKVStore can open a savepoint on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap buffers writes on top of its parent. Reads see the buffered
// writes first. Write flushes the buffer into the parent, Discard drops
// it. Cache wraps nest.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the root store of an application. Writes go through a
// CacheWrap and become durable only with Commit, which persists a new
// version.
type CommitKVStore interface {
	// Get reads from the last committed version.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap
	Commit() (CommitID, error)

	// LoadLatestVersion restores the newest complete version. After a
	// crash during commit this may be an older version.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by number and root hash.
type CommitID struct {
	Version int64
	Hash    []byte
}
