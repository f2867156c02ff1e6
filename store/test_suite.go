package store

import (
	"crypto/rand"
	"testing"

	"github.com/starbounty/vault/weavetest/assert"
)

// TestStoreConstructor returns a fresh empty store and a function that
// releases it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// TestSuite runs the same cache wrap checks against any CacheableKVStore
// implementation. Packages with their own store call it from their tests.
type TestSuite struct {
	makeBase TestStoreConstructor
}

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// Model is an expected key value pair. A nil Value expects a missing key.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// GetSet checks that writes to a cache wrap stay invisible to the parent
// until written, and vanish on discard.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	owner, funded := []byte("owner"), []byte("7F3A")
	s.AssertGetHas(t, base, owner, nil, false)
	assert.Nil(t, base.Set(owner, funded))
	s.AssertGetHas(t, base, owner, funded, true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, owner, funded, true)

	amount, value := []byte("amount"), []byte("1000")
	assert.Nil(t, cache.Set(amount, value))
	s.AssertGetHas(t, cache, amount, value, true)
	s.AssertGetHas(t, base, amount, nil, false)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, owner, funded, true)
	s.AssertGetHas(t, base, amount, value, true)

	dropped := base.CacheWrap()
	assert.Nil(t, dropped.Set([]byte("unlock"), []byte("1700000000")))
	assert.Nil(t, dropped.Delete(owner))
	dropped.Discard()
	s.AssertGetHas(t, base, []byte("unlock"), nil, false)
	s.AssertGetHas(t, base, owner, funded, true)

	released := base.CacheWrap()
	assert.Nil(t, released.Delete(owner))
	s.AssertGetHas(t, released, owner, nil, false)
	s.AssertGetHas(t, base, owner, funded, true)
	assert.Nil(t, released.Write())
	s.AssertGetHas(t, base, owner, nil, false)
	s.AssertGetHas(t, base, amount, value, true)
}

// CacheConflicts checks that a child overrides and removes values of its
// parent without touching it until written.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := randBytesList(6, 16)
	vs := randBytesList(12, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model
		childQueries  []Model
	}{
		"overwrite, delete and add": {
			parentOps:     []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:      []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []Model{Pair(ks[1], vs[1]), Pair(ks[2], vs[2]), Pair(ks[3], nil)},
			childQueries:  []Model{Pair(ks[1], vs[11]), Pair(ks[2], nil), Pair(ks[3], vs[7])},
		},
		"set then delete": {
			parentOps:     []Op{SetOp(ks[4], vs[4])},
			childOps:      []Op{SetOp(ks[5], vs[5]), DelOp(ks[5]), DelOp(ks[4])},
			parentQueries: []Model{Pair(ks[4], vs[4]), Pair(ks[5], nil)},
			childQueries:  []Model{Pair(ks[4], nil), Pair(ks[5], nil)},
		},
		"delete then set": {
			parentOps:     []Op{SetOp(ks[0], vs[0])},
			childOps:      []Op{DelOp(ks[0]), SetOp(ks[0], vs[9])},
			parentQueries: []Model{Pair(ks[0], vs[0])},
			childQueries:  []Model{Pair(ks[0], vs[9])},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			for _, q := range tc.parentQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			assert.Nil(t, child.Write())
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// AssertGetHas fails unless key reads as val and Has reports has.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func randBytesList(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, size)
		if _, err := rand.Read(res[i]); err != nil {
			panic(err)
		}
	}
	return res
}
