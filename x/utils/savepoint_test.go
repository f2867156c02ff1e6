package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/store"
	"github.com/starbounty/vault/weavetest"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	// a default error if desired
	derr := errors.ErrTransferFailed.New("something went wrong")

	cases := map[string]struct {
		save    Savepoint
		handler vault.Handler
		check   bool // whether to call Check or Deliver
		wantErr bool

		written [][]byte // keys to find
		missing [][]byte // keys not to find
	}{
		"savepoint disabled keeps the failed write": {
			save:    NewSavepoint(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"check savepoint drops the failed write": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"deliver savepoint drops the failed write": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation keeps both": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"success writes the savepoint": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv},
			written: [][]byte{ok, nk},
		},
		"recovered panic drops the write": {
			save:    NewSavepoint().OnDeliver(),
			handler: &panicAfterWrite{key: nk, value: nv},
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))

			ctx := context.Background()
			tx := &weavetest.Tx{}
			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, tx, recovering{tc.handler})
			} else {
				_, err = tc.save.Deliver(ctx, kv, tx, recovering{tc.handler})
			}
			assert.Equal(t, tc.wantErr, err != nil, "%+v", err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%X", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%X", k)
			}
		})
	}
}

// recovering runs the handler below a Recovery decorator.
type recovering struct {
	h vault.Handler
}

func (r recovering) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return NewRecovery().Check(ctx, db, tx, r.h)
}

func (r recovering) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return NewRecovery().Deliver(ctx, db, tx, r.h)
}

// panicAfterWrite writes a value and panics.
type panicAfterWrite struct {
	key, value []byte
}

func (p *panicAfterWrite) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	_ = db.Set(p.key, p.value)
	panic("boom")
}

func (p *panicAfterWrite) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	_ = db.Set(p.key, p.value)
	panic("boom")
}
