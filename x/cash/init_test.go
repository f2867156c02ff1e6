package cash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/store"
)

func TestInitState(t *testing.T) {
	addr := vault.Address([]byte("12345678901234567890"))
	asset := vault.Address([]byte("assetassetassetasset"))
	accts := []GenesisAccount{{Address: addr, Asset: asset, Amount: vault.NewInt128(100)}}

	bz, err := json.Marshal(accts)
	require.NoError(t, err)

	// hardcode
	bz2 := []byte(`[{"address":"0102030405060708090021222324252627282930",
		"asset":"A1A2A3A4A5A6A7A8A9A0B1B2B3B4B5B6B7B8B9B0",
		"amount":"340282366920938463463374607431768211"}]`)
	addr2 := vault.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}
	asset2 := vault.Address{0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7, 0xA8, 0xA9, 0xA0, 0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7, 0xB8, 0xB9, 0xB0}
	amount2, err := vault.ParseInt128("340282366920938463463374607431768211")
	require.NoError(t, err)

	cases := map[string]struct {
		opts    vault.Options
		wantErr *errors.Error
		holder  vault.Address
		asset   vault.Address
		amount  vault.Int128
	}{
		"no data":        {opts: vault.Options{}},
		"unrelated data": {opts: vault.Options{"foo": []byte(`"bar"`)}},
		"bad format": {
			opts:    vault.Options{"cash": []byte(`[{"amount": 123, "address": 7}]`)},
			wantErr: errors.ErrInvalidInput,
		},
		"bad address": {
			opts:    vault.Options{"cash": []byte(`[{"amount": "5"}]`)},
			wantErr: errors.ErrInvalidInput,
		},
		"zero amount": {
			opts:    vault.Options{"cash": []byte(`[{"address":"0102030405060708090021222324252627282930","asset":"0102030405060708090021222324252627282930","amount":"0"}]`)},
			wantErr: errors.ErrInvalidAmount,
		},
		"account from struct": {
			opts:   vault.Options{"cash": bz},
			holder: addr,
			asset:  asset,
			amount: vault.NewInt128(100),
		},
		"account from literal": {
			opts:   vault.Options{"cash": bz2},
			holder: addr2,
			asset:  asset2,
			amount: amount2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, kv)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.holder != nil {
				got, err := NewLedger(nil).Balance(kv, tc.holder, tc.asset)
				require.NoError(t, err)
				assert.Equal(t, tc.amount, got)
			}
		})
	}
}
