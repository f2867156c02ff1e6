package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/store"
	"github.com/starbounty/vault/weavetest"
	"github.com/starbounty/vault/x/cash"
	"github.com/starbounty/vault/x/escrow"
	"github.com/starbounty/vault/x/sigs"
)

func TestTxRoundTrip(t *testing.T) {
	owner := weavetest.NewKey()

	cases := map[string]vault.Msg{
		"send": &cash.SendMsg{
			Src:    owner.PublicKey().Address(),
			Dest:   weavetest.NewAddress(),
			Asset:  weavetest.NewAddress(),
			Amount: vault.NewInt128(7),
			Memo:   "rent",
		},
		"init": &escrow.InitMsg{
			VaultID:     "vault-1",
			Owner:       owner.PublicKey().Address(),
			Beneficiary: weavetest.NewAddress(),
			Asset:       weavetest.NewAddress(),
			Amount:      vault.NewInt128(1000),
			UnlockTime:  1700000000,
		},
		"release": &escrow.ReleaseMsg{VaultID: "vault-1"},
	}

	for testName, msg := range cases {
		t.Run(testName, func(t *testing.T) {
			tx := NewTx(msg)
			require.NoError(t, tx.Sign(owner, "test-chain", 0))

			raw, err := tx.Marshal()
			require.NoError(t, err)
			got, err := DecodeTx(raw)
			require.NoError(t, err)

			gotMsg, err := got.GetMsg()
			require.NoError(t, err)
			assert.Equal(t, msg.Path(), gotMsg.Path())
			require.Len(t, got.GetSignatures(), 1)

			// the decoded signature still verifies against the decoded payload
			db := store.MemStore()
			signers, err := sigs.VerifyTxSignatures(db, got, "test-chain")
			require.NoError(t, err)
			require.Len(t, signers, 1)
			assert.True(t, signers[0].Equals(owner.PublicKey().Condition()))
		})
	}
}

func TestTxSignBytesIgnoreSignatures(t *testing.T) {
	tx := NewTx(&escrow.ReleaseMsg{VaultID: "abc"})
	before, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.NoError(t, tx.Sign(weavetest.NewKey(), "test-chain", 3))
	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDecodeTxInvalid(t *testing.T) {
	_, err := DecodeTx([]byte("definitely not a transaction"))
	assert.True(t, errors.ErrInvalidMsg.Is(err))

	_, err = NewTx(nil).GetMsg()
	assert.True(t, errors.ErrInvalidMsg.Is(err))
}
