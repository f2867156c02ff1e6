package escrow

import (
	"math"
	"testing"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/weavetest"
)

func TestMsgValidate(t *testing.T) {
	a, b, c := weavetest.NewAddress(), weavetest.NewAddress(), weavetest.NewAddress()

	cases := map[string]struct {
		msg     vault.Msg
		wantErr *errors.Error
	}{
		"valid init": {
			msg: InitMsg{VaultID: "bounty-1", Owner: a, Beneficiary: b, Asset: c, Amount: vault.NewInt128(1), UnlockTime: unlockAt},
		},
		"init unlock never reached": {
			msg: InitMsg{VaultID: "bounty-1", Owner: a, Beneficiary: b, Asset: c, Amount: vault.NewInt128(1), UnlockTime: math.MaxUint64},
		},
		"init amount is left to the vault": {
			msg: InitMsg{VaultID: "bounty-1", Owner: a, Beneficiary: b, Asset: c, Amount: vault.NewInt128(-4)},
		},
		"init owner may be beneficiary": {
			msg: InitMsg{VaultID: "bounty-1", Owner: a, Beneficiary: a, Asset: c, Amount: vault.NewInt128(1)},
		},
		"init missing vault id": {
			msg:     InitMsg{Owner: a, Beneficiary: b, Asset: c, Amount: vault.NewInt128(1)},
			wantErr: errors.ErrInvalidInput,
		},
		"init bad owner": {
			msg:     InitMsg{VaultID: "bounty-1", Owner: vault.Address{1, 2}, Beneficiary: b, Asset: c, Amount: vault.NewInt128(1)},
			wantErr: errors.ErrInvalidInput,
		},
		"init missing asset": {
			msg:     InitMsg{VaultID: "bounty-1", Owner: a, Beneficiary: b, Amount: vault.NewInt128(1)},
			wantErr: errors.ErrInvalidInput,
		},
		"valid release": {
			msg: ReleaseMsg{VaultID: "bounty-1", Invoker: a},
		},
		"release without invoker": {
			msg: ReleaseMsg{VaultID: "bounty-1"},
		},
		"release bad invoker": {
			msg:     ReleaseMsg{VaultID: "bounty-1", Invoker: vault.Address{1}},
			wantErr: errors.ErrInvalidInput,
		},
		"release bad vault id": {
			msg:     ReleaseMsg{VaultID: "bounty 1"},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
