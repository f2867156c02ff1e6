package app

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/crypto"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x/sigs"
)

// Tx is the transaction envelope of the application. It carries a single
// message and the signatures authorizing it.
type Tx struct {
	Msg        vault.Msg            `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

var _ vault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps a message into a transaction without any signature.
func NewTx(msg vault.Msg) *Tx {
	return &Tx{Msg: msg}
}

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (vault.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	bz, err := cdc.MarshalBinaryBare(unsigned)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "cannot serialize: %s", err)
	}
	return bz, nil
}

// Sign appends a signature of the signer using given sequence.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// Marshal serializes the transaction.
func (tx *Tx) Marshal() ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "cannot serialize: %s", err)
	}
	return bz, nil
}

// DecodeTx deserializes a transaction created by Marshal.
func DecodeTx(raw []byte) (*Tx, error) {
	var tx Tx
	if err := cdc.UnmarshalBinaryBare(raw, &tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "cannot decode transaction: %s", err)
	}
	return &tx, nil
}
