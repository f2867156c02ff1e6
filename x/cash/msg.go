package cash

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
)

var _ vault.Msg = (*SendMsg)(nil)

const (
	pathSendMsg = "cash/send"
	maxMemoSize = 128
)

// SendMsg requests a transfer of Amount of Asset from Src to Dest.
type SendMsg struct {
	Src    vault.Address `json:"src"`
	Dest   vault.Address `json:"dest"`
	Asset  vault.Address `json:"asset"`
	Amount vault.Int128  `json:"amount"`
	Memo   string        `json:"memo,omitempty"`
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (s SendMsg) Validate() error {
	if !s.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive SendMsg: %s", s.Amount)
	}
	if err := s.Src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := s.Dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if err := s.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if len(s.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrInvalidInput, "memo too long")
	}
	return nil
}
