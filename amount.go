package vault

import (
	"encoding/json"
	"math/big"

	"github.com/starbounty/vault/errors"
)

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Int128 is a signed 128-bit integer in two's complement, split into the
// high and the low 64 bits. Assets with a high decimal precision need the
// range. The vault never does arithmetic on this value, it is transferred
// verbatim. Ledgers that must compute use Big and NewInt128FromBig.
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 returns the 128-bit representation of given value.
func NewInt128(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// NewInt128FromBig converts given value. It fails with ErrOverflow if the
// value does not fit into 128 bits.
func NewInt128FromBig(v *big.Int) (Int128, error) {
	if v.Cmp(maxInt128) > 0 || v.Cmp(minInt128) < 0 {
		return Int128{}, errors.Wrapf(errors.ErrOverflow, "%s exceeds 128 bits", v)
	}
	// Two's complement of negative values is computed on the 2^128 modulo.
	u := new(big.Int).Set(v)
	if v.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	lo := new(big.Int).And(u, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()
	return Int128{Hi: int64(hi), Lo: lo}, nil
}

// ParseInt128 decodes a base 10 representation.
func ParseInt128(s string) (Int128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, errors.Wrapf(errors.ErrInvalidAmount, "cannot parse %q", s)
	}
	return NewInt128FromBig(v)
}

// Big returns the value as a big integer.
func (i Int128) Big() *big.Int {
	v := new(big.Int).SetInt64(i.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

// Sign returns -1, 0 or 1 depending on the sign of the value.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// IsPositive returns true if the value is strictly greater than zero.
func (i Int128) IsPositive() bool {
	return i.Sign() > 0
}

// IsZero returns true if the value is zero.
func (i Int128) IsZero() bool {
	return i.Sign() == 0
}

// Equals returns true if both values are the same.
func (i Int128) Equals(o Int128) bool {
	return i.Hi == o.Hi && i.Lo == o.Lo
}

// String returns the base 10 representation.
func (i Int128) String() string {
	return i.Big().String()
}

// MarshalJSON encodes the value as a base 10 string, so that no precision
// is lost by JSON decoders using float numbers.
func (i Int128) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON accepts both a string and a number.
func (i *Int128) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrInvalidAmount, "expected a string or a number")
		}
		s = n.String()
	}
	v, err := ParseInt128(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
