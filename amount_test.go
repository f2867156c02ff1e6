package vault

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/starbounty/vault/errors"
)

func TestParseInt128(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Int128
		wantErr *errors.Error
	}{
		"zero": {
			raw:  "0",
			want: Int128{},
		},
		"small positive": {
			raw:  "1000",
			want: NewInt128(1000),
		},
		"small negative": {
			raw:  "-1",
			want: Int128{Hi: -1, Lo: ^uint64(0)},
		},
		"beyond 64 bits": {
			raw:  "18446744073709551616",
			want: Int128{Hi: 1, Lo: 0},
		},
		"max value": {
			raw:  "170141183460469231731687303715884105727",
			want: Int128{Hi: 1<<63 - 1, Lo: ^uint64(0)},
		},
		"min value": {
			raw:  "-170141183460469231731687303715884105728",
			want: Int128{Hi: -1 << 63, Lo: 0},
		},
		"overflow": {
			raw:     "170141183460469231731687303715884105728",
			wantErr: errors.ErrOverflow,
		},
		"underflow": {
			raw:     "-170141183460469231731687303715884105729",
			wantErr: errors.ErrOverflow,
		},
		"not a number": {
			raw:     "12ab",
			wantErr: errors.ErrInvalidAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseInt128(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err != nil {
				return
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}
			if got.String() != tc.raw {
				t.Fatalf("want %s, got %s", tc.raw, got)
			}
		})
	}
}

func TestInt128Sign(t *testing.T) {
	if !NewInt128(1).IsPositive() {
		t.Fatal("one must be positive")
	}
	if NewInt128(0).IsPositive() || !NewInt128(0).IsZero() {
		t.Fatal("zero is not positive")
	}
	if NewInt128(-5).IsPositive() || NewInt128(-5).Sign() != -1 {
		t.Fatal("negative value must not be positive")
	}
	wide, err := NewInt128FromBig(new(big.Int).Lsh(big.NewInt(1), 100))
	if err != nil {
		t.Fatalf("cannot convert: %s", err)
	}
	if !wide.IsPositive() {
		t.Fatal("2^100 must be positive")
	}
}

func TestInt128JSON(t *testing.T) {
	v := NewInt128(1000)
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	if string(raw) != `"1000"` {
		t.Fatalf("unexpected json: %s", raw)
	}

	var fromString, fromNumber Int128
	if err := json.Unmarshal(raw, &fromString); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if err := json.Unmarshal([]byte("1000"), &fromNumber); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !fromString.Equals(v) || !fromNumber.Equals(v) {
		t.Fatalf("want %s, got %s and %s", v, fromString, fromNumber)
	}
}
