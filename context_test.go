package vault

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	var buf bytes.Buffer
	ctx := WithLogger(bg, log.NewTMLogger(&buf))
	ctx = WithLogInfo(ctx, "vault", "7f3a")
	GetLogger(ctx).Info("funded")
	assert.Contains(t, buf.String(), "vault=7f3a")
	assert.Contains(t, buf.String(), "funded")
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := BlockTime(ctx)
	assert.False(t, ok)

	now := time.Unix(1700000000, 0).In(time.FixedZone("east", 3600))
	ctx = WithBlockTime(ctx, now)
	got, ok := BlockTime(ctx)
	require.True(t, ok)
	assert.True(t, now.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	assert.Panics(t, func() { WithBlockTime(ctx, now) })

	// other values do not hide the time
	got, _ = BlockTime(WithLogInfo(ctx, "k", "v"))
	assert.True(t, now.Equal(got))
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "bad") })

	ctx = WithChainID(ctx, "vault-test")
	assert.Equal(t, "vault-test", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "vault-other") })
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ctx := WithBlockTime(context.Background(), now)

	cases := map[string]struct {
		deadline UnixTime
		want     bool
	}{
		"in the past":    {deadline: 1699999999, want: true},
		"equal to now":   {deadline: 1700000000, want: true},
		"in the future":  {deadline: 1700000001, want: false},
		"zero is always": {deadline: 0, want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsExpired(ctx, tc.deadline))
		})
	}

	assert.Panics(t, func() { IsExpired(context.Background(), 1) })
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                              false,
		"foo":                           false,
		"special":                       true,
		"wish-YOU-88":                   true,
		"under_score":                   true,
		"invalid;;chars":                false,
		"this-chain-id-is-way-too-long": false,
	}
	for id, want := range cases {
		assert.Equal(t, want, IsValidChainID(id), id)
	}
}
