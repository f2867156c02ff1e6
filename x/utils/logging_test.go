package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/store"
	"github.com/starbounty/vault/weavetest"
	"github.com/starbounty/vault/weavetest/assert"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := vault.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "escrow/release"}}

	h := &weavetest.Handler{DeliverResult: vault.DeliverResult{Log: "released"}}
	_, err := NewLogging().Deliver(ctx, db, tx, h)
	assert.Nil(t, err)
	out := buf.String()
	if !strings.Contains(out, "released") || !strings.Contains(out, "path=escrow/release") {
		t.Fatalf("unexpected log output: %q", out)
	}

	buf.Reset()
	h = &weavetest.Handler{DeliverErr: errors.ErrTimelockNotExpired.New("too early")}
	_, err = NewLogging().Deliver(ctx, db, tx, h)
	assert.IsErr(t, errors.ErrTimelockNotExpired, err)
	if out := buf.String(); !strings.Contains(out, "too early") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
