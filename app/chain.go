package app

import (
	"reflect"

	"github.com/starbounty/vault"
)

// Decorators is an ordered list of decorators waiting for the handler they
// wrap. The first decorator sees every transaction first.
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//		utils.NewSavepoint().OnDeliver(),
//	).WithHandler(app.NewRouter())
type Decorators []vault.Decorator

// ChainDecorators returns the list of given decorators. Nil entries are
// skipped, so optional decorators can be passed unconditionally.
func ChainDecorators(ds ...vault.Decorator) Decorators {
	return Decorators(nil).Chain(ds...)
}

// Chain returns a new list with ds appended. The receiver is not modified.
func (d Decorators) Chain(ds ...vault.Decorator) Decorators {
	out := make(Decorators, 0, len(d)+len(ds))
	out = append(out, d...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			out = append(out, dec)
		}
	}
	return out
}

func isNilDecorator(d vault.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler returns a handler running the whole list around h.
func (d Decorators) WithHandler(h vault.Handler) vault.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{dec: d[i], next: h}
	}
	return h
}

// decorated is a single decorator bound to the handler it wraps.
type decorated struct {
	dec  vault.Decorator
	next vault.Handler
}

var _ vault.Handler = decorated{}

func (s decorated) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
