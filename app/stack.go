package app

import (
	"github.com/starbounty/vault"
	"github.com/starbounty/vault/x"
	"github.com/starbounty/vault/x/cash"
	"github.com/starbounty/vault/x/escrow"
	"github.com/starbounty/vault/x/sigs"
	"github.com/starbounty/vault/x/utils"
)

// Authenticator returns the authentication used by all handlers. Only
// verified signatures authorize a message.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Ledger returns the asset ledger. Next to signatures it accepts the
// custodial condition of the vault that is paying out.
func Ledger() cash.Ledger {
	return cash.NewLedger(x.ChainAuth(sigs.Authenticate{}, escrow.Authenticate{}))
}

// AppRouter returns a router with the routes of all extensions registered.
func AppRouter() *Router {
	r := NewRouter()
	auth := Authenticator()
	cash.RegisterRoutes(r, auth)
	escrow.RegisterRoutes(r, auth, Ledger())
	return r
}

// Stack wraps the router with all decorators of the application.
func Stack() vault.Handler {
	return ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(AppRouter())
}

// Initializers loads the genesis state of all extensions.
func Initializers() vault.Initializer {
	return ChainInitializers(cash.Initializer{})
}
