package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/app"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x/cash"
)

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the balance of an address for a single asset.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		addrFl  = flAddress(fl, "addr", "", "Holder address.")
		assetFl = flAddress(fl, "asset", "", "Asset address.")
	)
	fl.Parse(args)

	a, cleanup, err := openApp(*homeFl, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var amount vault.Int128
	err = a.View(func(db vault.ReadOnlyKVStore) error {
		var err error
		amount, err = app.Ledger().Balance(db, *addrFl, *assetFl)
		return err
	})
	if err != nil {
		return fmt.Errorf("cannot load balance: %s", err)
	}
	_, err = fmt.Fprintln(output, amount)
	return err
}

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Transfer funds of the key holder to another address.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(), "Path to the private key file of the sender.")
		destFl    = flAddress(fl, "dst", "", "Recipient address.")
		assetFl   = flAddress(fl, "asset", "", "Asset address.")
		amountFl  = flAmount(fl, "amount", "", "Amount to transfer.")
		memoFl    = fl.String("memo", "", "Short note attached to the transfer.")
		verboseFl = fl.Bool("v", false, "Log the execution.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	a, cleanup, err := openApp(*homeFl, *verboseFl)
	if err != nil {
		return err
	}
	defer cleanup()

	msg := &cash.SendMsg{
		Src:    key.PublicKey().Address(),
		Dest:   *destFl,
		Asset:  *assetFl,
		Amount: *amountFl,
		Memo:   *memoFl,
	}
	_, id, err := signAndDeliver(a, key, msg, time.Now())
	if err != nil {
		return errors.Wrap(err, "cannot send tokens")
	}
	return printJSON(output, deliverOutput{Version: id.Version})
}
