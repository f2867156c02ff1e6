package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/app"
	"github.com/starbounty/vault/errors"
	"github.com/starbounty/vault/x/escrow"
)

func cmdNewVault(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out a new random vault instance id.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	_, err := fmt.Fprintln(output, uuid.New().String())
	return err
}

func cmdInitEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Lock funds of the key holder in a vault. The beneficiary can release them
once the unlock time is reached. The key holder can release them at any time.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(), "Path to the private key file of the owner.")
		vaultFl   = fl.String("vault", "", "Vault instance id, see new-vault.")
		benefFl   = flAddress(fl, "beneficiary", "", "Address that receives the funds.")
		assetFl   = flAddress(fl, "asset", "", "Address of the locked asset.")
		amountFl  = flAmount(fl, "amount", "", "Amount to lock, in the smallest unit of the asset.")
		unlockFl  = flTime(fl, "unlock", nil, "Time since when the beneficiary can release the funds.")
		nowFl     = flTime(fl, "now", time.Now, "Time of the execution, defaults to the current time.")
		verboseFl = fl.Bool("v", false, "Log the execution.")
	)
	fl.Parse(args)

	if *vaultFl == "" {
		flagDie("vault id is required")
	}
	if unlockFl.Time().IsZero() {
		flagDie("unlock time is required")
	}

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	a, cleanup, err := openApp(*homeFl, *verboseFl)
	if err != nil {
		return err
	}
	defer cleanup()

	msg := &escrow.InitMsg{
		VaultID:     *vaultFl,
		Owner:       key.PublicKey().Address(),
		Beneficiary: *benefFl,
		Asset:       *assetFl,
		Amount:      *amountFl,
		UnlockTime:  vault.AsUnixTime(unlockFl.Time()),
	}
	res, id, err := signAndDeliver(a, key, msg, nowFl.Time())
	if err != nil {
		return errors.Wrap(err, "cannot fund vault")
	}
	return printJSON(output, deliverOutput{
		Version: id.Version,
		Data:    hex.EncodeToString(res.Data),
		Log:     res.Log,
	})
}

func cmdReleaseEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Pay out a vault to its beneficiary. The owner can release at any time,
everybody else only once the unlock time is reached.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(), "Path to the private key file of the invoker.")
		vaultFl   = fl.String("vault", "", "Vault instance id.")
		nowFl     = flTime(fl, "now", time.Now, "Time of the execution, defaults to the current time.")
		verboseFl = fl.Bool("v", false, "Log the execution.")
	)
	fl.Parse(args)

	if *vaultFl == "" {
		flagDie("vault id is required")
	}

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	a, cleanup, err := openApp(*homeFl, *verboseFl)
	if err != nil {
		return err
	}
	defer cleanup()

	msg := &escrow.ReleaseMsg{VaultID: *vaultFl}
	res, id, err := signAndDeliver(a, key, msg, nowFl.Time())
	if err != nil {
		return errors.Wrap(err, "cannot release vault")
	}
	return printJSON(output, deliverOutput{
		Version: id.Version,
		Log:     res.Log,
	})
}

func cmdShowEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the state of a vault and, if funded, its agreement.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		vaultFl = fl.String("vault", "", "Vault instance id.")
	)
	fl.Parse(args)

	if *vaultFl == "" {
		flagDie("vault id is required")
	}

	a, cleanup, err := openApp(*homeFl, false)
	if err != nil {
		return err
	}
	defer cleanup()

	v, err := escrow.NewVault(*vaultFl, app.Authenticator(), app.Ledger())
	if err != nil {
		return err
	}
	out := escrowOutput{
		ID:        v.ID(),
		Custodian: v.Address(),
	}
	err = a.View(func(db vault.ReadOnlyKVStore) error {
		state, err := v.State(db)
		if err != nil {
			return err
		}
		out.State = state.String()
		if state == escrow.Funded {
			out.Agreement, err = v.Agreement(db)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("cannot load vault: %s", err)
	}
	return printJSON(output, out)
}

type escrowOutput struct {
	ID        string            `json:"id"`
	State     string            `json:"state"`
	Custodian vault.Address     `json:"custodian"`
	Agreement *escrow.Agreement `json:"agreement,omitempty"`
}

type deliverOutput struct {
	Version int64  `json:"version"`
	Data    string `json:"data,omitempty"`
	Log     string `json:"log,omitempty"`
}
