package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/starbounty/vault/app"
	"github.com/starbounty/vault/errors"
)

func cmdGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Initialize the application state from a genesis file. This can be done only
once for every home directory.

The genesis file declares the chain id and the initial balances:

  {
    "chain_id": "local-vault",
    "app_state": {
      "cash": [{"address": "<hex>", "asset": "<hex>", "amount": "1000"}]
    }
  }
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory of the application state. You can use VAULTCLI_HOME environment variable to set it.")
		fileFl    = fl.String("file", "", "Path to the genesis file.")
		verboseFl = fl.Bool("v", false, "Log the execution.")
	)
	fl.Parse(args)

	if *fileFl == "" {
		flagDie("genesis file is required")
	}
	gen, err := app.LoadGenesis(*fileFl)
	if err != nil {
		return err
	}

	a, cleanup, err := openApp(*homeFl, *verboseFl)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := a.InitChain(gen)
	if err != nil {
		return errors.Wrap(err, "cannot initialize chain")
	}
	return printJSON(output, deliverOutput{Version: id.Version})
}

// flagDie terminates the program when an invalid flag value is given.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
