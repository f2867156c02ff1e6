package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/starbounty/vault/errors"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It is responsible for
// parsing the arguments with the flag package. Errors are reported by
// returning them, os.Stderr is used only for usage messages.
//
// All commands operate on the local state kept under the -home directory.
// For example, to lock funds until the end of the year and release them
// afterwards:
//
//	$ vaultcli genesis -file genesis.json
//	$ vaultcli init-escrow -vault $(vaultcli new-vault) \
//	    -beneficiary 5AC5... -asset 9F1B... -amount 1000 \
//	    -unlock 2026-12-31T00:00:00Z
//	$ vaultcli release-escrow -vault <id>
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"balance":        cmdBalance,
	"genesis":        cmdGenesis,
	"init-escrow":    cmdInitEscrow,
	"keyaddr":        cmdKeyaddr,
	"keygen":         cmdKeygen,
	"new-vault":      cmdNewVault,
	"release-escrow": cmdReleaseEscrow,
	"send-tokens":    cmdSendTokens,
	"show-escrow":    cmdShowEscrow,
	"version":        cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for timelocked escrow vaults.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		debug := env("VAULTCLI_DEBUG", "") != ""
		if code, log := errors.Info(err, debug); code != errors.InternalCode {
			fmt.Fprintf(os.Stderr, "%s (code %d)\n", log, code)
		} else if debug {
			fmt.Fprintln(os.Stderr, log)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
