package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/starbounty/vault"
	"github.com/starbounty/vault/app"
	"github.com/starbounty/vault/crypto"
	"github.com/starbounty/vault/store/iavl"
	"github.com/starbounty/vault/x/sigs"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func defaultHome() string {
	return env("VAULTCLI_HOME", filepath.Join(os.Getenv("HOME"), ".vaultcli"))
}

func defaultKeyPath() string {
	return env("VAULTCLI_PRIV_KEY", filepath.Join(os.Getenv("HOME"), ".vaultcli.priv.key"))
}

// openApp opens the application state stored in home. The returned function
// must be called to release the database.
func openApp(home string, verbose bool) (*app.Application, func(), error) {
	if err := os.MkdirAll(home, 0700); err != nil {
		return nil, nil, fmt.Errorf("cannot create home directory: %s", err)
	}
	db, err := iavl.NewCommitStore(home, "vault")
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if verbose {
		logger = log.NewFilter(logger, log.AllowInfo())
	} else {
		logger = log.NewFilter(logger, log.AllowError())
	}

	a, err := app.NewApplication("vault", db, app.Stack(), app.Initializers(), logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return a, db.Close, nil
}

// loadKey reads a raw ed25519 private key file.
func loadKey(path string) (crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	key := crypto.PrivateKey(raw)
	if _, err := key.Sign(nil); err != nil {
		return nil, fmt.Errorf("invalid private key: %s", err)
	}
	return key, nil
}

// signAndDeliver signs the message with the next nonce of the key holder
// and executes it as of now.
func signAndDeliver(a *app.Application, key crypto.Signer, msg vault.Msg, now time.Time) (*vault.DeliverResult, vault.CommitID, error) {
	var nonce int64
	err := a.View(func(db vault.ReadOnlyKVStore) error {
		var err error
		nonce, err = sigs.NextNonce(db, key.PublicKey().Address())
		return err
	})
	if err != nil {
		return nil, vault.CommitID{}, fmt.Errorf("cannot get nonce: %s", err)
	}

	tx := app.NewTx(msg)
	if err := tx.Sign(key, a.ChainID(), nonce); err != nil {
		return nil, vault.CommitID{}, fmt.Errorf("cannot sign transaction: %s", err)
	}
	return a.Deliver(now, tx)
}

// printJSON writes obj as indented amino JSON.
func printJSON(output io.Writer, obj interface{}) error {
	raw, err := app.Codec().MarshalJSONIndent(obj, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}
