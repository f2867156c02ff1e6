package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/starbounty/vault"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *vault.Address {
	var a vault.Address
	if defaultVal != "" {
		var err error
		a, err = vault.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q vault.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagAddress)(&a), name, usage)
	return &a
}

type flagAddress vault.Address

func (a flagAddress) String() string {
	return vault.Address(a).String()
}

func (a *flagAddress) Set(raw string) error {
	addr, err := vault.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(addr)
	return nil
}

// flAmount returns an amount flag, the value is a base 10 integer.
func flAmount(fl *flag.FlagSet, name, defaultVal, usage string) *vault.Int128 {
	var v vault.Int128
	if defaultVal != "" {
		var err error
		v, err = vault.ParseInt128(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q amount flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagAmount)(&v), name, usage)
	return &v
}

type flagAmount vault.Int128

func (a flagAmount) String() string {
	return vault.Int128(a).String()
}

func (a *flagAmount) Set(raw string) error {
	v, err := vault.ParseInt128(raw)
	if err != nil {
		return err
	}
	*a = flagAmount(v)
	return nil
}

// flTime returns a time flag. Both RFC 3339 format and UNIX seconds are
// accepted. The default value is used as a literal and can be empty.
func flTime(fl *flag.FlagSet, name string, defaultVal func() time.Time, usage string) *flagTime {
	t := flagTime{def: defaultVal}
	fl.Var(&t, name, usage)
	return &t
}

type flagTime struct {
	time time.Time
	def  func() time.Time
}

// Time returns the flag value or the default when not set.
func (t *flagTime) Time() time.Time {
	if t.time.IsZero() && t.def != nil {
		return t.def()
	}
	return t.time
}

func (t *flagTime) String() string {
	if t == nil || t.time.IsZero() {
		return ""
	}
	return t.time.Format(time.RFC3339)
}

func (t *flagTime) Set(raw string) error {
	v, err := parseTime(raw)
	if err != nil {
		return err
	}
	t.time = v
	return nil
}

func parseTime(raw string) (time.Time, error) {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use RFC 3339 or UNIX seconds", raw)
	}
	return t, nil
}
