package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/whitelist/x/address"
	"github.com/iov-one/whitelist/x/asset"
)

type verifyFlags struct {
	config   *string
	batch    *bool
	logLevel *string
}

func newVerifyFlags(fl *flag.FlagSet) verifyFlags {
	return verifyFlags{
		config:   fl.String("config", "", "Path to the YAML or JSON verifier configuration file."),
		batch:    fl.Bool("batch", false, "Read a JSON array of envelopes instead of a single envelope."),
		logLevel: fl.String("log-level", "info", "Log level: debug, info, error or none."),
	}
}

func cmdVerifyAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Verify a whitelisted address envelope read from the standard input. On success
the verified address is written as JSON. With -batch, a JSON array of
envelopes is read and one result per envelope is written.
`)
		fl.PrintDefaults()
	}
	flags := newVerifyFlags(fl)
	fl.Parse(args)

	engine, err := newEngine(*flags.config, *flags.logLevel)
	if err != nil {
		return err
	}
	v := address.NewVerifier(engine)

	if !*flags.batch {
		var env address.Envelope
		if err := json.NewDecoder(input).Decode(&env); err != nil {
			return fmt.Errorf("cannot decode envelope: %s", err)
		}
		res, err := v.Verify(&env)
		if err != nil {
			return err
		}
		return writeJSON(output, res.Address)
	}

	var envs []*address.Envelope
	if err := json.NewDecoder(input).Decode(&envs); err != nil {
		return fmt.Errorf("cannot decode envelopes: %s", err)
	}
	items, err := v.VerifyBatch(envs)
	if err != nil {
		return err
	}
	out := make([]batchOutput, len(items))
	for i, it := range items {
		out[i].Index = i
		if it.Err != nil {
			out[i].Error = it.Err.Error()
		} else {
			out[i].Result = it.Result.Address
		}
	}
	if err := writeJSON(output, out); err != nil {
		return err
	}
	return batchFailed(out)
}

func cmdVerifyAsset(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Verify a whitelisted asset (contract or token) envelope read from the standard
input. On success the verified asset is written as JSON. With -batch, a JSON
array of envelopes is read and one result per envelope is written.
`)
		fl.PrintDefaults()
	}
	flags := newVerifyFlags(fl)
	fl.Parse(args)

	engine, err := newEngine(*flags.config, *flags.logLevel)
	if err != nil {
		return err
	}
	v := asset.NewVerifier(engine)

	if !*flags.batch {
		var env asset.Envelope
		if err := json.NewDecoder(input).Decode(&env); err != nil {
			return fmt.Errorf("cannot decode envelope: %s", err)
		}
		res, err := v.Verify(&env)
		if err != nil {
			return err
		}
		return writeJSON(output, res.Asset)
	}

	var envs []*asset.Envelope
	if err := json.NewDecoder(input).Decode(&envs); err != nil {
		return fmt.Errorf("cannot decode envelopes: %s", err)
	}
	items, err := v.VerifyBatch(envs)
	if err != nil {
		return err
	}
	out := make([]batchOutput, len(items))
	for i, it := range items {
		out[i].Index = i
		if it.Err != nil {
			out[i].Error = it.Err.Error()
		} else {
			out[i].Result = it.Result.Asset
		}
	}
	if err := writeJSON(output, out); err != nil {
		return err
	}
	return batchFailed(out)
}
