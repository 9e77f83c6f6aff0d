package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/rules"
)

func cmdDecodeRules(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode a base64 encoded rules container read from the standard input and
write it as JSON. The SuperAdmin signatures of the container are not checked.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %s", err)
	}
	c, err := rules.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return err
	}
	return writeJSON(output, c)
}

func cmdHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the hex encoded SHA-256 hash of the standard input. Use it to compute the
metadata hash of a payload string. The input is hashed exactly as read.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %s", err)
	}
	_, err = fmt.Fprintln(output, integrity.SHA256Hex(string(raw)))
	return err
}
