package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/whitelist"
	"github.com/tendermint/tendermint/libs/log"
)

// logOutput is where command loggers write to.
var logOutput io.Writer = os.Stderr

// newLogger returns a logger writing entries of given level and above.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(logOutput))
	return log.NewFilter(logger, opt), nil
}

// newEngine loads the configuration file and returns an engine logging at
// given level.
func newEngine(configPath, logLevel string) (*whitelist.Engine, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path is required")
	}
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %s", err)
	}
	conf, err := whitelist.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	engine, err := whitelist.NewEngine(conf)
	if err != nil {
		return nil, err
	}
	return engine.WithLogger(logger), nil
}

// writeJSON writes an indented JSON representation of v.
func writeJSON(output io.Writer, v interface{}) error {
	pretty, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}

// batchOutput is a single entry of a batch verification result.
type batchOutput struct {
	Index  int         `json:"index"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// batchFailed returns an error if any entry failed.
func batchFailed(out []batchOutput) error {
	var failed int
	for _, o := range out {
		if o.Error != "" {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d envelopes failed verification", failed, len(out))
}
