package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/whitelist"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/weavetest"
	"github.com/iov-one/whitelist/x/address"
	"github.com/iov-one/whitelist/x/asset"
)

const (
	addressPayload = `{"blockchain":"ETH","network":"mainnet","address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","label":"treasury"}`
	assetPayload   = `{"blockchain":"ETH","network":"mainnet","contractAddress":"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48","symbol":"USDC","decimals":6}`
)

type cliFixture struct {
	configPath string
	rules      envelope.Rules
	users      map[string]*weavetest.Key
}

// newCLIFixture writes a configuration requiring one of two SuperAdmins and
// returns rules requiring two signatures of g1 = {u1, u2} for both
// addresses and contracts on ETH mainnet.
func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	admins, pems := weavetest.SuperAdmins(t, 2)
	raw, err := json.Marshal(whitelist.Config{SuperAdminKeys: pems, MinValidSignatures: 1})
	if err != nil {
		t.Fatalf("cannot serialize configuration: %s", err)
	}
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := ioutil.WriteFile(configPath, raw, 0600); err != nil {
		t.Fatalf("cannot write configuration: %s", err)
	}

	f := &cliFixture{
		configPath: configPath,
		users: map[string]*weavetest.Key{
			"u1": weavetest.NewKey(t),
			"u2": weavetest.NewKey(t),
		},
	}
	b := weavetest.NewContainer().
		WithUser("u1", f.users["u1"]).
		WithUser("u2", f.users["u2"]).
		WithGroup("g1", "u1", "u2").
		WithAddressRules(weavetest.AddressRules("ETH", "mainnet", weavetest.Path(weavetest.Threshold("g1", 2)))).
		WithContractRules("ETH", "mainnet", weavetest.Path(weavetest.Threshold("g1", 2)))
	f.rules = envelope.Rules{
		RulesContainer:  b.Encode(t),
		RulesSignatures: weavetest.Endorse(t, b.Bytes(t), admins[0]),
	}
	return f
}

func (f *cliFixture) signatures(t *testing.T, hash string, signers ...string) []envelope.Signature {
	var sigs []envelope.Signature
	for _, id := range signers {
		sigs = append(sigs, weavetest.Sign(t, id, f.users[id], hash))
	}
	return sigs
}

func (f *cliFixture) address(t *testing.T, id string, signers ...string) *address.Envelope {
	hash := integrity.SHA256Hex(addressPayload)
	return &address.Envelope{
		ID:            id,
		Metadata:      envelope.Metadata{Hash: hash, PayloadAsString: addressPayload},
		Rules:         f.rules,
		SignedAddress: envelope.SignedPayload{Signatures: f.signatures(t, hash, signers...)},
		CreationDate:  time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (f *cliFixture) asset(t *testing.T, id string, signers ...string) *asset.Envelope {
	hash := integrity.SHA256Hex(assetPayload)
	return &asset.Envelope{
		ID:                    id,
		Metadata:              envelope.Metadata{Hash: hash, PayloadAsString: assetPayload},
		Rules:                 f.rules,
		SignedContractAddress: envelope.SignedPayload{Signatures: f.signatures(t, hash, signers...)},
		CreationDate:          time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func jsonInput(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("cannot serialize input: %s", err)
	}
	return bytes.NewBuffer(raw)
}

func TestCmdVerifyAddress(t *testing.T) {
	f := newCLIFixture(t)

	var output bytes.Buffer
	input := jsonInput(t, f.address(t, "42", "u1", "u2"))
	if err := cmdVerifyAddress(input, &output, []string{"-config", f.configPath, "-log-level", "none"}); err != nil {
		t.Fatalf("cannot verify address: %s", err)
	}

	var got address.WhitelistedAddress
	if err := json.Unmarshal(output.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode output: %s", err)
	}
	if got.ID != "42" || got.Address != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" || got.Label != "treasury" {
		t.Fatalf("unexpected address: %+v", got)
	}
	if !strings.Contains(output.String(), "\n\t\"blockchain\": \"ETH\"") {
		t.Fatalf("output is not indented: %s", output.String())
	}
}

func TestCmdVerifyAddressRejected(t *testing.T) {
	f := newCLIFixture(t)

	var output bytes.Buffer
	input := jsonInput(t, f.address(t, "42", "u1"))
	err := cmdVerifyAddress(input, &output, []string{"-config", f.configPath, "-log-level", "none"})
	if err == nil {
		t.Fatal("an address approved by a single user must be rejected")
	}
	if output.Len() != 0 {
		t.Fatalf("rejected address must not be written: %s", output.String())
	}
}

func TestCmdVerifyAddressBatch(t *testing.T) {
	f := newCLIFixture(t)

	envs := []*address.Envelope{
		f.address(t, "1", "u1", "u2"),
		f.address(t, "2", "u2"),
	}
	var output bytes.Buffer
	err := cmdVerifyAddress(jsonInput(t, envs), &output, []string{"-config", f.configPath, "-batch", "-log-level", "none"})
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("want a batch failure summary, got %v", err)
	}

	var got []struct {
		Index  int                         `json:"index"`
		Result *address.WhitelistedAddress `json:"result"`
		Error  string                      `json:"error"`
	}
	if err := json.Unmarshal(output.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode output: %s", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 results, got %d", len(got))
	}
	if got[0].Result == nil || got[0].Result.ID != "1" || got[0].Error != "" {
		t.Fatalf("unexpected first result: %+v", got[0])
	}
	if got[1].Index != 1 || got[1].Result != nil || got[1].Error == "" {
		t.Fatalf("unexpected second result: %+v", got[1])
	}
}

func TestCmdVerifyAsset(t *testing.T) {
	f := newCLIFixture(t)

	var output bytes.Buffer
	input := jsonInput(t, f.asset(t, "7", "u1", "u2"))
	if err := cmdVerifyAsset(input, &output, []string{"-config", f.configPath, "-log-level", "none"}); err != nil {
		t.Fatalf("cannot verify asset: %s", err)
	}

	var got asset.WhitelistedAsset
	if err := json.Unmarshal(output.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode output: %s", err)
	}
	if got.ID != "7" || got.Symbol != "USDC" || got.Decimals != 6 {
		t.Fatalf("unexpected asset: %+v", got)
	}
}

func TestCmdVerifyConfigErrors(t *testing.T) {
	cases := map[string][]string{
		"missing config": {"-log-level", "none"},
		"unknown config": {"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		"bad log level":  {"-config", "config.yaml", "-log-level", "loud"},
	}
	for testName, args := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := cmdVerifyAsset(strings.NewReader("{}"), &output, args); err == nil {
				t.Fatal("want an error")
			}
		})
	}
}
