package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyStrategies(t *testing.T) {
	const payload = `{"currency":"ETH","address":"0xab","label":"top","contractType":"erc20","linkedInternalAddresses":[{"id":"1","label":"a"},{"id":"2"}],"linkedWallets":[{"id":3,"path":"m/1","label":"w"}]}`

	want := make(map[string]string)
	want["contractType"] = `{"currency":"ETH","address":"0xab","label":"top","linkedInternalAddresses":[{"id":"1","label":"a"},{"id":"2"}],"linkedWallets":[{"id":3,"path":"m/1","label":"w"}]}`
	want["linkedInternalAddresses.label"] = `{"currency":"ETH","address":"0xab","label":"top","contractType":"erc20","linkedInternalAddresses":[{"id":"1"},{"id":"2"}],"linkedWallets":[{"id":3,"path":"m/1","label":"w"}]}`
	want["contractType+linkedInternalAddresses.label"] = `{"currency":"ETH","address":"0xab","label":"top","linkedInternalAddresses":[{"id":"1"},{"id":"2"}],"linkedWallets":[{"id":3,"path":"m/1","label":"w"}]}`

	if len(LegacyStrategies) != len(want) {
		t.Fatalf("want %d strategies, got %d", len(want), len(LegacyStrategies))
	}
	for _, s := range LegacyStrategies {
		t.Run(s.Name, func(t *testing.T) {
			assert.Equal(t, want[s.Name], s.Transform(payload))
		})
	}
}

func TestLegacyStrategiesKeepUnrelatedPayloads(t *testing.T) {
	const payload = `{"currency":"ETH","address":"0xab","label":"top","linkedInternalAddresses":[],"linkedWallets":[]}`
	for _, s := range LegacyStrategies {
		assert.Equal(t, payload, s.Transform(payload), s.Name)
	}
}

// Linked labels are removed by plain text substitution. Only a label that
// closes its object is recognized, and a closing bracket inside a label
// ends the list early. Both shapes are left untouched.
func TestWithoutLinkedLabelsTextLimits(t *testing.T) {
	cases := map[string]struct {
		payload string
		want    string
	}{
		"label is the last key": {
			payload: `{"linkedInternalAddresses":[{"id":"1","label":"a"}]}`,
			want:    `{"linkedInternalAddresses":[{"id":"1"}]}`,
		},
		"label followed by another key": {
			payload: `{"linkedInternalAddresses":[{"id":"1","label":"a","kind":"x"}]}`,
			want:    `{"linkedInternalAddresses":[{"id":"1","label":"a","kind":"x"}]}`,
		},
		"label is the first key": {
			payload: `{"linkedInternalAddresses":[{"label":"a","id":"1"}]}`,
			want:    `{"linkedInternalAddresses":[{"label":"a","id":"1"}]}`,
		},
		"closing bracket inside a label": {
			payload: `{"linkedInternalAddresses":[{"id":"1","label":"a]b"},{"id":"2","label":"c"}]}`,
			want:    `{"linkedInternalAddresses":[{"id":"1","label":"a]b"},{"id":"2","label":"c"}]}`,
		},
		"closing bracket after the stripped label": {
			payload: `{"linkedInternalAddresses":[{"id":"1","label":"a"},{"id":"2","label":"b]"}]}`,
			want:    `{"linkedInternalAddresses":[{"id":"1"},{"id":"2","label":"b]"}]}`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, withoutLinkedLabels.Transform(tc.payload))
		})
	}
}
