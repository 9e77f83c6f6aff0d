package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyStrategies(t *testing.T) {
	const payload = `{"symbol":"PUNK","isNFT":true,"kindType":"collectible","tokenId":"1"}`

	cases := map[string]string{
		"isNFT":          `{"symbol":"PUNK","kindType":"collectible","tokenId":"1"}`,
		"kindType":       `{"symbol":"PUNK","isNFT":true,"tokenId":"1"}`,
		"isNFT+kindType": `{"symbol":"PUNK","tokenId":"1"}`,
	}
	if len(LegacyStrategies) != len(cases) {
		t.Fatalf("want %d strategies, got %d", len(cases), len(LegacyStrategies))
	}
	for _, s := range LegacyStrategies {
		t.Run(s.Name, func(t *testing.T) {
			assert.Equal(t, cases[s.Name], s.Transform(payload))
		})
	}
}
