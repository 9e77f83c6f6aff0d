package asset

import (
	"regexp"

	"github.com/iov-one/whitelist/integrity"
)

var (
	withoutIsNFT    = integrity.RemovePattern("isNFT", regexp.MustCompile(`,"isNFT":(true|false)`))
	withoutKindType = integrity.RemovePattern("kindType", regexp.MustCompile(`,"kindType":"[^"]*"`))
)

// LegacyStrategies rebuild asset payloads signed before the isNFT and
// kindType fields were introduced.
var LegacyStrategies = []integrity.LegacyStrategy{
	withoutIsNFT,
	withoutKindType,
	integrity.Chain("isNFT+kindType", withoutIsNFT, withoutKindType),
}
