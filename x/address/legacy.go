package address

import (
	"regexp"

	"github.com/iov-one/whitelist/integrity"
)

var (
	contractTypeField = regexp.MustCompile(`,"contractType":"[^"]*"`)
	linkedAddresses   = regexp.MustCompile(`"linkedInternalAddresses":\[[^\]]*\]`)
	linkedLabelField  = regexp.MustCompile(`,"label":"[^"]*"}`)
)

// withoutContractType removes the contractType field.
var withoutContractType = integrity.RemovePattern("contractType", contractTypeField)

// withoutLinkedLabels removes the label field of every linked internal
// address. Labels elsewhere in the payload are kept. Only a label that is
// the last key of its object is removed, and a "]" inside a label ends the
// list early, matching how legacy payloads were rebuilt.
var withoutLinkedLabels = integrity.LegacyStrategy{
	Name: "linkedInternalAddresses.label",
	Transform: func(payload string) string {
		return linkedAddresses.ReplaceAllStringFunc(payload, func(list string) string {
			return linkedLabelField.ReplaceAllString(list, "}")
		})
	},
}

// LegacyStrategies rebuild address payloads signed before the contractType
// field and the labels of linked internal addresses were introduced.
var LegacyStrategies = []integrity.LegacyStrategy{
	withoutContractType,
	withoutLinkedLabels,
	integrity.Chain("contractType+linkedInternalAddresses.label", withoutContractType, withoutLinkedLabels),
}
