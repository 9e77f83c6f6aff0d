package asset

import (
	"time"

	"github.com/iov-one/whitelist/envelope"
)

// Envelope is a whitelisted asset as received from the server, before
// verification.
type Envelope struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenantId,omitempty"`
	Blockchain string `json:"blockchain"`
	Network    string `json:"network"`

	Metadata envelope.Metadata `json:"metadata"`
	envelope.Rules
	SignedContractAddress envelope.SignedPayload `json:"signedContractAddress"`

	Status       string               `json:"status,omitempty"`
	Action       string               `json:"action,omitempty"`
	Trails       []envelope.Trail     `json:"trails,omitempty"`
	Attributes   []envelope.Attribute `json:"attributes,omitempty"`
	CreationDate time.Time            `json:"creationDate"`
}
