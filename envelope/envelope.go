package envelope

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gowebpki/jcs"
	"github.com/iov-one/whitelist/errors"
)

// Metadata holds the claimed content hash and the canonical payload string
// the hash was computed over.
type Metadata struct {
	Hash            string `json:"hash"`
	PayloadAsString string `json:"payloadAsString"`
	// Payload is the structured payload as sent by the server. It can be
	// modified independently of the hash and is never consulted.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Signature is a single user approval. A user signs the canonical JSON
// encoding of a list of hashes, so one signature can cover several payload
// versions.
type Signature struct {
	UserID    string   `json:"userId"`
	Signature string   `json:"signature"`
	Comment   string   `json:"comment,omitempty"`
	Hashes    []string `json:"hashes"`
}

// Covers returns true if hash is one of the hashes this signature was made
// for. Comparison ignores letter case.
func (s *Signature) Covers(hash string) bool {
	for _, h := range s.Hashes {
		if strings.EqualFold(strings.TrimSpace(h), hash) {
			return true
		}
	}
	return false
}

// SignedMessage returns the bytes that the user signed: the canonical JSON
// encoding of the covered hash list, exactly as carried by the envelope.
func (s *Signature) SignedMessage() ([]byte, error) {
	hashes := s.Hashes
	if hashes == nil {
		hashes = []string{}
	}
	raw, err := json.Marshal(hashes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "cannot encode hashes")
	}
	msg, err := jcs.Transform(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "cannot canonicalize hashes")
	}
	return msg, nil
}

// Decode returns the raw signature bytes.
func (s *Signature) Decode() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s.Signature)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDecode, "signature of user %q is not base64", s.UserID)
	}
	return raw, nil
}

// SignedPayload is the block approved by the users.
type SignedPayload struct {
	Payload    string      `json:"payload"`
	Signatures []Signature `json:"signatures"`
}

// Rules references the governance policy an envelope was approved under.
type Rules struct {
	// RulesContainer is the base64 encoded rules container.
	RulesContainer string `json:"rulesContainer"`
	// RulesSignatures is the base64 encoded SuperAdmin signatures of the
	// rules container.
	RulesSignatures string `json:"rulesSignatures"`
	// RulesContainerHash identifies the container within a result set.
	// Optional, used for batch verification only.
	RulesContainerHash string `json:"rulesContainerHash,omitempty"`
}

// Trail is a single audit trail entry.
type Trail struct {
	ID      string    `json:"id,omitempty"`
	UserID  string    `json:"userId,omitempty"`
	Action  string    `json:"action"`
	Comment string    `json:"comment,omitempty"`
	Date    time.Time `json:"date"`
}

// TrailActionCreated marks the trail entry of the envelope creation.
const TrailActionCreated = "created"

// Attribute is a free form key value pair attached to a whitelisted entity.
type Attribute struct {
	ID    string `json:"id,omitempty"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Precheck validates the preconditions every envelope must meet before any
// cryptographic work is done.
func Precheck(meta *Metadata, signed *SignedPayload) error {
	if meta == nil || meta.PayloadAsString == "" {
		return errors.Wrap(errors.ErrValidation, "payload is empty")
	}
	if signed == nil || len(signed.Signatures) == 0 {
		return errors.Wrap(errors.ErrValidation, "no signatures")
	}
	return nil
}

// CreatedAt returns the date of the first creation trail. If there is none,
// fallback is returned.
func CreatedAt(trails []Trail, fallback time.Time) time.Time {
	for _, t := range trails {
		if strings.EqualFold(t.Action, TrailActionCreated) {
			return t.Date
		}
	}
	return fallback
}

// AttributeMap flattens attributes into a map. Later keys overwrite earlier
// ones.
func AttributeMap(attrs []Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

// ID is an identifier that is encoded either as a JSON string or as a JSON
// number.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return errors.Wrap(errors.ErrDecode, "id must be a string or a number")
	}
	*id = ID(n.String())
	return nil
}
