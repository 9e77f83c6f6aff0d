/*
Package codec holds the protocol buffers messages of the rules container
and of its signature blob.

codec.pb.go is generated from codec.proto, regenerate it with

	protoc --gogofaster_out=. rules/codec/codec.proto

from the repository root.
*/
package codec

// Short names of the rule source types.
const (
	SourceTypeUnspecified     = RuleSourceType_RULE_SOURCE_TYPE_UNSPECIFIED
	SourceTypeInternalWallet  = RuleSourceType_RULE_SOURCE_TYPE_INTERNAL_WALLET
	SourceTypeInternalAddress = RuleSourceType_RULE_SOURCE_TYPE_INTERNAL_ADDRESS
	SourceTypeExternalAddress = RuleSourceType_RULE_SOURCE_TYPE_EXTERNAL_ADDRESS
)
