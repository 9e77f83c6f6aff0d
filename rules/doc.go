/*
Package rules decodes the rules container, the governance policy that
defines users, groups and the approval thresholds for whitelisting, and the
blob of SuperAdmin signatures endorsing it.

The wire format is protocol buffers (see codec.proto). Decoded values are
converted into a Container which keeps users and groups in flat tables
indexed by id, so a container can be shared between goroutines and cached
without copying.
*/
package rules
