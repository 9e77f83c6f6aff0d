/*
Package asset verifies whitelisted assets: contracts and tokens a tenant
allows to interact with.

Asset rules are selected by blockchain and network only, they have no rule
line overrides.
*/
package asset
