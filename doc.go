/*

Package whitelist verifies whitelisted addresses and assets approved under a
governance rules container.

An Engine holds the SuperAdmin keys that endorse rules containers and the
minimum number of endorsements required. It verifies and decodes rules
containers, optionally through a ContainerCache shared by a batch of
envelopes. The address and asset verifiers in x/address and x/asset build
their pipelines on top of it.

*/

package whitelist
