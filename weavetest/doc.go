/*
Package weavetest provides fixtures for testing the whitelist verification
engine: rule user keys, rules container builders, SuperAdmin endorsements
and user signatures over hash lists.

Helpers fail the test immediately on unexpected errors so that test cases
can focus on the verification outcome.
*/
package weavetest
