/*
Package threshold selects the authorization policy that applies to a
whitelisting request and evaluates collected user signatures against it.

A policy is a list of alternative paths. Each path lists group thresholds
that must all be met. Satisfying a single path authorizes the request.
*/
package threshold
