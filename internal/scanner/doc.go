// Package scanner checks an ordered list of candidate passwords against one
// stored credential and reports the first one that matches.
//
// The scan is a linear search with early exit. A malformed record aborts
// before any candidate is tried; a derivation failure for one candidate is
// recorded and treated as a non-match. With WithWorkers(n > 1) candidates
// are verified concurrently, but the reported match is still the first
// match in list order and the observer still sees attempts in list order.
package scanner
