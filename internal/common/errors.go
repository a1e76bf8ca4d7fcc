// Package common defines sentinel errors and small helpers shared by the
// credcheck packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Record-level errors. Fatal to a verification run.
	ErrMalformedRecord = errors.New("malformed credential record")

	// Derivation errors. Recoverable, scoped to one candidate.
	ErrDerivationFailure    = errors.New("key derivation failed")
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// Scan-level errors.
	ErrNoCandidates = errors.New("no candidate passwords")
)
