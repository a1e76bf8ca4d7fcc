// Package verifier decides whether a plaintext password matches a stored
// salted hash.
//
// A Verifier is configured once with KDF parameters and then called per
// candidate. It never returns an error: a derivation problem is reported
// as a Result with Outcome Error, so callers can treat it as a non-match
// and carry on.
package verifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"github.com/dmitrijs2005/credcheck/internal/credential"
	"github.com/dmitrijs2005/credcheck/internal/cryptox"
	"github.com/dmitrijs2005/credcheck/internal/logging"
)

// Outcome is the variant of a verification Result.
type Outcome int

const (
	NoMatch Outcome = iota
	Match
	Error
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case NoMatch:
		return "no match"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is returned by value from Verify. Err is set only when Outcome is
// Error and always wraps common.ErrDerivationFailure.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports whether the password matched.
func (r Result) OK() bool {
	return r.Outcome == Match
}

type Option func(*Verifier)

// WithDeriver replaces the key-derivation step.
func WithDeriver(fn cryptox.DeriveFunc) Option {
	return func(v *Verifier) {
		v.derive = fn
	}
}

// WithLogger sets the logger derivation failures are reported to.
func WithLogger(l logging.Logger) Option {
	return func(v *Verifier) {
		v.log = l
	}
}

type Verifier struct {
	params cryptox.Params
	derive cryptox.DeriveFunc
	log    logging.Logger
}

// New returns a Verifier bound to params. Parameters are not validated
// here; invalid ones surface as Error results on every call.
func New(params cryptox.Params, opts ...Option) *Verifier {
	v := &Verifier{
		params: params,
		derive: cryptox.Derive,
		log:    logging.Discard(),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Params returns the KDF parameters the verifier was built with.
func (v *Verifier) Params() cryptox.Params {
	return v.params
}

// Verify derives a digest from password and salt and compares it with
// expected over the full length. The output length defaults to
// len(expected) unless the parameters fix it.
func (v *Verifier) Verify(ctx context.Context, password string, salt, expected []byte) Result {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	computed, err := v.derive(pw, salt, v.params.ForDigest(expected))
	if err != nil {
		if !errors.Is(err, common.ErrDerivationFailure) {
			err = fmt.Errorf("%w: %w", common.ErrDerivationFailure, err)
		}
		v.log.Warn(ctx, "password derivation failed",
			"algorithm", v.params.Algorithm,
			"iterations", v.params.Iterations,
			"error", err,
		)
		return Result{Outcome: Error, Err: err}
	}

	if cryptox.Equal(computed, expected) {
		return Result{Outcome: Match}
	}
	return Result{Outcome: NoMatch}
}

// VerifyRecord is Verify with the salt and hash taken from rec.
func (v *Verifier) VerifyRecord(ctx context.Context, password string, rec credential.Record) Result {
	return v.Verify(ctx, password, rec.Salt, rec.Hash)
}
