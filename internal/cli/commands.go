package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"github.com/dmitrijs2005/credcheck/internal/credential"
	"github.com/dmitrijs2005/credcheck/internal/scanner"
	"github.com/dmitrijs2005/credcheck/internal/verifier"
)

const hashPreviewLen = 20

// Show prints the stored record, its salt, the start of the hash and the
// KDF parameters it is checked with.
func (a *App) Show(ctx context.Context) error {
	rec, err := credential.Parse(a.config.Record)
	if err != nil {
		return err
	}
	a.printRecord(rec)
	return nil
}

// Scan tries every configured candidate against the stored record, printing
// one line per candidate and a final verdict. A malformed record is
// returned as an error before any candidate is tried; finishing without a
// match is not an error.
func (a *App) Scan(ctx context.Context) error {
	candidates, err := a.config.LoadCandidates()
	if err != nil {
		return err
	}

	rec, err := credential.Parse(a.config.Record)
	if err != nil {
		return err
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	fmt.Fprintln(a.out, "Verifying stored credential")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	a.printRecord(rec)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Checking candidates...")

	report, err := a.scanner.Scan(ctx, rec, candidates)
	if errors.Is(err, common.ErrNoCandidates) {
		fmt.Fprintln(a.out, "⚠️  candidate list is empty")
		err = nil
	}
	if err != nil {
		fmt.Fprintf(a.out, "\nScan interrupted after %d of %d candidates\n", report.Evaluated(), report.Total)
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, summary(report))
	return nil
}

// Check reads a single password from the terminal and verifies it against
// the stored record. It returns errMismatch when the password is wrong.
func (a *App) Check(ctx context.Context) error {
	rec, err := credential.Parse(a.config.Record)
	if err != nil {
		return err
	}

	pw, err := getPassword(a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)

	res := a.verifier.VerifyRecord(ctx, string(pw), rec)
	switch res.Outcome {
	case verifier.Match:
		fmt.Fprintln(a.out, "✅ password matches")
		return nil
	case verifier.Error:
		fmt.Fprintf(a.out, "❌ password does not match (derivation error: %v)\n", res.Err)
	default:
		fmt.Fprintln(a.out, "❌ password does not match")
	}
	return errMismatch
}

func (a *App) printRecord(rec credential.Record) {
	fmt.Fprintf(a.out, "Stored hash: %s\n", rec.String())
	fmt.Fprintf(a.out, "Salt: %s\n", rec.SaltHex())
	fmt.Fprintf(a.out, "Hash: %s\n", rec.HashPreview(hashPreviewLen))

	p := a.verifier.Params().ForDigest(rec.Hash)
	fmt.Fprintf(a.out, "KDF: pbkdf2-hmac-%s (%d-byte digest), %d iterations, %d-byte key\n",
		p.Algorithm, p.Algorithm.Size(), p.Iterations, p.KeyLength)
}

func (a *App) printAttempt(at scanner.Attempt) {
	switch at.Result.Outcome {
	case verifier.Match:
		fmt.Fprintf(a.out, "✅ match found: %s\n", at.Password)
	case verifier.Error:
		fmt.Fprintf(a.out, "❌ no match: %s (derivation error: %v)\n", at.Password, at.Result.Err)
	default:
		fmt.Fprintf(a.out, "❌ no match: %s\n", at.Password)
	}
}

func summary(r scanner.Report) string {
	if r.Matched {
		return fmt.Sprintf("Done: match found at candidate %d of %d: %s", r.Match.Index+1, r.Total, r.Match.Password)
	}
	s := fmt.Sprintf("Done: no match among %d candidates", r.Evaluated())
	if n := r.Errors(); n > 0 {
		s += fmt.Sprintf(" (%d derivation errors)", n)
	}
	return s
}
