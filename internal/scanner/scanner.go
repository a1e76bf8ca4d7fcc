package scanner

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"github.com/dmitrijs2005/credcheck/internal/credential"
	"github.com/dmitrijs2005/credcheck/internal/logging"
	"github.com/dmitrijs2005/credcheck/internal/verifier"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Attempt is the outcome of verifying one candidate.
type Attempt struct {
	Index    int
	Password string
	Result   verifier.Result
}

// Report summarizes a scan. Attempts holds every evaluated candidate in
// list order, ending with the match when there is one.
type Report struct {
	RunID    string
	Total    int
	Matched  bool
	Match    Attempt
	Attempts []Attempt
}

// Evaluated is the number of candidates that were verified.
func (r Report) Evaluated() int {
	return len(r.Attempts)
}

// Errors is the number of candidates whose derivation failed.
func (r Report) Errors() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Result.Outcome == verifier.Error {
			n++
		}
	}
	return n
}

// Observer is called once per evaluated candidate, in list order.
type Observer func(Attempt)

type Option func(*Scanner)

// WithWorkers sets how many candidates may be verified at once. Values
// below 2 keep the scan sequential.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		s.workers = n
	}
}

func WithObserver(fn Observer) Option {
	return func(s *Scanner) {
		s.observer = fn
	}
}

func WithLogger(l logging.Logger) Option {
	return func(s *Scanner) {
		s.log = l
	}
}

type Scanner struct {
	verifier *verifier.Verifier
	workers  int
	observer Observer
	log      logging.Logger
}

func New(v *verifier.Verifier, opts ...Option) *Scanner {
	s := &Scanner{
		verifier: v,
		workers:  1,
		observer: func(Attempt) {},
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ScanRaw parses raw as a stored credential and scans candidates against
// it. A malformed record is returned as an error wrapping
// common.ErrMalformedRecord before any candidate is verified.
func (s *Scanner) ScanRaw(ctx context.Context, raw string, candidates []string) (Report, error) {
	rec, err := credential.Parse(raw)
	if err != nil {
		return Report{Total: len(candidates)}, err
	}
	return s.Scan(ctx, rec, candidates)
}

// Scan verifies candidates against rec in order and stops at the first
// match. Exhausting the list without a match is not an error.
//
// ctx is checked between candidates. When it is cancelled before the
// outcome is known, the partial report is returned with ctx.Err().
func (s *Scanner) Scan(ctx context.Context, rec credential.Record, candidates []string) (Report, error) {
	report := Report{RunID: uuid.NewString(), Total: len(candidates)}
	log := s.log.With("run_id", report.RunID)

	if len(candidates) == 0 {
		log.Warn(ctx, "scan has nothing to check")
		return report, common.ErrNoCandidates
	}

	log.Info(ctx, "scan started", "candidates", len(candidates), "workers", max(s.workers, 1))

	var err error
	if s.workers > 1 && len(candidates) > 1 {
		report, err = s.scanParallel(ctx, rec, candidates, report)
	} else {
		report, err = s.scanSequential(ctx, rec, candidates, report)
	}

	if err != nil {
		log.Warn(ctx, "scan interrupted", "evaluated", report.Evaluated(), "error", err)
		return report, err
	}

	if report.Matched {
		log.Info(ctx, "scan finished", "matched", true, "index", report.Match.Index, "evaluated", report.Evaluated())
	} else {
		log.Info(ctx, "scan finished", "matched", false, "evaluated", report.Evaluated(), "errors", report.Errors())
	}
	return report, nil
}

func (s *Scanner) scanSequential(ctx context.Context, rec credential.Record, candidates []string, report Report) (Report, error) {
	for i, pw := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		a := Attempt{Index: i, Password: pw, Result: s.verifier.VerifyRecord(ctx, pw, rec)}
		s.add(ctx, &report, a)

		if a.Result.OK() {
			report.Matched = true
			report.Match = a
			return report, nil
		}
	}
	return report, nil
}

// scanParallel dispatches candidates in list order to at most s.workers
// goroutines. best holds the lowest matching index seen so far; candidates
// above it are skipped since they can no longer win.
func (s *Scanner) scanParallel(ctx context.Context, rec credential.Record, candidates []string, report Report) (Report, error) {
	n := len(candidates)
	results := make([]verifier.Result, n)
	done := make([]bool, n)

	var best atomic.Int64
	best.Store(int64(n))

	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for i := range candidates {
		if int64(i) > best.Load() || ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy for pre-Go 1.22 loop semantics
		g.Go(func() error {
			if int64(i) > best.Load() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			res := s.verifier.VerifyRecord(ctx, candidates[i], rec)
			results[i] = res
			done[i] = true

			if res.OK() {
				for {
					cur := best.Load()
					if int64(i) >= cur || best.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}
			return nil
		})
	}
	waitErr := g.Wait()
	if waitErr == nil {
		waitErr = ctx.Err()
	}

	last := int(best.Load())
	if last == n {
		last = n - 1
	}

	complete := true
	for i := 0; i <= last; i++ {
		if !done[i] {
			complete = false
			continue
		}
		s.add(ctx, &report, Attempt{Index: i, Password: candidates[i], Result: results[i]})
	}

	if m := int(best.Load()); m < n && complete {
		report.Matched = true
		report.Match = report.Attempts[len(report.Attempts)-1]
		return report, nil
	}
	if !complete {
		if waitErr == nil {
			waitErr = errors.New("scan ended with unevaluated candidates")
		}
		return report, waitErr
	}
	return report, nil
}

func (s *Scanner) add(ctx context.Context, report *Report, a Attempt) {
	report.Attempts = append(report.Attempts, a)
	s.log.Debug(ctx, "candidate checked", "run_id", report.RunID, "index", a.Index, "outcome", a.Result.Outcome.String())
	s.observer(a)
}
