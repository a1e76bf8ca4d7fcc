package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/credcheck/internal/config"
	"github.com/dmitrijs2005/credcheck/internal/logging"
	"github.com/dmitrijs2005/credcheck/internal/scanner"
	"github.com/dmitrijs2005/credcheck/internal/verifier"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitMismatch = 2
)

// errMismatch is returned by Check when the password does not match.
var errMismatch = errors.New("password does not match")

type App struct {
	config   *config.Config
	log      logging.Logger
	verifier *verifier.Verifier
	scanner  *scanner.Scanner
	out      io.Writer
	in       *bufio.Scanner
}

// NewApp validates c and builds the verification pipeline from it. Logs go
// to stderr, user-facing output to stdout.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout, os.Stderr, os.Stdin)
}

func newApp(c *config.Config, out, logOut io.Writer, in io.Reader) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(logOut, level)

	params, err := c.Params()
	if err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		out:    out,
		in:     bufio.NewScanner(in),
	}
	a.verifier = verifier.New(params, verifier.WithLogger(log.With("component", "verifier")))
	a.scanner = scanner.New(a.verifier,
		scanner.WithWorkers(c.Workers),
		scanner.WithLogger(log.With("component", "scanner")),
		scanner.WithObserver(a.printAttempt),
	)
	return a, nil
}

// Run executes the subcommand named by args[0], or the REPL when args is
// empty or starts with a flag, and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd := ""
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "":
		a.Root(ctx)
		return ExitOK
	case "scan":
		err = a.Scan(ctx)
	case "check":
		err = a.Check(ctx)
	case "show":
		err = a.Show(ctx)
	case "help":
		a.usage()
		return ExitOK
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		a.usage()
		return ExitFailure
	}

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errMismatch):
		return ExitMismatch
	default:
		a.log.Error(ctx, "command failed", "command", cmd, "error", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return ExitFailure
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: credcheck [scan|check|show] [-c config.json] [-r record] [-p candidate]... [-f file]")
	fmt.Fprintln(a.out, "                 [-alg sha512] [-n 10000] [-w 1] [-t 0s] [-l info]")
}
