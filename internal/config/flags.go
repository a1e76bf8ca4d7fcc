package config

import (
	"flag"

	"github.com/dmitrijs2005/credcheck/internal/flagx"
)

var knownFlags = []string{"-r", "-p", "-f", "-alg", "-n", "-w", "-t", "-l"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in knownFlags are considered (see flagx.FilterArgs), so the
// subcommand and the -c/-config flag do not interfere.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Record, "r", cfg.Record, "stored record <salt-hex>:<hash-hex>")
	fs.Var(flagx.NewStringList(&cfg.Candidates), "p", "candidate password (repeatable)")
	fs.StringVar(&cfg.CandidatesFile, "f", cfg.CandidatesFile, "file with one candidate password per line")
	fs.StringVar(&cfg.Algorithm, "alg", cfg.Algorithm, "PBKDF2 hash algorithm")
	fs.IntVar(&cfg.Iterations, "n", cfg.Iterations, "PBKDF2 iteration count")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "candidates verified concurrently")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "overall scan timeout, 0 disables")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
