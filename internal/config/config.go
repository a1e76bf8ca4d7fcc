package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/credcheck/internal/cryptox"
	"github.com/dmitrijs2005/credcheck/internal/filex"
	"github.com/go-playground/validator/v10"
)

// adminRecord is the stored hash of the site's admin account.
const adminRecord = "09208fc77dde6d10c1963a1939108648:" +
	"737b69d98f350265393c47428feb988fa3f1c18bd4a950471ea23fb238e93df0" +
	"f5701f2382f9b1c669d217bf1aebbf4f1413b0cdd98204a92dee9a444527087e"

// defaultCandidates is the spot-check list, in the order it is tried.
var defaultCandidates = []string{
	"TongGi13246@Admin",
	"TongGi9519@Editor",
	"TongGi8271@Viewer",
	"Tongji2024@Admin",
	"Tongji2024@Editor",
	"Tongji2024@Viewer",
	"admin",
	"editor",
	"viewer",
	"password",
	"123456",
}

// Config holds runtime settings for the credcheck CLI.
type Config struct {
	Record         string        `validate:"required"`
	Candidates     []string
	CandidatesFile string
	Algorithm      string        `validate:"required,oneof=sha512 sha256 sha1"`
	Iterations     int           `validate:"min=1"`
	Workers        int           `validate:"min=1,max=64"`
	Timeout        time.Duration `validate:"gte=0"`
	LogLevel       string        `validate:"oneof=debug info warn warning error"`
}

// LoadDefaults populates c with the values the tool was built around:
// PBKDF2-HMAC-SHA512, 10000 iterations, the admin record and the standard
// candidate list, sequential scanning.
func (c *Config) LoadDefaults() {
	c.Record = adminRecord
	c.Candidates = append([]string(nil), defaultCandidates...)
	c.CandidatesFile = ""
	c.Algorithm = string(cryptox.DefaultAlgorithm)
	c.Iterations = cryptox.DefaultIterations
	c.Workers = 1
	c.Timeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
//
// Malformed JSON or flags panic, as with the standard flag.PanicOnError.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// Validate canonicalizes the algorithm name ("SHA-512" becomes "sha512")
// and checks field constraints. It does not parse the record; a malformed
// record is reported by the scan itself.
func (c *Config) Validate() error {
	if alg, err := cryptox.ParseAlgorithm(c.Algorithm); err == nil {
		c.Algorithm = string(alg)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Params returns the KDF parameters described by c. The key length is left
// to follow the stored hash.
func (c *Config) Params() (cryptox.Params, error) {
	alg, err := cryptox.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return cryptox.Params{}, err
	}
	return cryptox.Params{Algorithm: alg, Iterations: c.Iterations}, nil
}

// LoadCandidates returns the candidate list to scan. A configured
// candidates file replaces the inline list.
func (c *Config) LoadCandidates() ([]string, error) {
	if c.CandidatesFile == "" {
		return c.Candidates, nil
	}
	lines, err := filex.ReadLines(c.CandidatesFile)
	if err != nil {
		return nil, fmt.Errorf("candidates file: %w", err)
	}
	return lines, nil
}
