package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/credcheck/internal/flagx"
	"github.com/dmitrijs2005/credcheck/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// nil-able fields tell an absent key from an explicit zero.
type JsonConfig struct {
	Record         *string         `json:"record"`
	Candidates     []string        `json:"candidates"`
	CandidatesFile *string         `json:"candidates_file"`
	Algorithm      *string         `json:"algorithm"`
	Iterations     *int            `json:"iterations"`
	Workers        *int            `json:"workers"`
	Timeout        *timex.Duration `json:"timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config in args. Without either flag it does nothing.
//
// Read and unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Record != nil {
		cfg.Record = *jc.Record
	}
	if jc.Candidates != nil {
		cfg.Candidates = jc.Candidates
	}
	if jc.CandidatesFile != nil {
		cfg.CandidatesFile = *jc.CandidatesFile
	}
	if jc.Algorithm != nil {
		cfg.Algorithm = *jc.Algorithm
	}
	if jc.Iterations != nil {
		cfg.Iterations = *jc.Iterations
	}
	if jc.Workers != nil {
		cfg.Workers = *jc.Workers
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
