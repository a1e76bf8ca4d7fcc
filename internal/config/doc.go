// Package config loads runtime configuration for the credcheck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-r string     stored record "<salt-hex>:<hash-hex>"
//	-p string     candidate password (repeatable; replaces the default list)
//	-f string     file with one candidate password per line
//	-alg string   PBKDF2 hash: sha512, sha256 or sha1
//	-n int        PBKDF2 iteration count
//	-w int        candidates verified concurrently
//	-t duration   overall scan timeout (0 disables)
//	-l string     log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "record": "09208fc7...:737b69d9...",
//	  "candidates": ["admin", "editor"],
//	  "candidates_file": "candidates.txt",
//	  "algorithm": "sha512",
//	  "iterations": 10000,
//	  "workers": 1,
//	  "timeout": "30s",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their earlier value.
package config
