// Package cli provides the credcheck command-line driver.
//
// It wires configuration, logging, the verifier and the candidate scanner,
// and exposes them as subcommands:
//
//	scan    try every configured candidate against the stored record
//	check   read one password from the terminal (no echo) and verify it
//	show    print the stored record, its salt and a hash preview
//
// Without a subcommand an interactive REPL offering the same commands is
// started. See App.Run and runREPL.
package cli
