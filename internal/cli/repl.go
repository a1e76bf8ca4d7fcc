package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	Scan(ctx context.Context) error
	Check(ctx context.Context) error
	Show(ctx context.Context) error
}

// Root prints the banner and runs the REPL on the app's input until EOF or
// exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to credcheck (type 'help' for commands)")
	runREPL(ctx, a, a.in)
}

// runREPL reads commands line by line and dispatches them to a:
//
//	help          show available commands
//	scan          run the candidate scan
//	check         verify one password typed without echo
//	show          print the stored record
//	exit | quit   leave
//
// Command errors are printed and the loop continues. The loop exits on
// EOF, on exit/quit, or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn("credcheck> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn("Available commands: scan, check, show, exit")
		case "scan":
			err = a.Scan(ctx)
		case "check":
			err = a.Check(ctx)
		case "show":
			err = a.Show(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil && !errors.Is(err, errMismatch) {
			printlnFn("Error:", err)
		}
	}
}
