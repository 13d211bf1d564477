package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	touch()
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddUser(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, field, value string) error
	ResetSearch(ctx context.Context) error
}

// runREPL starts the console's read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Every received line counts as activity for the
// inactivity timer.
//
// Commands:
//
//	Not logged in:
//	  - help                     — show available commands
//	  - login                    — authenticate
//	  - adduser                  — create an account
//	  - exit | quit              — leave the program
//
//	Logged in, additionally:
//	  - (l)ist                   — refresh the current page
//	  - page <n>                 — jump to page n (1-based)
//	  - next | prev              — step through pages
//	  - search <field> <value>   — filter by one field
//	  - reset                    — back to the unfiltered listing
//	  - logout                   — end the session
//
// Errors returned by command handlers are ignored here; handlers render
// their own notifications. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uc> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		a.touch()

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, page <n>, next, prev, search <field> <value>, reset, adduser, logout, exit")
			} else {
				printlnFn("Available commands: login, adduser, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "page":
			if len(args) != 1 {
				printlnFn("Usage: page <number>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				printlnFn("Usage: page <number>")
				continue
			}
			_ = a.Page(ctx, n)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "search":
			if len(args) < 2 {
				printlnFn("Usage: search <field> <value>")
				continue
			}
			_ = a.Search(ctx, args[0], strings.Join(args[1:], " "))

		case "reset":
			_ = a.ResetSearch(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
