package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// printfFn is a test seam for formatted user-facing output.
var printfFn = func(format string, a ...any) { fmt.Printf(format, a...) }

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Entries(ctx context.Context) error
	AddEntry(ctx context.Context) error
	ShowEntry(ctx context.Context, arg string) error
	DeleteEntry(ctx context.Context, arg string) error
	Levels(ctx context.Context) error
	ShowLevel(ctx context.Context, arg string) error
	DeleteLevel(ctx context.Context, arg string) error
	Quiz(ctx context.Context) error
	Challenges(ctx context.Context) error
	CompleteChallenge(ctx context.Context, arg string) error
	Chat(ctx context.Context) error
}

// runREPL reads one line at a time, parses the first token as the command
// and dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit".
//
// Commands requiring a logged-in session are rejected with a hint while
// logged out; handlers log their own errors, keeping the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("MindWell CLI (type 'help' for commands)")

	for {
		printfFn("mindwell %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: entries, add, show <n>, delentry <n>, levels, level <n>, dellevel <n>, quiz, challenges, complete <n>, chat, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "entries", "l", "list":
			_ = a.Entries(ctx)

		case "add":
			_ = a.AddEntry(ctx)

		case "show":
			_ = a.ShowEntry(ctx, arg)

		case "delentry":
			_ = a.DeleteEntry(ctx, arg)

		case "levels":
			_ = a.Levels(ctx)

		case "level":
			_ = a.ShowLevel(ctx, arg)

		case "dellevel":
			_ = a.DeleteLevel(ctx, arg)

		case "quiz":
			_ = a.Quiz(ctx)

		case "challenges":
			_ = a.Challenges(ctx)

		case "complete":
			_ = a.CompleteChallenge(ctx, arg)

		case "chat":
			_ = a.Chat(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
