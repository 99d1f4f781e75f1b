package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	SetProfile(ctx context.Context) error
	Resumes(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Jobs(ctx context.Context, args []string) error
	Job(ctx context.Context, args []string) error
	Search(ctx context.Context) error
	Matches(ctx context.Context, args []string) error
	Analyze(ctx context.Context, args []string) error
	Recommend(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: whoami, profile, setprofile, resume, upload <file>, " +
		"jobs [page], job <id>, search, matches [page], analyze <job-id> <resume-id>, recommend <match-id>, " +
		"dashboard, notifications, read <id|all>, logout, exit"
)

// runREPL reads commands line by line and dispatches them to a. The first
// word is the command, the rest are its arguments. The loop exits on scanner
// EOF, on "exit"/"quit" or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("jm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setprofile":
			_ = a.SetProfile(ctx)

		case "resume", "resumes":
			_ = a.Resumes(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "jobs":
			_ = a.Jobs(ctx, args)

		case "job":
			_ = a.Job(ctx, args)

		case "search":
			_ = a.Search(ctx)

		case "matches":
			_ = a.Matches(ctx, args)

		case "analyze":
			_ = a.Analyze(ctx, args)

		case "recommend":
			_ = a.Recommend(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "notifications", "n":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.Read(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
