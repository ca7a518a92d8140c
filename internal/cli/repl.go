package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Write(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Filter(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	MyPage(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Unregister(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to a. Handler errors
// are ignored here; handlers report their own failures to the user. The
// loop ends on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("maum %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: write, (l)ist, search, filter, show, edit, delete, mypage, update, unregister, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "write":
			_ = a.Write(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "search":
			_ = a.Search(ctx)
		case "filter":
			_ = a.Filter(ctx)
		case "show":
			_ = a.Show(ctx)
		case "edit":
			_ = a.Edit(ctx)
		case "delete":
			_ = a.Delete(ctx)
		case "mypage":
			_ = a.MyPage(ctx)
		case "update":
			_ = a.UpdateProfile(ctx)
		case "unregister":
			_ = a.Unregister(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
