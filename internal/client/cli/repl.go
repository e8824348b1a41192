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
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	ListPrescriptions(ctx context.Context) error
	AddPrescription(ctx context.Context) error
	EditPrescription(ctx context.Context) error
	DeletePrescription(ctx context.Context) error
	SharePrescription(ctx context.Context) error
	History(ctx context.Context) error
	Today(ctx context.Context) error
	AddReminder(ctx context.Context) error
	EditReminder(ctx context.Context) error
	DeleteReminder(ctx context.Context) error
	MarkTaken(ctx context.Context) error
	Stats(ctx context.Context) error
	Calendar(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	SearchMedicine(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the RxEase CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — request a password reset
//	  - search         — look up a medicine
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list prescriptions
//	  - add            — add a prescription
//	  - edit           — edit a prescription
//	  - delete         — delete a prescription
//	  - share          — email a prescription to someone
//	  - history        — browse prescriptions with filters
//	  - today          — show reminders grouped by time of day
//	  - addreminder    — schedule a reminder
//	  - editreminder   — edit a reminder
//	  - delreminder    — delete a reminder
//	  - taken          — mark a reminder as taken
//	  - stats          — adherence counters
//	  - calendar       — dose counts for the upcoming days
//	  - profile        — show the profile
//	  - editprofile    — update profile fields
//	  - photo          — upload a profile image
//	  - search         — look up a medicine
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rx> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, edit, delete, share, history, today, addreminder, editreminder, delreminder, taken, stats, calendar, profile, editprofile, photo, search, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "l", "list":
			_ = a.ListPrescriptions(ctx)

		case "add":
			_ = a.AddPrescription(ctx)

		case "edit":
			_ = a.EditPrescription(ctx)

		case "delete":
			_ = a.DeletePrescription(ctx)

		case "share":
			_ = a.SharePrescription(ctx)

		case "history":
			_ = a.History(ctx)

		case "today":
			_ = a.Today(ctx)

		case "addreminder":
			_ = a.AddReminder(ctx)

		case "editreminder":
			_ = a.EditReminder(ctx)

		case "delreminder":
			_ = a.DeleteReminder(ctx)

		case "taken":
			_ = a.MarkTaken(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "photo":
			_ = a.UploadPhoto(ctx)

		case "search":
			_ = a.SearchMedicine(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
