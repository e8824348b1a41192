// Package cli provides the interactive RxEase command-line client.
//
// It wires configuration, local session storage, the backend API services,
// the medicine catalog, and an interactive REPL. Typical flow: restore a
// persisted session, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout with a locally persisted session
//   - Manage prescriptions: add, edit, delete, share by email, history filters
//   - Medication reminders: grouped schedule, add/edit/delete, mark-as-taken,
//     adherence stats, upcoming-days calendar
//   - Profile viewing, merge-style editing, and image upload
//   - Medicine lookup backed by a bundled dataset with a remote CSV fallback
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
