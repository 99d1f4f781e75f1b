// Package cli provides the interactive jobmatch command-line client.
//
// It wires configuration, the session store, API services and an interactive
// REPL. A stored session is restored on start; a background watcher probes
// the backend and flips the prompt between online and offline.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Profile and resume management, including resume upload
//   - Job listing, search and matches, match analysis and recommendations
//   - Analytics dashboard
//   - Notifications, streamed live while logged in
//
// Client events (session expired, access denied, rate limiting, server
// errors) are printed as they happen. The REPL is started via App.Run(ctx),
// which blocks until the user exits.
package cli
