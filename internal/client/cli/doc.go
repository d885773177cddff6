// Package cli provides the interactive Outstagram command-line client.
//
// It wires configuration, the local credential store, the HTTP API client,
// and an interactive REPL. Typical flow: restore a saved session, then
// execute user commands until exit.
//
// Key features:
//   - Signup with a live password policy checklist
//   - Login / Logout with persisted sessions
//   - Image upload with captions
//   - Whoami
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the command methods for details.
package cli
