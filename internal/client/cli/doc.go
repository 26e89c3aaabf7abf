// Package cli provides the interactive spende command-line client.
//
// It wires configuration and the HTTP API client into a small REPL: account
// commands (register, login, logout, whoami, passwd, rename, deleteaccount)
// and wallet commands (list, show, add, edit, remove). Passwords are read
// from the terminal without echo.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
