// Released under an MIT license. See LICENSE.

//go:build !windows

// Package process performs process-level setup for the interpreter.
package process

import (
	"os/signal"

	"golang.org/x/sys/unix"
)

// InteractiveSetup configures signal handling for an interactive
// session: terminal-generated job-control signals are ignored so the
// REPL keeps the terminal.
func InteractiveSetup() {
	signal.Ignore(unix.SIGQUIT, unix.SIGTTIN, unix.SIGTTOU)
}
