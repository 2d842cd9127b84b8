// Released under an MIT license. See LICENSE.

// Package options parses the command line and decides the session mode.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	words       int
	usage       = `slisp - an interpreter for McCarthy's LISP.

Usage:
  slisp [-w WORDS] [SCRIPT]
  slisp [-w WORDS] -c EXPRESSION
  slisp -h | --help
  slisp -v | --version

Arguments:
  SCRIPT  Path to a file of expressions to evaluate.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION and exit.
  -w, --words=WORDS         Arena size in words [default: 32768].
  -h, --help                Display this help.
  -v, --version             Print slisp version.

If slisp's stdin is a TTY and no script or command is given,
expressions are read interactively, with line editing and history,
until end of input.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if this is an interactive session.
func Interactive() bool {
	return interactive
}

// Parse processes the command line.
func Parse(version string) {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	words, _ = opts.Int("--words")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

// Script returns the script path, if any.
func Script() string {
	return script
}

// Words returns the arena size.
func Words() int {
	return words
}
