/*
Slisp is an interpreter for McCarthy's 1960 LISP: uppercase symbolic
atoms and parentheses, with seven primitives and nothing else. The
following session behaves as expected:

    * (CONS (QUOTE A) (QUOTE (B C)))
    (A B C)
    * ((LAMBDA (X) (CONS X X)) (QUOTE A))
    (A ∙ A)
    * (COND ((EQ (QUOTE A) (QUOTE A)) (QUOTE YES)) ((QUOTE T) (QUOTE NO)))
    YES

The machine is one fixed arena holding interned symbols and cons
cells, with a copy-and-compact collection after every top-level
evaluation. It is small enough to explain in an afternoon yet complete
enough to host its own meta-circular evaluator.

Slisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mshook/sectorlisp/internal/cell"
	"github.com/mshook/sectorlisp/internal/engine"
	"github.com/mshook/sectorlisp/internal/printer"
	"github.com/mshook/sectorlisp/internal/reader"
	"github.com/mshook/sectorlisp/internal/system/options"
	"github.com/mshook/sectorlisp/internal/system/process"
	"github.com/mshook/sectorlisp/internal/ui"
)

const version = "slisp 1.0.0"

func main() {
	options.Parse(version)

	if options.Interactive() {
		process.InteractiveSetup()
	}

	src, err := source()
	if err != nil {
		fmt.Fprintln(os.Stderr, "slisp:", err)
		os.Exit(1)
	}

	m := engine.New(options.Words())
	r := reader.New(m, src)
	p := printer.New(m, os.Stdout)

	m.Connect(r, p)

	code := repl(m, r, p)

	if c, ok := src.(io.Closer); ok {
		c.Close()
	}

	os.Exit(code)
}

// repl runs the read-eval-print loop until the source is exhausted.
// The heap survives only within a single top-level expression.
//
// End of input is orderly: a final newline and a zero exit, whether
// it was seen at the top level or inside a READ. Arena exhaustion is
// fatal.
func repl(m *engine.T, r *reader.T, p *printer.T) (code int) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case engine.Fatal:
			fmt.Fprintln(os.Stderr, "slisp:", v)
			code = 1
		default:
			if v != io.EOF {
				panic(v)
			}
			p.Newline()
		}
	}()

	for {
		m.ResetHeap()

		c, err := r.Expression()
		if err != nil {
			break
		}

		p.Print(m.Eval(c, cell.Nil))
		p.Newline()
	}

	p.Newline()

	return code
}

func source() (reader.Source, error) {
	if options.Command() != "" {
		return ui.Text(options.Command()), nil
	}

	if options.Script() != "" {
		f, err := os.Open(options.Script())
		if err != nil {
			return nil, err
		}

		return ui.Stream(f), nil
	}

	if options.Interactive() {
		return ui.Terminal("* "), nil
	}

	return ui.Stream(os.Stdin), nil
}
