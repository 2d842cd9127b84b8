// Released under an MIT license. See LICENSE.

// Package printer turns objects back into characters.
package printer

import (
	"io"

	"github.com/mshook/sectorlisp/internal/cell"
)

// Memory is the interface for the object memory being printed from.
type Memory interface {
	Car(c cell.T) cell.T
	Cdr(c cell.T) cell.T
	Name(c cell.T) string
}

// T (printer) writes the text of objects to a sink.
type T struct {
	mem Memory
	w   io.Writer
}

type printer = T

// New creates a printer.
func New(mem Memory, w io.Writer) *T {
	return &printer{mem: mem, w: w}
}

// Print writes the text of the object c.
func (p *printer) Print(c cell.T) {
	p.object(c)
}

// Newline ends the current output line.
func (p *printer) Newline() {
	p.text("\n")
}

func (p *printer) object(c cell.T) {
	if cell.IsCons(c) {
		p.list(c)
	} else {
		p.text(p.mem.Name(c))
	}
}

// list prints the spine of c element by element. A non-Nil atom in
// cdr position ends the spine as a dotted pair.
func (p *printer) list(c cell.T) {
	p.text("(")
	p.object(p.mem.Car(c))

	for c = p.mem.Cdr(c); c != cell.Nil; c = p.mem.Cdr(c) {
		if !cell.IsCons(c) {
			p.text(" ∙ ")
			p.object(c)
			break
		}

		p.text(" ")
		p.object(p.mem.Car(c))
	}

	p.text(")")
}

func (p *printer) text(s string) {
	io.WriteString(p.w, s) //nolint:errcheck
}
