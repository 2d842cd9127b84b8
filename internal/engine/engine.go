// Released under an MIT license. See LICENSE.

// Package engine provides the slisp object memory and evaluator.
//
// The machine is a single array of signed words split at its midpoint.
// Interned symbols live above the midpoint and grow toward higher
// indices; cons cells live below it and grow toward lower indices.
// Addressing is uniform: for any handle c, the word at mid+c is the
// start of an atom's characters when c is non-negative and the car of
// a pair when c is negative (the cdr is the next word).
package engine

import (
	"fmt"

	"github.com/mshook/sectorlisp/internal/cell"
)

// Words is the default arena size.
const Words = 32768

// Fatal is the panic value used for unrecoverable machine conditions.
type Fatal string

func (f Fatal) Error() string {
	return string(f)
}

// Reader is the interface for things that supply expressions to READ.
type Reader interface {
	Expression() (cell.T, error)
}

// Printer is the interface for things that display objects for PRINT.
type Printer interface {
	Newline()
	Print(c cell.T)
}

// T (engine) is a LISP machine: one arena plus its heap cursor. The
// end of the symbol region is not stored; Intern finds it by scanning.
type T struct {
	words []int32
	mid   cell.T

	// heap is the handle of the most recently allocated cons cell,
	// or 0 when the heap is empty. Allocation moves it downward.
	heap cell.T

	in  Reader
	out Printer
}

type engine = T

// New creates a machine with an arena of the given number of words.
func New(words int) *T {
	if words < 4*len(builtins) {
		panic(Fatal(fmt.Sprintf("arena of %d words is too small", words)))
	}

	m := &engine{
		words: make([]int32, words),
		mid:   cell.T(words / 2),
	}

	for i, b := range []byte(builtins) {
		m.set(cell.T(i), int32(b))
	}

	return m
}

// Connect attaches the machine to its character-stream collaborators.
// The READ and PRINT primitives are undefined until this is called.
func (m *engine) Connect(in Reader, out Printer) {
	m.in = in
	m.out = out
}

// ResetHeap discards all cons cells. The REPL calls this before each
// top-level expression; symbols are unaffected.
func (m *engine) ResetHeap() {
	m.heap = 0
}

// Cons allocates a new pair and returns its handle.
func (m *engine) Cons(car, cdr cell.T) cell.T {
	if m.mid+m.heap < 2 {
		panic(Fatal("cons heap exhausted"))
	}

	m.heap -= 2
	m.set(m.heap, int32(car))
	m.set(m.heap+1, int32(cdr))

	return m.heap
}

// Car returns the car of the pair c, or Nil if c is an atom.
func (m *engine) Car(c cell.T) cell.T {
	if !cell.IsCons(c) {
		return cell.Nil
	}

	return cell.T(m.at(c))
}

// Cdr returns the cdr of the pair c, or Nil if c is an atom.
func (m *engine) Cdr(c cell.T) cell.T {
	if !cell.IsCons(c) {
		return cell.Nil
	}

	return cell.T(m.at(c + 1))
}

func (m *engine) caar(c cell.T) cell.T {
	return m.Car(m.Car(c))
}

func (m *engine) cadr(c cell.T) cell.T {
	return m.Car(m.Cdr(c))
}

func (m *engine) cdar(c cell.T) cell.T {
	return m.Cdr(m.Car(c))
}

func (m *engine) cadar(c cell.T) cell.T {
	return m.Car(m.Cdr(m.Car(c)))
}

func (m *engine) caddr(c cell.T) cell.T {
	return m.Car(m.Cdr(m.Cdr(c)))
}

func (m *engine) at(i cell.T) int32 {
	return m.words[m.mid+i]
}

func (m *engine) set(i cell.T, w int32) {
	m.words[m.mid+i] = w
}
