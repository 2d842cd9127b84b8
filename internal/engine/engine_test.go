// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mshook/sectorlisp/internal/cell"
	"github.com/mshook/sectorlisp/internal/printer"
	"github.com/mshook/sectorlisp/internal/reader"
	"github.com/mshook/sectorlisp/internal/ui"
)

// run feeds a program through the full machine and returns everything
// it printed.
func run(t *testing.T, program string) string {
	t.Helper()

	m := New(Words)
	r := reader.New(m, ui.Text(program))

	var b bytes.Buffer
	p := printer.New(m, &b)

	m.Connect(r, p)

	for {
		m.ResetHeap()

		c, err := r.Expression()
		if err != nil {
			break
		}

		p.Print(m.Eval(c, cell.Nil))
		p.Newline()
	}

	return b.String()
}

// parse reads a single expression into m.
func parse(t *testing.T, m *T, s string) cell.T {
	t.Helper()

	c, err := reader.New(m, ui.Text(s)).Expression()
	if err != nil {
		t.Fatalf("Reading %q failed: %v", s, err)
	}

	return c
}

func TestScenarios(t *testing.T) {
	for _, s := range []struct {
		program string
		want    string
	}{
		{"(QUOTE A)", "A"},
		{"(CAR (QUOTE (A B C)))", "A"},
		{"(CDR (QUOTE (A B C)))", "(B C)"},
		{"(CONS (QUOTE A) (QUOTE (B C)))", "(A B C)"},
		{"(EQ (QUOTE A) (QUOTE A))", "T"},
		{"(EQ (QUOTE A) (QUOTE B))", "NIL"},
		{"(ATOM (QUOTE A))", "T"},
		{"(ATOM (QUOTE (A)))", "NIL"},
		{"(COND ((EQ (QUOTE A) (QUOTE A)) (QUOTE YES)) ((QUOTE T) (QUOTE NO)))", "YES"},
		{"((LAMBDA (X) (CONS X X)) (QUOTE A))", "(A ∙ A)"},
		{
			"((LAMBDA (FF X) (FF X)) " +
				"(QUOTE (LAMBDA (X) (COND ((ATOM X) X) ((QUOTE T) (FF (CAR X)))))) " +
				"(QUOTE ((A) B C)))",
			"A",
		},
	} {
		if got, want := run(t, s.program), s.want+"\n"; got != want {
			t.Errorf("%s evaluated to %q, want %q", s.program, got, want)
		}
	}
}

func TestRead(t *testing.T) {
	got := run(t, "(CONS (READ) (QUOTE (B)))\nA")
	if got != "(A B)\n" {
		t.Errorf("READ consumed the wrong expression: %q", got)
	}
}

func TestPrint(t *testing.T) {
	got := run(t, "(PRINT (QUOTE HI))")
	if got != "HINIL\n" {
		t.Errorf("PRINT with one argument produced %q", got)
	}

	got = run(t, "(PRINT)")
	if got != "\nNIL\n" {
		t.Errorf("PRINT with no arguments produced %q", got)
	}
}

func TestEvlisOrder(t *testing.T) {
	got := run(t, "((LAMBDA (X Y) (QUOTE DONE)) (PRINT (QUOTE A)) (PRINT (QUOTE B)))")
	if got != "ABDONE\n" {
		t.Errorf("Arguments were not evaluated left to right: %q", got)
	}
}

func TestInternIdentity(t *testing.T) {
	m := New(Words)

	for _, s := range []string{"FOO", "F", "FO", "FOOD", "BAR"} {
		if m.Intern(s) != m.Intern(s) {
			t.Errorf("Interning %q twice produced different handles", s)
		}
	}

	seen := map[cell.T]string{}
	for _, s := range []string{"FOO", "F", "FO", "FOOD", "BAR", "NIL", "EQ"} {
		c := m.Intern(s)
		if prev, ok := seen[c]; ok {
			t.Errorf("%q and %q share handle %d", prev, s, c)
		}
		seen[c] = s
	}
}

func TestBuiltinHandles(t *testing.T) {
	m := New(Words)

	for _, s := range []struct {
		name   string
		handle cell.T
	}{
		{"NIL", cell.Nil},
		{"T", cell.True},
		{"QUOTE", cell.Quote},
		{"COND", cell.Cond},
		{"READ", cell.Read},
		{"PRINT", cell.Print},
		{"ATOM", cell.Atom},
		{"CAR", cell.Car},
		{"CDR", cell.Cdr},
		{"CONS", cell.Cons},
		{"EQ", cell.Eq},
	} {
		if got := m.Intern(s.name); got != s.handle {
			t.Errorf("Intern(%q) = %d, want %d", s.name, got, s.handle)
		}

		if got := m.Name(s.handle); got != s.name {
			t.Errorf("Name(%d) = %q, want %q", s.handle, got, s.name)
		}
	}
}

func TestConsLaws(t *testing.T) {
	m := New(Words)

	a, b := m.Intern("A"), m.Intern("B")

	c := m.Cons(a, b)
	if !cell.IsCons(c) {
		t.Fatalf("Cons returned an atom handle %d", c)
	}

	if m.Car(c) != a || m.Cdr(c) != b {
		t.Errorf("car/cdr of cons(%d, %d) = %d, %d", a, b, m.Car(c), m.Cdr(c))
	}

	if m.Car(a) != cell.Nil || m.Cdr(a) != cell.Nil {
		t.Errorf("car/cdr of an atom should be NIL")
	}
}

func TestEvalAtomIsAssoc(t *testing.T) {
	m := New(Words)

	x, v := m.Intern("X"), m.Intern("V")
	env := m.Cons(m.Cons(x, v), cell.Nil)

	if m.Eval(x, env) != m.assoc(x, env) {
		t.Errorf("Eval of an atom differs from assoc")
	}

	if m.Eval(x, env) != v {
		t.Errorf("X evaluated to %d, want %d", m.Eval(x, env), v)
	}

	if m.Eval(m.Intern("Y"), env) != cell.Nil {
		t.Errorf("An unbound atom should evaluate to NIL")
	}

	if m.Eval(x, cell.Nil) != cell.Nil {
		t.Errorf("An atom in the empty environment should evaluate to NIL")
	}
}

func TestQuoteInhibitsEvaluation(t *testing.T) {
	m := New(Words)

	e := parse(t, m, "(X Y Z)")
	quoted := m.Cons(cell.Quote, m.Cons(e, cell.Nil))

	if m.Eval(quoted, cell.Nil) != e {
		t.Errorf("QUOTE did not return its argument untouched")
	}
}

func TestCollectCompacts(t *testing.T) {
	m := New(Words)

	e := parse(t, m, "((LAMBDA (X) (CONS X X)) (QUOTE A))")

	pre := m.heap
	r := m.Eval(e, cell.Nil)

	// The result is a single fresh cell, so exactly one cell
	// survives collection, slid down against the pre-mark.
	if m.heap != pre-2 {
		t.Errorf("Heap cursor is %d after collection, want %d", m.heap, pre-2)
	}

	if r != pre-2 {
		t.Errorf("Result handle is %d, want %d", r, pre-2)
	}

	a := m.Intern("A")
	if m.Car(r) != a || m.Cdr(r) != a {
		t.Errorf("Collection corrupted the result: (%d ∙ %d)", m.Car(r), m.Cdr(r))
	}
}

func TestCollectLeavesOlderCellsAlone(t *testing.T) {
	m := New(Words)

	e := parse(t, m, "(CDR (QUOTE (A B C)))")

	pre := m.heap
	r := m.Eval(e, cell.Nil)

	// The result is shared structure read before evaluation began;
	// nothing is copied and every transient is reclaimed.
	if m.heap != pre {
		t.Errorf("Heap cursor is %d after collection, want %d", m.heap, pre)
	}

	var b bytes.Buffer
	printer.New(m, &b).Print(r)

	if b.String() != "(B C)" {
		t.Errorf("Result prints as %q, want %q", b.String(), "(B C)")
	}
}

func TestGCPreservesPrintedForm(t *testing.T) {
	// Equivalent programs, growing transient garbage: the printed
	// result never changes.
	base := "(CAR (QUOTE (A B C)))"
	wrapped := "(CAR (CONS (CAR (QUOTE (A B C))) (QUOTE (X Y Z))))"

	if got, want := run(t, wrapped), run(t, base); got != want {
		t.Errorf("Transient allocations changed the result: %q vs %q", got, want)
	}
}

func TestHeapExhaustion(t *testing.T) {
	defer func() {
		if _, ok := recover().(Fatal); !ok {
			t.Errorf("Exhausting the heap did not panic with a Fatal")
		}
	}()

	m := New(256)
	for i := 0; i < 256; i++ {
		m.Cons(cell.Nil, cell.Nil)
	}
}

func TestSymbolExhaustion(t *testing.T) {
	defer func() {
		if _, ok := recover().(Fatal); !ok {
			t.Errorf("Exhausting the symbol region did not panic with a Fatal")
		}
	}()

	m := New(256)
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		m.Intern(strings.Repeat(string(r), 3))
	}
}

func TestApplyOfNilTerminates(t *testing.T) {
	if got := run(t, "(NIL (QUOTE A))"); got != "NIL\n" {
		t.Errorf("Applying NIL produced %q, want NIL", got)
	}
}

func TestCondFallsThroughToNil(t *testing.T) {
	if got := run(t, "(COND ((EQ (QUOTE A) (QUOTE B)) (QUOTE YES)))"); got != "NIL\n" {
		t.Errorf("COND with no true clause produced %q, want NIL", got)
	}
}
