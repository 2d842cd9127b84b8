// Released under an MIT license. See LICENSE.

package engine

import "github.com/mshook/sectorlisp/internal/cell"

// Eval evaluates the expression e in the environment a.
//
// Atoms evaluate to their binding. QUOTE returns its argument
// untouched. COND and function application can allocate, so those
// arms run inside the per-eval collection protocol: the heap cursor
// at entry is the pre-mark, and collect reclaims every cell allocated
// past it that the result does not reach.
func (m *engine) Eval(e, a cell.T) cell.T {
	if cell.IsAtom(e) {
		return m.assoc(e, a)
	}

	if m.Car(e) == cell.Quote {
		return m.cadr(e)
	}

	pre := m.heap

	var r cell.T
	if m.Car(e) == cell.Cond {
		r = m.evcon(m.Cdr(e), a)
	} else {
		r = m.apply(m.Car(e), m.evlis(m.Cdr(e), a), a)
	}

	return m.collect(r, pre)
}

// apply applies f to the already-evaluated arguments x.
//
// A cons in function position is used as (LAMBDA params body). The
// head symbol is never inspected; only the shape matters, which is
// what lets a meta-circular evaluator pass its own function values
// around. An atom above Eq is a user name: evaluate it and try
// again. Anything else is a primitive, dispatched by handle. An atom
// that is none of these (NIL in call position, say) yields Nil.
func (m *engine) apply(f, x, a cell.T) cell.T {
	if cell.IsCons(f) {
		return m.Eval(m.caddr(f), m.pairlis(m.cadr(f), x, a))
	}

	if f > cell.Eq {
		return m.apply(m.Eval(f, a), x, a)
	}

	switch f {
	case cell.Eq:
		if m.Car(x) == m.cadr(x) {
			return cell.True
		}
		return cell.Nil
	case cell.Cons:
		return m.Cons(m.Car(x), m.cadr(x))
	case cell.Atom:
		if cell.IsCons(m.Car(x)) {
			return cell.Nil
		}
		return cell.True
	case cell.Car:
		return m.Car(m.Car(x))
	case cell.Cdr:
		return m.Cdr(m.Car(x))
	case cell.Read:
		c, err := m.in.Expression()
		if err != nil {
			panic(err)
		}
		return c
	case cell.Print:
		if x != cell.Nil {
			m.out.Print(m.Car(x))
		} else {
			m.out.Newline()
		}
		return cell.Nil
	}

	return cell.Nil
}

// assoc returns the value bound to the atom k in the association list
// a, or Nil if k is unbound.
func (m *engine) assoc(k, a cell.T) cell.T {
	if a == cell.Nil {
		return cell.Nil
	}

	if m.caar(a) == k {
		return m.cdar(a)
	}

	return m.assoc(k, m.Cdr(a))
}

// evlis evaluates each element of the list l, left to right, and
// returns the list of results. The order is observable through READ
// and PRINT and must not change.
func (m *engine) evlis(l, a cell.T) cell.T {
	if l == cell.Nil {
		return cell.Nil
	}

	e := m.Eval(m.Car(l), a)

	return m.Cons(e, m.evlis(m.Cdr(l), a))
}

// pairlis prepends a binding (key . value) for each key to the
// environment a. Keys beyond the end of values bind to Nil.
func (m *engine) pairlis(keys, values, a cell.T) cell.T {
	if keys == cell.Nil {
		return a
	}

	return m.Cons(m.Cons(m.Car(keys), m.Car(values)),
		m.pairlis(m.Cdr(keys), m.Cdr(values), a))
}

// evcon evaluates the clauses of a COND: the body of the first clause
// whose test evaluates non-Nil. Falling off the end yields Nil;
// programs are still expected to finish with a (QUOTE T) clause.
func (m *engine) evcon(cl, a cell.T) cell.T {
	if cl == cell.Nil {
		return cell.Nil
	}

	if m.Eval(m.caar(cl), a) != cell.Nil {
		return m.Eval(m.cadar(cl), a)
	}

	return m.evcon(m.Cdr(cl), a)
}
