// Released under an MIT license. See LICENSE.

package engine

import "github.com/mshook/sectorlisp/internal/cell"

// collect compacts the heap after one arm of Eval. pre is the heap
// cursor saved at entry; everything allocated past it is transient
// unless the result r reaches it.
//
// The result is first copied: rescue rebuilds, above the current
// cursor, every cell of r that was allocated during this call. The
// copies are then slid down, word by word from the top, so that the
// live data abuts pre, and the cursor is reset to the end of the
// slid region. Handles move uniformly, so rescue pre-adjusts each
// copied handle by pre-post and the slide makes the adjustment true.
func (m *engine) collect(r, pre cell.T) cell.T {
	post := m.heap

	r = m.rescue(r, pre, pre-post)

	top, from := pre, post
	for from > m.heap {
		top--
		from--
		m.set(top, m.at(from))
	}
	m.heap = top

	return r
}

// rescue copies every cell of c allocated past mark, leaving atoms
// and older cells alone.
func (m *engine) rescue(c, mark, offset cell.T) cell.T {
	if c < mark {
		return m.Cons(m.rescue(m.Car(c), mark, offset),
			m.rescue(m.Cdr(c), mark, offset)) + offset
	}

	return c
}
