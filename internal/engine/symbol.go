// Released under an MIT license. See LICENSE.

package engine

import "github.com/mshook/sectorlisp/internal/cell"

// builtins is the fixed prefix of the symbol region. The offset of
// each name is its atom handle, so the order and spelling here are
// load-bearing: see the handle constants in the cell package.
const builtins = "NIL\x00T\x00QUOTE\x00COND\x00READ\x00PRINT\x00ATOM\x00CAR\x00CDR\x00CONS\x00EQ\x00"

// Intern returns the atom whose name is the given token, adding the
// name to the symbol region if it has not been seen before. Equal
// names always yield equal handles.
//
// The scan is a linear walk over the region, name by name. At the
// intended scale (hundreds of symbols) this beats maintaining an
// index into a region that must also be readable a character at a
// time by the printer.
func (m *engine) Intern(name string) cell.T {
	i := cell.T(0)

	for int(m.mid+i) < len(m.words) && m.at(i) != 0 {
		start := i

		j := 0
		for j < len(name) && m.at(i) == int32(name[j]) {
			i++
			j++
		}

		if j == len(name) && m.at(i) == 0 {
			return start
		}

		for m.at(i) != 0 {
			i++
		}
		i++
	}

	if int(m.mid+i)+len(name)+1 > len(m.words) {
		panic(Fatal("symbol region exhausted"))
	}

	start := i
	for j := 0; j < len(name); j++ {
		m.set(i, int32(name[j]))
		i++
	}
	m.set(i, 0)

	return start
}

// Name returns the characters of the atom c.
func (m *engine) Name(c cell.T) string {
	b := make([]byte, 0, 8)

	for i := c; m.at(i) != 0; i++ {
		b = append(b, byte(m.at(i)))
	}

	return string(b)
}
