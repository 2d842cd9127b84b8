// Released under an MIT license. See LICENSE.

// Package reader turns characters into objects.
//
// The tokenizer sees the input through a one-character lookahead, so
// it can stop a symbol at the character before a delimiter without
// consuming the delimiter's successor. A delimiter is any character
// no greater than space, or either parenthesis. The parser is a
// recursive descent over tokens and accepts atoms and proper lists.
package reader

import "github.com/mshook/sectorlisp/internal/cell"

// Source supplies raw characters, one per call. It reports the end
// of the stream with an error.
type Source interface {
	ReadChar() (byte, error)
}

// Heap is the interface for the object memory the reader builds into.
type Heap interface {
	Cons(car, cdr cell.T) cell.T
	Intern(name string) cell.T
}

// T (reader) scans one source and allocates into one heap.
type T struct {
	heap Heap
	src  Source

	ahead   byte
	scratch []byte
}

type reader = T

// New creates a reader.
func New(heap Heap, src Source) *T {
	return &reader{heap: heap, src: src}
}

// Expression reads the next complete expression from the source.
func (r *reader) Expression() (cell.T, error) {
	delim, err := r.token()
	if err != nil {
		return cell.Nil, err
	}

	return r.object(delim)
}

// next returns the previous lookahead character and replaces it with
// a freshly read one. The caller sees a stream delayed by one
// character; r.ahead is always the character after the one returned.
func (r *reader) next() (byte, error) {
	c, err := r.src.ReadChar()
	if err != nil {
		return 0, err
	}

	t := r.ahead
	r.ahead = c

	return t, nil
}

// token scans the next token into the scratch buffer and returns the
// token's last character: the parenthesis itself for a parenthesis
// token, otherwise the final character of the symbol (the delimiter
// after a symbol stays in the lookahead). A single loop folds whitespace skipping
// into symbol accumulation: keep going while the current character
// is whitespace or both it and the lookahead are above ')'.
func (r *reader) token() (byte, error) {
	r.scratch = r.scratch[:0]

	for {
		c, err := r.next()
		if err != nil {
			return 0, err
		}

		if c > ' ' {
			r.scratch = append(r.scratch, c)
		}

		if c <= ' ' || (c > ')' && r.ahead > ')') {
			continue
		}

		return c, nil
	}
}

func (r *reader) object(delim byte) (cell.T, error) {
	if delim == '(' {
		return r.list()
	}

	return r.heap.Intern(string(r.scratch)), nil
}

func (r *reader) list() (cell.T, error) {
	delim, err := r.token()
	if err != nil {
		return cell.Nil, err
	}

	if delim == ')' {
		return cell.Nil, nil
	}

	car, err := r.object(delim)
	if err != nil {
		return cell.Nil, err
	}

	cdr, err := r.list()
	if err != nil {
		return cell.Nil, err
	}

	return r.heap.Cons(car, cdr), nil
}
