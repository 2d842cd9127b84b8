// Released under an MIT license. See LICENSE.

// Package ui provides character sources for the slisp reader.
//
// The reader asks for one character at a time; the sources here take
// care of where lines come from. Every source delivers a newline
// after its last character so that a final expression is always
// delimited before the end of the stream is reported.
package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Terminal returns an interactive source backed by a line editor
// with history. Input is translated to upper case, the way the
// historical machines this interpreter is faithful to did.
func Terminal(prompt string) *Editor {
	cli := liner.NewLiner()
	cli.SetCtrlCAborts(true)

	return &Editor{cli: cli, prompt: prompt}
}

// Stream returns a source that delivers the bytes of r unchanged.
func Stream(r io.Reader) *Chars {
	return &Chars{r: bufio.NewReader(r)}
}

// Text returns a source that delivers the bytes of s.
func Text(s string) *Chars {
	return Stream(strings.NewReader(s))
}

// Editor is an interactive source. It must be closed to restore the
// terminal state.
type Editor struct {
	cli    *liner.State
	prompt string

	line []byte
	pos  int
}

// ReadChar returns the next character of the session, prompting for
// a new line whenever the current one is spent. An aborted line
// (Ctrl-C) is discarded and prompting resumes.
func (e *Editor) ReadChar() (byte, error) {
	for e.pos >= len(e.line) {
		line, err := e.cli.Prompt(e.prompt)

		switch err {
		case nil:
			if line != "" {
				e.cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			continue
		default:
			return 0, io.EOF
		}

		e.line = append(e.line[:0], strings.ToUpper(line)...)
		e.line = append(e.line, '\n')
		e.pos = 0
	}

	c := e.line[e.pos]
	e.pos++

	return c, nil
}

// Close restores the terminal.
func (e *Editor) Close() error {
	return e.cli.Close()
}

// Chars is a non-interactive source.
type Chars struct {
	r    *bufio.Reader
	done bool
}

// ReadChar returns the next byte of the stream. The first read past
// the end yields a single newline; after that the end of the stream
// is reported.
func (c *Chars) ReadChar() (byte, error) {
	if c.done {
		return 0, io.EOF
	}

	b, err := c.r.ReadByte()
	if err != nil {
		c.done = true
		return '\n', nil
	}

	return b, nil
}
