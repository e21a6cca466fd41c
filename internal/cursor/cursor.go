// Package cursor provides a forward-only, one-step-backtrackable view
// over the argument words of a single process invocation.
package cursor

import "errors"

// ErrOutOfData signals that a read was attempted past the last word.
// Its text is part of the parser's public diagnostic surface.
var ErrOutOfData = errors.New("out of data")

// Cursor walks a list of command words from left to right. The word at
// index 0 is the invoked program's own name and is never read: a fresh
// cursor starts at index 1. The only lookahead mechanism is Unget, which
// rewinds exactly one position after a speculative Get.
type Cursor struct {
	words []string
	pos   int
}

// New returns a cursor over words, positioned on the first word after
// the program name.
func New(words []string) *Cursor {
	return &Cursor{words: words, pos: 1}
}

// Available reports whether at least one unread word remains.
func (c *Cursor) Available() bool {
	return c.pos < len(c.words)
}

// Get returns the next word and advances the cursor,
// or ErrOutOfData if no word remains.
func (c *Cursor) Get() (string, error) {
	if !c.Available() {
		return "", ErrOutOfData
	}

	word := c.words[c.pos]
	c.pos++

	return word, nil
}

// Unget rewinds the cursor by one word. It is only meant to be called
// right after a speculative Get, and never rewinds past the first
// readable word.
func (c *Cursor) Unget() {
	if c.pos > 1 {
		c.pos--
	}
}
