package syntax

// Cursor is a forward-only view over a token sequence with one token of
// lookahead.  It never modifies the tokens it is given.
type Cursor struct {
	toks []*Token
	ndx  int
}

// NewCursor creates a cursor positioned on the first token of toks.
func NewCursor(toks []*Token) *Cursor {
	return &Cursor{toks: toks}
}

// Peek returns the kind of the next unconsumed token without consuming it.  It
// returns TOK_EOF if the stream is exhausted.
func (c *Cursor) Peek() int {
	if c.ndx >= len(c.toks) {
		return TOK_EOF
	}

	return c.toks[c.ndx].Kind
}

// PeekValue returns the attribute of the next unconsumed token.
func (c *Cursor) PeekValue() string {
	if c.ndx >= len(c.toks) {
		return ""
	}

	return c.toks[c.ndx].Value
}

// Advance consumes the current token and returns its kind.  Calling it on an
// exhausted stream returns TOK_EOF and does not move the cursor.
func (c *Cursor) Advance() int {
	if c.ndx >= len(c.toks) {
		return TOK_EOF
	}

	c.ndx++
	return c.toks[c.ndx-1].Kind
}

// LastValue returns the attribute of the most recently consumed token.  It is
// empty if no token has been consumed or if that token carries no attribute.
func (c *Cursor) LastValue() string {
	if c.ndx == 0 {
		return ""
	}

	return c.toks[c.ndx-1].Value
}

// Index returns the index of the next unconsumed token.
func (c *Cursor) Index() int {
	return c.ndx
}
