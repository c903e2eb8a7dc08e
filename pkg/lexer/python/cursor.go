package python

// cursor walks the code byte by byte. Offsets are relative to the code body.
type cursor struct {
	src string
	off int
}

// mark is a saved cursor position used to build spans.
type mark int

func (c *cursor) eof() bool { return c.off >= len(c.src) }

// peek returns the current byte, or 0 at the end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}

	return c.src[c.off]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.src) {
		return 0
	}

	return c.src[c.off+n]
}

// bump advances one byte and returns it.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}

	b := c.src[c.off]
	c.off++

	return b
}

// eat consumes b if it is the current byte.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.src[c.off] == b {
		c.off++

		return true
	}

	return false
}

func (c *cursor) mark() mark { return mark(c.off) }

func (c *cursor) reset(m mark) { c.off = int(m) }

// hasPrefix reports whether the remaining input starts with s.
func (c *cursor) hasPrefix(s string) bool {
	return len(c.src)-c.off >= len(s) && c.src[c.off:c.off+len(s)] == s
}
