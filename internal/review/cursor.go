package review

// Cursor is the reviewer's position in a collection. An index equal to the
// number of pairs means the review is complete; Retreat brings it back.
type Cursor struct {
	pairs []Pair
	index int
}

// NewCursor returns a cursor positioned on the first pair of c.
func NewCursor(c *Collection) *Cursor {
	return &Cursor{pairs: c.Pairs}
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the number of pairs the cursor ranges over.
func (c *Cursor) Len() int {
	return len(c.pairs)
}

// InRange reports whether the cursor points at a pair.
func (c *Cursor) InRange() bool {
	return c.index >= 0 && c.index < len(c.pairs)
}

// Current returns the pair under the cursor, or ErrEndOfReview.
func (c *Cursor) Current() (Pair, error) {
	if !c.InRange() {
		return Pair{}, ErrEndOfReview
	}
	return c.pairs[c.index], nil
}

// Advance moves to the next pair. When there is none the index is pinned at
// Len() and ok is false.
func (c *Cursor) Advance() (index int, ok bool) {
	if c.index+1 < len(c.pairs) {
		c.index++
		return c.index, true
	}
	c.index = len(c.pairs)
	return c.index, false
}

// Retreat moves to the previous pair, stopping at 0.
func (c *Cursor) Retreat() int {
	if c.index > 0 {
		c.index--
	}
	return c.index
}
