package schedule

import "fmt"

// Triple is one trajectory entry.
type Triple struct {
	X, Y, Zoom float64
}

// Table is an immutable ordered trajectory.
type Table struct {
	triples []Triple
}

// NewTable builds a table from a copy of triples.
func NewTable(triples []Triple) (*Table, error) {
	if len(triples) == 0 {
		return nil, fmt.Errorf("%w: no triples", ErrEmpty)
	}
	return &Table{triples: append([]Triple(nil), triples...)}, nil
}

// Len returns the number of triples.
func (t *Table) Len() int {
	return len(t.triples)
}

// At returns triple i.
func (t *Table) At(i int) Triple {
	return t.triples[i]
}

// Triples returns a copy of all entries.
func (t *Table) Triples() []Triple {
	return append([]Triple(nil), t.triples...)
}

// Cursor returns a cursor positioned before the first triple.
func (t *Table) Cursor() *Cursor {
	return &Cursor{table: t}
}

// Cursor walks a table once. After the last triple it keeps returning that
// triple and reports exhaustion; it never wraps.
type Cursor struct {
	table *Table
	next  int
}

// Next returns the triple for the next frame. exhausted is true when the
// table had no more entries and the last one was repeated.
func (c *Cursor) Next() (t Triple, exhausted bool) {
	n := c.table.Len()
	if c.next >= n {
		return c.table.triples[n-1], true
	}
	t = c.table.triples[c.next]
	c.next++
	return t, false
}

// Index returns the index of the triple the next call to Next returns,
// saturated at the last entry.
func (c *Cursor) Index() int {
	return min(c.next, c.table.Len()-1)
}
