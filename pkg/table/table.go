package table

// Row maps header ids to cell values. Rows may leave any column undefined.
type Row[E any] map[string]E

// Set stores value under h.
func (r Row[E]) Set(h Header, value E) {
	r[h.ID] = value
}

// Get returns the value under h, or def when the row does not define h.
func (r Row[E]) Get(h Header, def E) E {
	if v, ok := r[h.ID]; ok {
		return v
	}
	return def
}

// Table is an ordered set of columns and an ordered list of sparse rows.
type Table[E any] struct {
	headers []Header
	rows    []Row[E]
}

// New returns an empty table with the given columns. Headers repeating an
// earlier id are dropped.
func New[E any](headers ...Header) *Table[E] {
	unique := make([]Header, 0, len(headers))
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		unique = append(unique, h)
	}
	return &Table[E]{headers: unique}
}

// Headers returns the columns in declaration order.
func (t *Table[E]) Headers() []Header {
	out := make([]Header, len(t.headers))
	copy(out, t.headers)
	return out
}

// Len returns the number of rows.
func (t *Table[E]) Len() int { return len(t.rows) }

// Append adds a row after the existing ones.
func (t *Table[E]) Append(row Row[E]) {
	t.rows = append(t.rows, row)
}

// Row returns the row at index i.
func (t *Table[E]) Row(i int) Row[E] {
	return t.rows[i]
}

// Rows returns all rows in append order.
func (t *Table[E]) Rows() []Row[E] {
	return t.rows
}

// Get returns the cell at row i and column h, or def if undefined.
func (t *Table[E]) Get(i int, h Header, def E) E {
	return t.rows[i].Get(h, def)
}

// Set stores a cell at row i and column h.
func (t *Table[E]) Set(i int, h Header, value E) {
	if t.rows[i] == nil {
		t.rows[i] = Row[E]{}
	}
	t.rows[i].Set(h, value)
}

// Column returns the cells of column h for every row, using def for rows
// that leave it undefined.
func (t *Table[E]) Column(h Header, def E) []E {
	out := make([]E, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Get(h, def)
	}
	return out
}

// SameColumns reports whether t and other are column compatible.
func (t *Table[E]) SameColumns(other *Table[E]) bool {
	return SameColumns(t.headers, other.headers)
}
