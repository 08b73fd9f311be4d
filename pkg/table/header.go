// Package table holds tabulated results: ordered columns identified by
// Header and ordered, sparse rows.
package table

// Header identifies a column. Identity is the ID; Label is only displayed.
type Header struct {
	ID    string
	Label string
}

// NewHeader returns a Header whose label defaults to its id.
func NewHeader(id string) Header {
	return Header{ID: id, Label: id}
}

// NewLabeledHeader returns a Header displayed as label.
func NewLabeledHeader(id, label string) Header {
	return Header{ID: id, Label: label}
}

// Equal reports whether h and other identify the same column.
func (h Header) Equal(other Header) bool {
	return h.ID == other.ID
}

// Predefined columns of time measurement reports.
var (
	Label         = NewLabeledHeader("Label", "")
	Best          = NewLabeledHeader("Best", "")
	Mean          = NewLabeledHeader("Mean", "Value")
	Delta         = NewLabeledHeader("Delta", "Difference")
	Variation     = NewHeader("Variation")
	Performance   = NewHeader("Performance")
	StandardError = NewLabeledHeader("StandardError", "Error")
	Iterations    = NewHeader("Iterations")
)

// SameColumns reports whether a and b hold the same headers in the same order.
func SameColumns(a, b []Header) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
