// Package render turns the tables collected by a suite into reports.
package render

import (
	"strings"

	"measure/pkg/format"
	"measure/pkg/suite"
	"measure/pkg/table"
)

// Tables is the input of the table renderers: one table per study.
type Tables = []suite.Entry[*table.Table[string]]

const columnSeparator = " "

// Option configures the text renderer.
type Option func(*options)

type options struct {
	separator rune
	style     *Style
}

// WithSeparator sets the character of the rule introducing each study.
// It defaults to '-'.
func WithSeparator(r rune) Option {
	return func(o *options) { o.separator = r }
}

// WithStyle decorates the report with st. Styling is applied after
// alignment, so it never changes the layout.
func WithStyle(st *Style) Option {
	return func(o *options) { o.style = st }
}

// Text returns the default renderer producing an aligned text report.
//
// Consecutive studies whose tables have the same columns share a section
// with a single header line. Sections are separated by a '-' rule and the
// report is closed by a '=' rule.
func Text(opts ...Option) suite.Renderer[*table.Table[string], string] {
	o := options{separator: '-'}
	for _, opt := range opts {
		opt(&o)
	}
	return func(name string, entries Tables) (string, error) {
		return o.render(name, entries), nil
	}
}

func (o options) render(name string, entries Tables) string {
	if len(entries) == 0 {
		return ""
	}

	maxLength := 0
	for _, e := range entries {
		maxLength = max(maxLength, requiredLength(e.Value))
	}

	var lines []string
	groups := groupSameColumns(entries)
	for i, group := range groups {
		widths := map[string]int{}
		for _, e := range group {
			for id, w := range columnWidths(e.Value) {
				widths[id] = max(widths[id], w)
			}
		}

		if i == 0 {
			lines = append(lines, o.style.title(format.Ruler(" "+name+" ", 2, '=', maxLength)))
		}

		headers := group[0].Value.Headers()
		cells := make([]string, len(headers))
		for j, h := range headers {
			label := h.Label
			if h.Equal(table.Label) || h.Equal(table.Best) {
				label = ""
			}
			cells[j] = format.Align(label, widths[h.ID], format.Center)
		}
		lines = append(lines, o.style.header(strings.Join(cells, columnSeparator)))

		for _, e := range group {
			if e.Label == "" {
				lines = append(lines, o.style.rule(format.Ruler("", 0, o.separator, maxLength)))
			} else {
				lines = append(lines, o.style.rule(format.Ruler(" "+e.Label+" ", 2, o.separator, maxLength)))
			}

			for _, row := range e.Value.Rows() {
				for j, h := range headers {
					alignment := format.Right
					if h.Equal(table.Label) {
						alignment = format.Left
					}
					cells[j] = format.Align(row.Get(h, ""), widths[h.ID], alignment)
				}
				line := strings.Join(cells, columnSeparator)
				if row.Get(table.Best, "") != "" {
					line = o.style.best(line)
				}
				lines = append(lines, line)
			}
		}

		if i < len(groups)-1 {
			lines = append(lines, o.style.rule(format.Ruler("", 0, '-', maxLength)))
		} else {
			lines = append(lines, o.style.rule(format.Ruler("", 0, '=', maxLength)))
		}
	}
	return strings.Join(lines, "\n")
}

// groupSameColumns splits entries into maximal runs of tables sharing their
// columns, in order.
func groupSameColumns(entries Tables) []Tables {
	var groups []Tables
	var run Tables
	for _, e := range entries {
		if len(run) > 0 && !run[len(run)-1].Value.SameColumns(e.Value) {
			groups = append(groups, run)
			run = nil
		}
		run = append(run, e)
	}
	if len(run) > 0 {
		groups = append(groups, run)
	}
	return groups
}

// columnWidths returns, per header id, the widest of the header label and
// the cells of the column.
func columnWidths(t *table.Table[string]) map[string]int {
	widths := make(map[string]int, len(t.Headers()))
	for _, h := range t.Headers() {
		w := format.Width(h.Label)
		for _, cell := range t.Column(h, "") {
			w = max(w, format.Width(cell))
		}
		widths[h.ID] = w
	}
	return widths
}

func requiredLength(t *table.Table[string]) int {
	widths := columnWidths(t)
	if len(widths) == 0 {
		return 0
	}
	total := (len(widths) - 1) * format.Width(columnSeparator)
	for _, w := range widths {
		total += w
	}
	return total
}
