package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"measure/pkg/suite"
	"measure/pkg/table"
)

// Markdown returns a renderer producing one GitHub flavored markdown table
// per study, under a heading naming the suite.
func Markdown() suite.Renderer[*table.Table[string], string] {
	return func(name string, entries Tables) (string, error) {
		if len(entries) == 0 {
			return "", nil
		}

		var b strings.Builder
		b.WriteString("# " + name + "\n")
		for _, e := range entries {
			b.WriteString("\n")
			if e.Label != "" {
				b.WriteString("## " + e.Label + "\n\n")
			}
			writeMarkdownTable(&b, e.Value)
		}
		return strings.TrimSuffix(b.String(), "\n"), nil
	}
}

func writeMarkdownTable(b *strings.Builder, t *table.Table[string]) {
	headers := t.Headers()
	if len(headers) == 0 {
		return
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = escapeCell(h.Label)
	}
	writeMarkdownRow(b, cells)

	for i, h := range headers {
		switch {
		case h.Equal(table.Label):
			cells[i] = ":---"
		case h.Equal(table.Best):
			cells[i] = ":---:"
		default:
			cells[i] = "---:"
		}
	}
	writeMarkdownRow(b, cells)

	for _, row := range t.Rows() {
		for i, h := range headers {
			cells[i] = escapeCell(row.Get(h, ""))
		}
		writeMarkdownRow(b, cells)
	}
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Pretty decorates a markdown renderer so that its output is formatted for
// terminals by glamour. Without options, the style follows the terminal
// background.
func Pretty(r suite.Renderer[*table.Table[string], string], opts ...glamour.TermRendererOption) suite.Renderer[*table.Table[string], string] {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	opts = append(opts, glamour.WithWordWrap(0))
	return func(name string, entries Tables) (string, error) {
		md, err := r(name, entries)
		if err != nil || md == "" {
			return md, err
		}
		term, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		out, err := term.Render(md)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return strings.TrimRight(out, "\n"), nil
	}
}
