package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"measure/pkg/block"
	"measure/pkg/convert"
	"measure/pkg/stats"
	"measure/pkg/suite"
	"measure/pkg/table"
)

func newTable(headers []table.Header, rows ...[]string) *table.Table[string] {
	t := table.New[string](headers...)
	for _, cells := range rows {
		row := table.Row[string]{}
		for i, c := range cells {
			row.Set(headers[i], c)
		}
		t.Append(row)
	}
	return t
}

func sampleEntries() Tables {
	timed := []table.Header{table.Label, table.Mean}
	counted := []table.Header{table.Label, table.Iterations}
	return Tables{
		{Label: "first", Value: newTable(timed, []string{"A", "1.000 s"}, []string{"B", "2.500 s"})},
		{Label: "second", Value: newTable(timed, []string{"Long name", "3 ns"})},
		{Label: "third", Value: newTable(counted, []string{"C", "10"})},
	}
}

func TestText_Empty(t *testing.T) {
	out, err := Text()("S", nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestText_GroupsTablesWithSameColumns(t *testing.T) {
	out, err := Text()("S", sampleEntries())
	require.NoError(t, err)

	expected := []string{
		"== S ==========",
		"           Value ",
		"-- first ------",
		"A         1.000 s",
		"B         2.500 s",
		"-- second -----",
		"Long name    3 ns",
		"---------------",
		"  Iterations",
		"-- third ------",
		"C         10",
		"===============",
	}
	assert.Equal(t, strings.Join(expected, "\n"), out)
}

func TestText_SingleGroupHasOneHeaderLine(t *testing.T) {
	entries := sampleEntries()[:2]
	out, err := Text()("S", entries)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	headerLines := 0
	for _, l := range lines {
		if strings.Contains(l, "Value") {
			headerLines++
		}
	}
	assert.Equal(t, 1, headerLines)
	assert.Equal(t, "===============", lines[len(lines)-1])
	assert.NotContains(t, out, "---------------")
}

func TestText_UntitledStudyAndSeparator(t *testing.T) {
	entries := Tables{{Label: "", Value: newTable([]table.Header{table.Label, table.Mean}, []string{"A", "1.000 s"})}}
	out, err := Text(WithSeparator('~'))("S", entries)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "== S ====", lines[0])
	assert.Equal(t, "~~~~~~~~~", lines[2])
}

func TestText_TimeStudy(t *testing.T) {
	results := []block.Result[stats.Measure]{
		{Label: "A", Tag: block.Baseline, Result: stats.Single(1.0)},
		{Label: "B", Result: stats.Single(1.2)},
	}
	entries := Tables{{Label: "Time", Value: convert.TimeTable().Convert(results)}}

	out, err := Text()("Suite", entries)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, label := range []string{"Value", "Difference", "Variation", "Performance", "Error", "Iterations"} {
		assert.Contains(t, lines[1], label)
	}
	assert.True(t, strings.HasPrefix(lines[3], "A (*)"), lines[3])
	for _, cell := range []string{"1.200 s", "+0.200 s", "+20.00 %", "x0.83", "±0.00 %"} {
		assert.Contains(t, lines[4], cell)
	}
	for _, l := range lines {
		assert.Equal(t, runeCount(lines[0]), runeCount(l), l)
	}
}

func runeCount(s string) int {
	return len([]rune(s))
}

func TestText_Style(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	plain, err := Text()("S", sampleEntries())
	require.NoError(t, err)
	assert.NotContains(t, plain, "\x1b[")

	styled, err := Text(WithStyle(DefaultStyle()))("S", sampleEntries())
	require.NoError(t, err)
	assert.Contains(t, styled, "\x1b[")
}

func TestStyleFor(t *testing.T) {
	var sb strings.Builder
	assert.Nil(t, StyleFor(ColorNever, &sb))
	assert.Nil(t, StyleFor(ColorAuto, &sb))
	assert.NotNil(t, StyleFor(ColorAlways, &sb))
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown()("S", sampleEntries()[:1])
	require.NoError(t, err)

	expected := strings.Join([]string{
		"# S",
		"",
		"## first",
		"",
		"|  | Value |",
		"| :--- | ---: |",
		"| A | 1.000 s |",
		"| B | 2.500 s |",
	}, "\n")
	assert.Equal(t, expected, out)

	empty, err := Markdown()("S", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	entries := Tables{{Label: "x", Value: newTable([]table.Header{table.Label}, []string{"a|b"})}}
	out, err := Markdown()("S", entries)
	require.NoError(t, err)
	assert.Contains(t, out, `| a\|b |`)
}

func TestYAML(t *testing.T) {
	out, err := YAML("run-1")("S", sampleEntries())
	require.NoError(t, err)

	var doc struct {
		RunID   string `yaml:"run_id"`
		Suite   string `yaml:"suite"`
		Studies []struct {
			Label   string              `yaml:"label"`
			Columns []string            `yaml:"columns"`
			Rows    []map[string]string `yaml:"rows"`
		} `yaml:"studies"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, "S", doc.Suite)
	require.Len(t, doc.Studies, 3)
	assert.Equal(t, []string{"Label", "Iterations"}, doc.Studies[2].Columns)
	assert.Equal(t, map[string]string{"Label": "C", "Iterations": "10"}, doc.Studies[2].Rows[0])

	// Cells keep the column order rather than sorted keys.
	assert.Less(t, strings.Index(out, "Label: C"), strings.Index(out, "Iterations:"))
}

var _ suite.Renderer[*table.Table[string], string] = Text()

func TestPretty(t *testing.T) {
	r := Pretty(Markdown(), glamour.WithStandardStyle("notty"))

	out, err := r("S", sampleEntries()[:1])
	require.NoError(t, err)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "1.000 s")
	assert.NotContains(t, out, "| :--- |")

	empty, err := r("S", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
