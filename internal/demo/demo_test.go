package demo

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measure/pkg/bench"
	"measure/pkg/block"
	"measure/pkg/convert"
	"measure/pkg/table"
)

func testOptions() Options {
	return Options{
		Bounds:          block.Iterations(1, 3),
		ArraySize:       100,
		ComparisonSizes: []int{10, 100},
	}
}

func TestBubbleSort(t *testing.T) {
	rng := &lcrng{}
	values := rng.ints(50)
	less := func(a, b int) bool { return a < b }

	sorted := bubbleSort(values, less)
	assert.True(t, sort.IntsAreSorted(sorted))
	assert.Equal(t, standardSort(values, less), sorted)
	assert.Len(t, values, 50, "input is left untouched")
}

func TestLCRNG_Reproducible(t *testing.T) {
	a, b := &lcrng{seed: 42}, &lcrng{seed: 42}
	assert.Equal(t, a.ints(10), b.ints(10))
	for _, v := range (&lcrng{}).ints(100) {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 1_000_000)
	}
}

func TestCountComparisons(t *testing.T) {
	b := comparisonsPerSize(countComparisons("Bubble sort", bubbleSort))
	rng := &lcrng{}

	out, err := b.Call([][]int{rng.ints(10), rng.ints(100)})
	require.NoError(t, err)
	assert.Equal(t, []SizeCount{{Size: 10, Count: 45}, {Size: 100, Count: 4950}}, out)
	assert.Equal(t, "Bubble sort", b.Label())
}

func TestComparisonTable(t *testing.T) {
	results := []block.Result[[]SizeCount]{
		{Label: "Standard sort", Tag: block.Baseline, Result: []SizeCount{{10, 20}, {100, 400}}},
		{Label: "Bubble sort", Result: []SizeCount{{10, 45}, {100, 4950}}},
	}

	tbl := ComparisonTable().Convert(results)

	headers := tbl.Headers()
	require.Len(t, headers, 5)
	assert.Equal(t, "10", headers[3].ID)
	assert.Equal(t, "100", headers[4].ID)

	assert.Equal(t, []string{convert.BestMarker, ""}, tbl.Column(table.Best, ""))
	assert.Equal(t, []string{"3.0×N", "27.0×N"}, tbl.Column(Comparisons, ""))
	assert.Equal(t, []string{"45", "4950"}, []string{tbl.Get(1, headers[3], ""), tbl.Get(1, headers[4], "")})
}

func TestComparisonTable_SharedLabels(t *testing.T) {
	results := []block.Result[[]SizeCount]{
		{Label: "Sort", Result: []SizeCount{{10, 45}}},
		{Label: "Sort", Result: []SizeCount{{10, 20}}},
		{Label: "Sort", Result: []SizeCount{{10, 30}}},
	}

	tbl := ComparisonTable().Convert(results)
	assert.Equal(t, []string{"", convert.BestMarker, ""}, tbl.Column(table.Best, ""))
}

func TestComparisonInput_SameArraysEveryCall(t *testing.T) {
	input := comparisonInput(7, []int{10, 100})

	first := input()
	require.Len(t, first, 2)
	assert.Len(t, first[0], 10)
	assert.Len(t, first[1], 100)
	assert.Equal(t, first, input())
}

func TestComparisonTable_Empty(t *testing.T) {
	tbl := ComparisonTable().Convert(nil)
	assert.Empty(t, tbl.Headers())
	assert.Zero(t, tbl.Len())
}

func TestRegister(t *testing.T) {
	r := bench.NewRegistry()
	require.NoError(t, Register(r, testOptions()))

	suites := r.Suites()
	require.Len(t, suites, 3)
	assert.Equal(t, "Array sum", suites[1].Name())
	assert.Equal(t, []string{"Time elapsed", "Number of comparisons"}, suites[2].Studies())

	var buf bytes.Buffer
	require.NoError(t, bench.Main(context.Background(), &buf, suites[1:]))
	out := buf.String()

	assert.Contains(t, out, "== Array sum =")
	assert.Contains(t, out, "-- Sum of array's elements -")
	for _, label := range []string{"Indexed loop", "Range loop", "Unrolled loop"} {
		assert.Contains(t, out, label)
	}

	assert.Contains(t, out, "== Sorting algorithms =")
	assert.Contains(t, out, "-- Number of comparisons -")
	bubble := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Bubble sort") && strings.Contains(line, "×N") {
			bubble = line
		}
	}
	require.NotEmpty(t, bubble)
	assert.True(t, strings.HasSuffix(bubble, " 45 4950"), bubble)
}
