package demo

import (
	"fmt"
	"strconv"

	"measure/pkg/block"
	"measure/pkg/convert"
	"measure/pkg/stats"
	"measure/pkg/table"
)

// Comparisons holds the mean number of comparisons per element.
var Comparisons = table.NewHeader("Comparisons")

// ComparisonTable converts comparison counts to a table with one column per
// array size, sizes being taken from the first case. The case making the
// fewest comparisons per element is marked as the best.
func ComparisonTable() convert.Converter[[]SizeCount, *table.Table[string]] {
	return func(results []block.Result[[]SizeCount]) *table.Table[string] {
		if len(results) == 0 {
			return table.New[string]()
		}

		headers := []table.Header{table.Label, table.Best, Comparisons}
		sizes := make(map[int]table.Header)
		for _, sc := range results[0].Result {
			h := table.NewHeader(strconv.Itoa(sc.Size))
			sizes[sc.Size] = h
			headers = append(headers, h)
		}
		tbl := table.New[string](headers...)

		best, bestMean := -1, 0.0
		means := make([]*stats.Measure, len(results))
		for i, r := range results {
			m, ok := relativeComparisons(r.Result)
			if !ok {
				continue
			}
			means[i] = &m
			if best < 0 || m.Value < bestMean {
				best, bestMean = i, m.Value
			}
		}

		for i, r := range results {
			row := table.Row[string]{}
			row.Set(table.Label, r.Label)
			if i == best && len(results) > 1 {
				row.Set(table.Best, convert.BestMarker)
			}
			if means[i] != nil {
				row.Set(Comparisons, fmt.Sprintf("%.1f×N", means[i].Value))
			}
			for _, sc := range r.Result {
				if h, ok := sizes[sc.Size]; ok {
					row.Set(h, strconv.Itoa(sc.Count))
				}
			}
			tbl.Append(row)
		}
		return tbl
	}
}

func relativeComparisons(counts []SizeCount) (stats.Measure, bool) {
	ratios := make([]float64, 0, len(counts))
	for _, sc := range counts {
		if sc.Size > 0 {
			ratios = append(ratios, float64(sc.Count)/float64(sc.Size))
		}
	}
	return stats.Extract(ratios)
}
