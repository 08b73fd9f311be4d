package convert

import (
	"measure/pkg/block"
	"measure/pkg/format"
	"measure/pkg/stats"
	"measure/pkg/table"
)

// BestMarker flags the fastest case of a study.
const BestMarker = "(*)"

// TimeColumns are the columns produced by TimeTable, in order.
var TimeColumns = []table.Header{
	table.Label,
	table.Best,
	table.Mean,
	table.Delta,
	table.Variation,
	table.Performance,
	table.StandardError,
	table.Iterations,
}

// TimeTable returns the default converter from time measures, in seconds,
// to a table of formatted strings.
//
// All means of a study share the unit in which the smallest mean is at least
// one. When the study has a baseline, other cases get the delta, variation
// and performance factor relative to it.
func TimeTable() Converter[stats.Measure, *table.Table[string]] {
	return func(results []block.Result[stats.Measure]) *table.Table[string] {
		tbl := table.New[string](TimeColumns...)

		fastest := 0.0
		for i, r := range results {
			if i == 0 || r.Result.Value < fastest {
				fastest = r.Result.Value
			}
		}
		unit := format.PreferredUnit(fastest)
		baseline, hasBaseline := baselineOf(results)

		for _, r := range results {
			row := table.Row[string]{}
			row.Set(table.Label, r.Label)

			best := ""
			if r.Result.Value == fastest && len(results) > 1 {
				best = BestMarker
			}
			row.Set(table.Best, best)
			row.Set(table.Mean, format.Seconds(r.Result.Value, unit))

			if hasBaseline && r.Tag != block.Baseline {
				cmp := Compare(baseline.Result.Value, r.Result.Value)
				row.Set(table.Delta, format.SignedSeconds(cmp.Delta, unit))
				row.Set(table.Variation, format.Percent(cmp.Variation))
				row.Set(table.Performance, format.Factor(cmp.Performance))
			}

			row.Set(table.StandardError, format.ErrorPercent(r.Result.Error()/r.Result.Value))
			row.Set(table.Iterations, format.Integer(r.Result.Count))
			tbl.Append(row)
		}
		return tbl
	}
}
