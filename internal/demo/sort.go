package demo

import (
	"fmt"
	"sort"

	"measure/pkg/bench"
	"measure/pkg/block"
	"measure/pkg/study"
	"measure/pkg/suite"
)

// sorter returns a sorted copy of values ordered by less.
type sorter func(values []int, less func(a, b int) bool) []int

func standardSort(values []int, less func(a, b int) bool) []int {
	out := append([]int(nil), values...)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func bubbleSort(values []int, less func(a, b int) bool) []int {
	out := append([]int(nil), values...)
	for i := range out {
		for j := 1; j < len(out)-i; j++ {
			if less(out[j], out[j-1]) {
				out[j], out[j-1] = out[j-1], out[j]
			}
		}
	}
	return out
}

// lcrng is a linear congruential generator. It makes the sorted arrays
// reproducible from one run to the next.
type lcrng struct {
	seed uint64
}

func (r *lcrng) next() uint64 {
	r.seed = 2862933555777941757*r.seed + 3037000493
	return r.seed
}

func (r *lcrng) ints(count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = int(r.next() % 1_000_001)
	}
	return out
}

// countComparisons returns a block counting the comparisons sortFn makes to
// sort its input.
func countComparisons(label string, sortFn sorter) block.Block[[]int, int] {
	return block.New(label, func(values []int) (int, error) {
		count := 0
		sorted := sortFn(values, func(a, b int) bool {
			count++
			return a < b
		})
		if !sort.IntsAreSorted(sorted) {
			return 0, fmt.Errorf("%s did not sort its input", label)
		}
		return count, nil
	})
}

// SizeCount is the number of comparisons made to sort an array of Size
// elements.
type SizeCount struct {
	Size  int
	Count int
}

// comparisonsPerSize lifts b over several arrays and keeps only their sizes.
func comparisonsPerSize(b block.Block[[]int, int]) block.Block[[][]int, []SizeCount] {
	return block.Map(block.ForEach(b), func(pairs []block.Pair[[]int, int]) ([]SizeCount, error) {
		out := make([]SizeCount, len(pairs))
		for i, p := range pairs {
			out[i] = SizeCount{Size: len(p.Input), Count: p.Output}
		}
		return out, nil
	})
}

// comparisonInput returns a generator of one array per size. Every call
// starts over from seed, so each execution sorts the same arrays.
func comparisonInput(seed uint64, sizes []int) func() [][]int {
	return func() [][]int {
		rng := &lcrng{seed: seed}
		arrays := make([][]int, len(sizes))
		for i, size := range sizes {
			arrays[i] = rng.ints(size)
		}
		return arrays
	}
}

func addSorting(s *bench.Suite, opts Options) error {
	values := (&lcrng{seed: opts.Seed}).ints(opts.ArraySize)
	bounds := study.WithBounds(opts.Bounds)

	sortedLen := func(sorted []int) error {
		if len(sorted) != len(values) {
			return fmt.Errorf("sorted %d values out of %d", len(sorted), len(values))
		}
		return nil
	}
	less := func(a, b int) bool { return a < b }

	if err := bench.AddStudy(s, "Time elapsed", func(st *study.Time) error {
		if err := study.BenchmarkReference(st, "Standard sort", func(mark block.Mark) error {
			sorted := standardSort(values, less)
			mark(block.Stop)
			return sortedLen(sorted)
		}, bounds); err != nil {
			return err
		}
		return study.Benchmark(st, "Bubble sort", func(mark block.Mark) error {
			sorted := bubbleSort(values, less)
			mark(block.Stop)
			return sortedLen(sorted)
		}, bounds)
	}); err != nil {
		return err
	}

	return suite.DefineStudy(s, "Number of comparisons", comparisonInput(opts.Seed, opts.ComparisonSizes), ComparisonTable(),
		func(st *study.Study[[][]int, []SizeCount]) error {
			if err := st.SetBaseline(comparisonsPerSize(countComparisons("Standard sort", standardSort))); err != nil {
				return err
			}
			return st.AddCase(comparisonsPerSize(countComparisons("Bubble sort", bubbleSort)))
		})
}
