package demo

import (
	"fmt"

	"measure/pkg/bench"
	"measure/pkg/block"
	"measure/pkg/study"
)

func addArraySum(s *bench.Suite, opts Options) error {
	values := make([]float64, opts.ArraySize)
	for i := range values {
		values[i] = 10
	}
	want := 10 * float64(opts.ArraySize)
	bounds := study.WithBounds(opts.Bounds)

	check := func(sum float64) error {
		if sum != want {
			return fmt.Errorf("sum = %v, want %v", sum, want)
		}
		return nil
	}

	return bench.AddStudy(s, "Sum of array's elements", func(st *study.Time) error {
		if err := study.BenchmarkReference(st, "Indexed loop", func(mark block.Mark) error {
			sum := 0.0
			for i := 0; i < len(values); i++ {
				sum += values[i]
			}
			mark(block.Stop)
			return check(sum)
		}, bounds); err != nil {
			return err
		}

		if err := study.Benchmark(st, "Range loop", func(mark block.Mark) error {
			sum := 0.0
			for _, v := range values {
				sum += v
			}
			mark(block.Stop)
			return check(sum)
		}, bounds); err != nil {
			return err
		}

		return study.Benchmark(st, "Unrolled loop", func(mark block.Mark) error {
			var s0, s1, s2, s3 float64
			i := 0
			for ; i+4 <= len(values); i += 4 {
				s0 += values[i]
				s1 += values[i+1]
				s2 += values[i+2]
				s3 += values[i+3]
			}
			for ; i < len(values); i++ {
				s0 += values[i]
			}
			sum := s0 + s1 + s2 + s3
			mark(block.Stop)
			return check(sum)
		}, bounds)
	})
}
