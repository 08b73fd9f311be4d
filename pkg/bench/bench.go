// Package bench provides ready to use time benchmark suites rendered as
// text tables, a registry to collect them and the entry point running them.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"

	"measure/pkg/block"
	"measure/pkg/convert"
	"measure/pkg/render"
	"measure/pkg/study"
	"measure/pkg/suite"
	"measure/pkg/table"
)

// Suite collects time studies and renders them with render.Text.
type Suite = suite.Suite[*table.Table[string], string]

// Renderer renders a Suite.
type Renderer = suite.Renderer[*table.Table[string], string]

// DefaultSuiteName names the suite every Registry starts with.
const DefaultSuiteName = "Default Suite"

// NewSuite returns an empty suite using the default text renderer.
func NewSuite(name string, opts ...suite.Option) *Suite {
	return suite.New(name, render.Text(), opts...)
}

func noInput() block.Void { return block.Void{} }

// AddStudy adds a time study named name to s. define registers its cases.
func AddStudy(s *Suite, name string, define func(st *study.Time) error) error {
	return suite.DefineStudy(s, name, noInput, convert.TimeTable(), define)
}

// AddBenchmark adds an untitled study holding a single timed case.
func AddBenchmark(s *Suite, label string, fn func() error, opts ...study.Option) error {
	return AddStudy(s, "", func(st *study.Time) error {
		return study.BenchmarkFunc(st, label, fn, opts...)
	})
}

// WithRenderer returns copies of suites rendered with r.
func WithRenderer(suites []*Suite, r Renderer) []*Suite {
	out := make([]*Suite, len(suites))
	for i, s := range suites {
		out[i] = suite.WithRenderer(s, r)
	}
	return out
}

// Main executes suites in order and writes their reports to w, each
// surrounded by blank lines. A failing suite is reported inline and does not
// stop the others. The returned error joins every suite failure.
func Main(ctx context.Context, w io.Writer, suites []*Suite) error {
	var failures []error
	for _, s := range suites {
		out, err := s.Execute(ctx)
		if err != nil {
			failures = append(failures, err)
			if _, werr := fmt.Fprintln(w, "Suite executed with error:", err); werr != nil {
				return fmt.Errorf("write report: %w", werr)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return errors.Join(failures...)
}
