// Package study groups comparable cases that share their input and output
// types, one of which may serve as the baseline of the others.
package study

import (
	"context"
	"errors"
	"fmt"

	"measure/pkg/block"
	"measure/pkg/report"
)

// ErrDuplicateBaseline is returned when a second baseline case is added.
var ErrDuplicateBaseline = errors.New("study already has a baseline case")

// Study is an ordered set of cases.
type Study[In, Out any] struct {
	label string
	tag   block.Tag
	cases []block.Block[In, Out]
}

// New returns an empty study.
func New[In, Out any](label string) *Study[In, Out] {
	return &Study[In, Out]{label: label}
}

// Label returns the name of the study.
func (s *Study[In, Out]) Label() string { return s.label }

// Tag returns the tag of the study.
func (s *Study[In, Out]) Tag() block.Tag { return s.tag }

// SetTag tags the study.
func (s *Study[In, Out]) SetTag(tag block.Tag) { s.tag = tag }

// Cases returns the registered cases in declaration order.
func (s *Study[In, Out]) Cases() []block.Block[In, Out] {
	out := make([]block.Block[In, Out], len(s.cases))
	copy(out, s.cases)
	return out
}

// Baseline returns the baseline case, if any.
func (s *Study[In, Out]) Baseline() (block.Block[In, Out], bool) {
	for _, c := range s.cases {
		if c.Tag() == block.Baseline {
			return c, true
		}
	}
	return block.Block[In, Out]{}, false
}

// AddCase appends a case. A case tagged block.Baseline is rejected if the
// study already has a baseline.
func (s *Study[In, Out]) AddCase(c block.Block[In, Out]) error {
	if c.Tag() == block.Baseline {
		if existing, ok := s.Baseline(); ok {
			return fmt.Errorf("%w: %q cannot replace %q in study %q", ErrDuplicateBaseline, c.Label(), existing.Label(), s.label)
		}
	}
	s.cases = append(s.cases, c)
	return nil
}

// SetBaseline appends c tagged as the baseline of the study.
func (s *Study[In, Out]) SetBaseline(c block.Block[In, Out]) error {
	return s.AddCase(c.WithTag(block.Baseline))
}

// Run executes every case against input, sequentially and in declaration
// order. The first failing case aborts the run and no results are returned.
func (s *Study[In, Out]) Run(ctx context.Context, input In) ([]block.Result[Out], error) {
	results := make([]block.Result[Out], 0, len(s.cases))
	for _, c := range s.cases {
		_, done := report.Track(ctx, report.Event{Kind: report.KindCase, Label: c.Label()})
		out, err := c.Call(input)
		done(err)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Label(), err)
		}
		results = append(results, block.Result[Out]{Label: c.Label(), Tag: c.Tag(), Result: out})
	}
	return results, nil
}

// Block returns a Block running the whole study under ctx.
func (s *Study[In, Out]) Block(ctx context.Context) block.Block[In, []block.Result[Out]] {
	return block.New(s.label, func(input In) ([]block.Result[Out], error) {
		return s.Run(ctx, input)
	}).WithTag(s.tag)
}
