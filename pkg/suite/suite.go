// Package suite runs studies of possibly different types and renders their
// converted results with a single Renderer.
package suite

import (
	"context"
	"fmt"

	"measure/pkg/convert"
	"measure/pkg/report"
	"measure/pkg/study"
)

// Entry is the converted output of one study.
type Entry[In any] struct {
	Label string
	Value In
}

// Renderer produces the report of a suite from the converted output of its
// studies, in registration order.
type Renderer[In, Dest any] func(name string, entries []Entry[In]) (Dest, error)

// Option configures a Suite.
type Option func(*options)

type options struct {
	reporter report.Reporter
}

// WithReporter sends progress notifications to r. Without it, the reporter
// carried by the context given to Execute is used.
func WithReporter(r report.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// thunk runs one study and converts its results.
type thunk[In any] struct {
	label string
	run   func(ctx context.Context) (In, error)
}

// Suite is an ordered list of studies sharing a renderer.
type Suite[In, Dest any] struct {
	name     string
	renderer Renderer[In, Dest]
	opts     options
	studies  []thunk[In]
}

// New returns an empty suite.
func New[In, Dest any](name string, renderer Renderer[In, Dest], opts ...Option) *Suite[In, Dest] {
	s := &Suite[In, Dest]{name: name, renderer: renderer}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Name returns the name of the suite.
func (s *Suite[In, Dest]) Name() string { return s.name }

// Studies returns the labels of the registered studies.
func (s *Suite[In, Dest]) Studies() []string {
	labels := make([]string, len(s.studies))
	for i, st := range s.studies {
		labels[i] = st.label
	}
	return labels
}

// AddStudy registers st. When the suite executes, input provides the study
// input and convert maps its results to the suite input type.
func AddStudy[SIn, SOut, In, Dest any](
	s *Suite[In, Dest],
	st *study.Study[SIn, SOut],
	input func() SIn,
	convert convert.Converter[SOut, In],
) {
	s.studies = append(s.studies, thunk[In]{
		label: st.Label(),
		run: func(ctx context.Context) (In, error) {
			results, err := st.Run(ctx, input())
			if err != nil {
				var zero In
				return zero, err
			}
			return convert(results), nil
		},
	})
}

// DefineStudy creates a study named label, lets define register its cases
// and adds it to s. Errors returned by define are passed through and the
// study is not added.
func DefineStudy[SIn, SOut, In, Dest any](
	s *Suite[In, Dest],
	label string,
	input func() SIn,
	convert convert.Converter[SOut, In],
	define func(st *study.Study[SIn, SOut]) error,
) error {
	st := study.New[SIn, SOut](label)
	if err := define(st); err != nil {
		return fmt.Errorf("study %q: %w", label, err)
	}
	AddStudy(s, st, input, convert)
	return nil
}

// Execute runs every study in registration order and renders the results.
// The first failing study aborts the execution.
func (s *Suite[In, Dest]) Execute(ctx context.Context) (Dest, error) {
	if s.opts.reporter != nil {
		ctx = report.NewContext(ctx, s.opts.reporter)
	}
	ctx, done := report.Track(ctx, report.Event{Kind: report.KindSuite, Label: s.name})

	entries := make([]Entry[In], 0, len(s.studies))
	for _, st := range s.studies {
		studyCtx, studyDone := report.Track(ctx, report.Event{Kind: report.KindStudy, Label: st.label})
		value, err := st.run(studyCtx)
		studyDone(err)
		if err != nil {
			err = fmt.Errorf("suite %q: study %q: %w", s.name, st.label, err)
			done(err)
			var zero Dest
			return zero, err
		}
		entries = append(entries, Entry[In]{Label: st.label, Value: value})
	}

	dest, err := s.renderer(s.name, entries)
	if err != nil {
		err = fmt.Errorf("suite %q: render: %w", s.name, err)
	}
	done(err)
	return dest, err
}

// WithRenderer returns a suite with the same name, options and studies that
// renders with r instead.
func WithRenderer[In, Dest, NewDest any](s *Suite[In, Dest], r Renderer[In, NewDest]) *Suite[In, NewDest] {
	studies := make([]thunk[In], len(s.studies))
	copy(studies, s.studies)
	return &Suite[In, NewDest]{name: s.name, renderer: r, opts: s.opts, studies: studies}
}
