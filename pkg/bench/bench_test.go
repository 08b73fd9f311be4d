package bench

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measure/pkg/block"
	"measure/pkg/render"
	"measure/pkg/study"
)

var quick = study.WithBounds(block.Iterations(1, 3))

func noop() error { return nil }

func TestRegistry_Default(t *testing.T) {
	r := NewRegistry()
	require.Len(t, r.Suites(), 1)
	assert.Equal(t, DefaultSuiteName, r.Default().Name())

	s, err := r.Suite("Sorting", func(s *Suite) error {
		return AddBenchmark(s, "noop", noop, quick)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultSuiteName, "Sorting"}, names(r.Suites()))
	assert.Equal(t, []string{""}, s.Studies())
}

func TestRegistry_SuiteError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Suite("Broken", func(s *Suite) error {
		return AddStudy(s, "dup", func(st *study.Time) error {
			if err := study.BenchmarkReferenceFunc(st, "", noop, quick); err != nil {
				return err
			}
			return study.BenchmarkReferenceFunc(st, "again", noop, quick)
		})
	})
	assert.ErrorIs(t, err, study.ErrDuplicateBaseline)
	assert.Len(t, r.Suites(), 1)
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSuite("A"))
	r.Register(NewSuite("B"))

	found, err := r.Lookup("B", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, names(found))

	_, err = r.Lookup("C")
	assert.EqualError(t, err, `unknown suite "C"`)
}

func TestMain_ReportsSeparatedByBlankLines(t *testing.T) {
	r := NewRegistry()
	_, err := r.Suite("One", func(s *Suite) error {
		return AddStudy(s, "Time", func(st *study.Time) error {
			if err := study.BenchmarkReferenceFunc(st, "", noop, quick); err != nil {
				return err
			}
			return study.BenchmarkFunc(st, "other", noop, quick)
		})
	})
	require.NoError(t, err)
	_, err = r.Suite("Two", func(s *Suite) error {
		return AddBenchmark(s, "single", noop, quick)
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Main(context.Background(), &buf, r.Suites()[1:]))

	reports := strings.Split(strings.TrimSpace(buf.String()), "\n\n")
	require.Len(t, reports, 2)
	assert.True(t, strings.HasPrefix(reports[0], "== One ="), reports[0])
	assert.Contains(t, reports[0], "-- Time -")
	assert.Contains(t, reports[0], "Reference")
	assert.True(t, strings.HasPrefix(reports[1], "== Two ="), reports[1])
	assert.Contains(t, reports[1], "single")
}

func TestMain_FailingSuiteDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")
	bad := NewSuite("Bad")
	require.NoError(t, AddStudy(bad, "s", func(st *study.Time) error {
		return study.BenchmarkFunc(st, "c", func() error { return boom }, quick)
	}))
	good := NewSuite("Good")
	require.NoError(t, AddBenchmark(good, "ok", noop, quick))

	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []*Suite{bad, good})
	assert.ErrorIs(t, err, boom)

	out := buf.String()
	assert.Contains(t, out, `Suite executed with error: suite "Bad": study "s": case "c": boom`)
	assert.Contains(t, out, "== Good =")
}

func TestWithRenderer(t *testing.T) {
	s := NewSuite("Md")
	require.NoError(t, AddBenchmark(s, "x", noop, quick))

	var buf bytes.Buffer
	require.NoError(t, Main(context.Background(), &buf, WithRenderer([]*Suite{s}, render.Markdown())))
	assert.Contains(t, buf.String(), "# Md")
	assert.Contains(t, buf.String(), "| x |")
}

func names(suites []*Suite) []string {
	out := make([]string, len(suites))
	for i, s := range suites {
		out[i] = s.Name()
	}
	return out
}
