package suite

import (
	"fmt"
	"io"
)

// WriteTo decorates r so that the rendered report is written to w.
func WriteTo[In any](r Renderer[In, string], w io.Writer) Renderer[In, struct{}] {
	return func(name string, entries []Entry[In]) (struct{}, error) {
		out, err := r(name, entries)
		if err != nil {
			return struct{}{}, err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return struct{}{}, fmt.Errorf("write report: %w", err)
		}
		return struct{}{}, nil
	}
}

// Print returns a suite writing its report to w instead of returning it.
func Print[In any](s *Suite[In, string], w io.Writer) *Suite[In, struct{}] {
	return WithRenderer(s, WriteTo(s.renderer, w))
}
