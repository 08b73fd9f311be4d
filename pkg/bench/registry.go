package bench

import (
	"fmt"

	"measure/pkg/suite"
)

// Registry is an ordered collection of suites. It always holds the default
// suite first, for benchmarks that do not need a suite of their own.
type Registry struct {
	suites []*Suite
}

// NewRegistry returns a registry holding only the default suite.
func NewRegistry(opts ...suite.Option) *Registry {
	return &Registry{suites: []*Suite{NewSuite(DefaultSuiteName, opts...)}}
}

// Default returns the default suite.
func (r *Registry) Default() *Suite {
	return r.suites[0]
}

// Register appends s.
func (r *Registry) Register(s *Suite) {
	r.suites = append(r.suites, s)
}

// Suite creates a suite named name, lets define populate it and registers
// it. Nothing is registered when define fails.
func (r *Registry) Suite(name string, define func(s *Suite) error, opts ...suite.Option) (*Suite, error) {
	s := NewSuite(name, opts...)
	if err := define(s); err != nil {
		return nil, fmt.Errorf("suite %q: %w", name, err)
	}
	r.Register(s)
	return s, nil
}

// Suites returns the registered suites in registration order.
func (r *Registry) Suites() []*Suite {
	out := make([]*Suite, len(r.suites))
	copy(out, r.suites)
	return out
}

// Lookup returns the suites named by names, in the given order.
func (r *Registry) Lookup(names ...string) ([]*Suite, error) {
	out := make([]*Suite, 0, len(names))
	for _, name := range names {
		found := false
		for _, s := range r.suites {
			if s.Name() == name {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown suite %q", name)
		}
	}
	return out, nil
}
