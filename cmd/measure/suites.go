package main

import (
	"measure/internal/config"
	"measure/internal/demo"
	"measure/pkg/bench"
)

// newRegistry builds the suites run and listed by the commands. Tests replace
// it with lighter workloads.
var newRegistry = registry

// registry returns the suites known to the command.
func registry(settings config.Settings) (*bench.Registry, error) {
	r := bench.NewRegistry()
	if err := demo.Register(r, demo.DefaultOptions(settings.Bounds())); err != nil {
		return nil, err
	}
	return r, nil
}

// selectSuites returns the suites named by names, or every suite holding at
// least one study when names is empty.
func selectSuites(r *bench.Registry, names []string) ([]*bench.Suite, error) {
	if len(names) > 0 {
		return r.Lookup(names...)
	}
	var out []*bench.Suite
	for _, s := range r.Suites() {
		if len(s.Studies()) > 0 {
			out = append(out, s)
		}
	}
	return out, nil
}
