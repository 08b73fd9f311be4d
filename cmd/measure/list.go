package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"measure/internal/config"
)

// NewListCmd returns the command listing suites and their studies.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available suites and their studies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRegistry(config.Current())
			if err != nil {
				return err
			}
			suites, err := selectSuites(r, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range suites {
				fmt.Fprintln(out, s.Name())
				for _, st := range s.Studies() {
					if st == "" {
						st = "(untitled)"
					}
					fmt.Fprintf(out, "  %s\n", st)
				}
			}
			return nil
		},
	}
}
