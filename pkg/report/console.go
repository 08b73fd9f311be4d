package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"measure/pkg/format"
)

// Console writes human readable progress lines to w:
//
//	Executing Sorting suite…
//	  Conducting Time elapsed study…
//	    Running Bubble sort… Done! (1.234 s)
func Console(w io.Writer) Reporter {
	return &console{w: w}
}

type console struct {
	w io.Writer
}

func (c *console) Begin(ctx context.Context, ev Event) (context.Context, Finish) {
	switch ev.Kind {
	case KindSuite:
		c.line(0, fmt.Sprintf("Executing %s suite…", ev.Label))
		return ctx, func(o Outcome) {
			if o.Err != nil {
				c.line(0, fmt.Sprintf("Suite %s failed: %v", ev.Label, o.Err))
			}
		}
	case KindStudy:
		name := ""
		if ev.Label != "" {
			name = ev.Label + " "
		}
		c.line(1, fmt.Sprintf("Conducting %sstudy…", name))
		return ctx, func(Outcome) {}
	default:
		fmt.Fprintf(c.w, "%sRunning %s…", indent(2), ev.Label)
		return ctx, func(o Outcome) {
			elapsed := format.Seconds(o.Elapsed.Seconds(), format.Second)
			if o.Err != nil {
				fmt.Fprintf(c.w, " Failed! (%s): %v\n", elapsed, o.Err)
				return
			}
			fmt.Fprintf(c.w, " Done! (%s)\n", elapsed)
		}
	}
}

func (c *console) line(level int, s string) {
	fmt.Fprintln(c.w, indent(level)+s)
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}
