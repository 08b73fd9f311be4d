// Package format renders report values and lays out fixed-width text.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// width measures display columns. Ambiguous-width runes such as µ and ± are
// narrow regardless of the locale.
var width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Integer formats n in base 10.
func Integer(n int) string {
	return fmt.Sprintf("%d", n)
}

// Percent formats a ratio as a signed percentage, e.g. "+20.00 %".
func Percent(ratio float64) string {
	return fmt.Sprintf("%+.2f %%", 100*ratio)
}

// ErrorPercent formats a relative error, e.g. "±0.15 %".
func ErrorPercent(ratio float64) string {
	return fmt.Sprintf("±%.2f %%", 100*ratio)
}

// Factor formats a performance factor, e.g. "x0.83".
func Factor(f float64) string {
	return fmt.Sprintf("x%.2f", f)
}

// TimeUnit is a display unit for durations expressed in seconds.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

// Scale is the number of units in one second.
func (u TimeUnit) Scale() float64 {
	switch u {
	case Millisecond:
		return 1e3
	case Microsecond:
		return 1e6
	case Nanosecond:
		return 1e9
	default:
		return 1
	}
}

// Suffix is the symbol printed after values in this unit.
func (u TimeUnit) Suffix() string {
	switch u {
	case Millisecond:
		return "ms"
	case Microsecond:
		return "µs"
	case Nanosecond:
		return "ns"
	default:
		return "s"
	}
}

// PreferredUnit returns the largest unit in which seconds is at least 1.
func PreferredUnit(seconds float64) TimeUnit {
	seconds = math.Abs(seconds)
	switch {
	case seconds >= 1:
		return Second
	case seconds >= 1e-3:
		return Millisecond
	case seconds >= 1e-6:
		return Microsecond
	default:
		return Nanosecond
	}
}

// Seconds formats a duration in seconds using unit. Nanoseconds carry no
// fractional digits, other units three.
func Seconds(seconds float64, unit TimeUnit) string {
	return formatSeconds("%.*f %s", seconds, unit)
}

// SignedSeconds is Seconds with an explicit sign.
func SignedSeconds(seconds float64, unit TimeUnit) string {
	return formatSeconds("%+.*f %s", seconds, unit)
}

func formatSeconds(layout string, seconds float64, unit TimeUnit) string {
	digits := 3
	if unit == Nanosecond {
		digits = 0
	}
	return fmt.Sprintf(layout, digits, seconds*unit.Scale(), unit.Suffix())
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return width.StringWidth(s)
}

// Ruler returns a line of length columns made of char, with label written
// after offset leading chars.
func Ruler(label string, offset int, char rune, length int) string {
	fill := string(char)
	suffix := length - Width(label) - offset
	if suffix < 0 {
		suffix = 0
	}
	return strings.Repeat(fill, offset) + label + strings.Repeat(fill, suffix)
}

// Alignment positions text inside a fixed-width cell.
type Alignment int

const (
	Right Alignment = iota
	Left
	Center
)

// Align pads s to exactly length columns. Longer strings are truncated
// without any ellipsis.
func Align(s string, length int, alignment Alignment) string {
	w := Width(s)
	if w > length {
		return width.Truncate(s, length, "")
	}

	diff := length - w
	switch alignment {
	case Left:
		return s + strings.Repeat(" ", diff)
	case Center:
		half := strings.Repeat(" ", diff/2)
		return half + s + half + strings.Repeat(" ", diff%2)
	default:
		return strings.Repeat(" ", diff) + s
	}
}
