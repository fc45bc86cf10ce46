package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// HTML attribute dimensions are given in CSS pixels (1px = 3∕4pt).
var px = dimen.PT * 3 / 4

// spaceChars are the ASCII whitespace characters of the HTML spec.
const spaceChars = " \t\n\f\r"

// ParseDimension parses an attribute string according to the legacy HTML
// rules for dimension values: a leading number, optionally with a
// fractional part, optionally followed by a percent sign. Trailing
// garbage is ignored. Anything unparsable maps to Auto; this is
// compatibility policy, not an error.
func ParseDimension(s string) DimenT {
	d, _ := parseDimension(s)
	return d
}

// ParseNonzeroDimension parses like ParseDimension, but additionally maps
// zero lengths and zero percentages to Auto.
func ParseNonzeroDimension(s string) DimenT {
	d, zero := parseDimension(s)
	if zero {
		return Auto()
	}
	return d
}

func parseDimension(s string) (d DimenT, zero bool) {
	s = strings.TrimLeft(s, spaceChars)
	end := len(s)
	foundDot, foundPercent := false, false
	for i, ch := range s {
		if ch >= '0' && ch <= '9' {
			continue
		}
		if ch == '.' && !foundDot {
			foundDot = true
			continue
		}
		if ch == '%' {
			foundPercent = true
		}
		end = i
		break
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		tracer().Debugf("dimension attribute %q maps to auto", s)
		return Auto(), false
	}
	if foundPercent {
		return Percentage(percent.FromInt(int(math.Round(f)))), f == 0
	}
	return JustDimen(dimen.DU(math.Round(f * float64(px)))), f == 0
}
