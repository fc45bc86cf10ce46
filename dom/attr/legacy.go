package attr

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// spaceChars are the ASCII whitespace characters of the HTML spec.
const spaceChars = " \t\n\f\r"

// ParseUnsignedInteger parses a leading unsigned integer from an
// attribute string: optional whitespace, an optional plus sign, then
// decimal digits. Trailing garbage is ignored. Parsing fails if no
// digits are present, on a minus sign, and on values exceeding the
// 32-bit range.
func ParseUnsignedInteger(s string) (uint32, bool) {
	i := 0
	for i < len(s) && strings.IndexByte(spaceChars, s[i]) >= 0 {
		i++
	}
	if i < len(s) && s[i] == '+' {
		i++
	}
	start := i
	var n uint64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + uint64(s[i]-'0')
		if n > math.MaxUint32 {
			return 0, false
		}
		i++
	}
	if i == start {
		return 0, false
	}
	return uint32(n), true
}

// ParseLegacyColor parses an attribute string as a legacy HTML color:
// a color keyword, or a hex form (#rgb, #rrggbb, with the hash mark
// optional). Keywords match case-insensitively. Anything else does not
// denote a color — notably the empty string and the keyword
// "transparent".
func ParseLegacyColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.Trim(s, spaceChars))
	if s == "" || s == "transparent" {
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	s = strings.TrimPrefix(s, "#")
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return color.RGBA{}, false
		}
	}
	switch len(s) {
	case 3:
		return color.RGBA{
			R: hexDigit(s[0]) * 17,
			G: hexDigit(s[1]) * 17,
			B: hexDigit(s[2]) * 17,
			A: 0xff,
		}, true
	case 6:
		return color.RGBA{
			R: hexDigit(s[0])<<4 | hexDigit(s[1]),
			G: hexDigit(s[2])<<4 | hexDigit(s[3]),
			B: hexDigit(s[4])<<4 | hexDigit(s[5]),
			A: 0xff,
		}, true
	}
	return color.RGBA{}, false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

func hexDigit(c byte) uint8 {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}
