package attr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnsignedInteger(t *testing.T) {
	cases := []struct {
		input string
		n     uint32
		ok    bool
	}{
		{"5", 5, true},
		{"  42", 42, true},
		{"+17", 17, true},
		{"5abc", 5, true}, // trailing garbage is ignored
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"+", 0, false},
		{"99999999999", 0, false}, // exceeds 32 bits
	}
	for _, c := range cases {
		n, ok := ParseUnsignedInteger(c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
		assert.Equal(t, c.n, n, "input %q", c.input)
	}
}

func TestParseLegacyColorKeywords(t *testing.T) {
	c, ok := ParseLegacyColor("red")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)

	c, ok = ParseLegacyColor(" CornflowerBlue ")
	assert.True(t, ok, "keywords match case-insensitively, whitespace-trimmed")
	assert.Equal(t, color.RGBA{0x64, 0x95, 0xed, 0xff}, c)

	_, ok = ParseLegacyColor("")
	assert.False(t, ok, "empty string denotes no color")
	_, ok = ParseLegacyColor("transparent")
	assert.False(t, ok, "transparent denotes no color")
}

func TestParseLegacyColorHex(t *testing.T) {
	c, ok := ParseLegacyColor("#abc")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, c)

	c, ok = ParseLegacyColor("#336699")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, c)

	c, ok = ParseLegacyColor("336699")
	assert.True(t, ok, "the hash mark is optional for legacy colors")
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, c)
}

func TestParseLegacyColorInvalid(t *testing.T) {
	// invalid color strings denote no color, they are not an error
	for _, input := range []string{"notacolor", "#", "#ab", "#abcd", "red5", "12345g"} {
		if _, ok := ParseLegacyColor(input); ok {
			t.Errorf("expected %q to denote no color, does", input)
		}
	}
}
