package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tdom/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
)

func TestParseDimension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.css")
	defer teardown()
	//
	var du dimen.DU
	d := css.ParseDimension("400")
	switch m := d.Match(); m {
	case m.Just(&du):
		assert.Equal(t, 400*(dimen.PT*3/4), du, "400 should be 400px")
	default:
		t.Errorf("expected \"400\" to parse to a fixed length, is %s", d)
	}

	var p percent.Percent
	d = css.ParseDimension("50%")
	switch m := d.Match(); m {
	case m.Percentage(&p):
		assert.Equal(t, percent.FromInt(50), p, "50%% should be a percentage of 50")
	default:
		t.Errorf("expected \"50%%\" to parse to a percentage, is %s", d)
	}
}

func TestParseDimensionFallbacks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.css")
	defer teardown()
	//
	for _, input := range []string{"", "auto", "abc", ".", "%", "-10"} {
		d := css.ParseDimension(input)
		assert.True(t, d.IsAuto(), "input %q should map to auto", input)
	}
	// trailing garbage is ignored
	d := css.ParseDimension("  12px")
	var du dimen.DU
	if m := d.Match(); m.Just(&du) == nil {
		t.Errorf("expected \"12px\" to parse to a fixed length, is %s", d)
	}
}

func TestParseNonzeroDimension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.css")
	defer teardown()
	//
	assert.True(t, css.ParseNonzeroDimension("0").IsAuto(), "zero length maps to auto")
	assert.True(t, css.ParseNonzeroDimension("0%").IsAuto(), "zero percentage maps to auto")
	assert.True(t, css.ParseNonzeroDimension("0.0").IsAuto(), "zero fraction maps to auto")
	assert.False(t, css.ParseNonzeroDimension("120").IsAuto(), "non-zero length is kept")
}
