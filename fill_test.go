package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = ColorFromRGB(0xFF, 0, 0)
	green = ColorFromRGB(0, 0xFF, 0)
	blue  = ColorFromRGB(0, 0, 0xFF)
)

func TestFillPatternEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b FillPattern
		want bool
	}{
		{
			name: "none ignores colors",
			a:    FillPattern{Pattern: PatternNone, FgColor: red},
			b:    FillPattern{Pattern: PatternNone, FgColor: blue, BgColor: green},
			want: true,
		},
		{
			name: "solid ignores background",
			a:    FillPattern{Pattern: PatternSolid, FgColor: red, BgColor: green},
			b:    FillPattern{Pattern: PatternSolid, FgColor: red, BgColor: blue},
			want: true,
		},
		{
			name: "solid compares foreground",
			a:    NewSolidFill(red),
			b:    NewSolidFill(blue),
			want: false,
		},
		{
			name: "hatch compares both colors",
			a:    FillPattern{Pattern: PatternGray50, FgColor: red, BgColor: green},
			b:    FillPattern{Pattern: PatternGray50, FgColor: red, BgColor: blue},
			want: false,
		},
		{
			name: "different patterns",
			a:    FillPattern{Pattern: PatternGray25, FgColor: red},
			b:    FillPattern{Pattern: PatternGray50, FgColor: red},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(&tt.b))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestFillPatternGradient(t *testing.T) {
	var f FillPattern
	assert.Nil(t, f.Gradient())

	g := NewLinearGradient(90, red, blue)
	f.SetGradient(g)
	require.Equal(t, PatternGradient, f.Pattern)
	require.NotNil(t, f.Gradient())
	assert.NotSame(t, g, f.Gradient())

	// the stored gradient is a copy
	g.Stops[0].Color = green
	assert.Equal(t, red, f.Gradient().Stops[0].Color)

	// gradient data is ignored for other patterns
	f.Pattern = PatternSolid
	assert.Nil(t, f.Gradient())
}

func TestFillPatternGradientEqual(t *testing.T) {
	var a, b FillPattern
	a.SetGradient(NewLinearGradient(45, red, blue))
	b.SetGradient(NewLinearGradient(45, red, blue))
	// flat colors play no part in a gradient fill
	b.FgColor = green
	require.True(t, a.Equal(&b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetGradient(NewLinearGradient(0, red, blue))
	assert.False(t, a.Equal(&b))
}

func TestFillPatternClone(t *testing.T) {
	var f FillPattern
	f.SetGradient(NewLinearGradient(90, red, blue))

	c := f.Clone()
	require.True(t, c.Equal(&f))
	c.Gradient().Stops[1].Color = green
	assert.Equal(t, blue, f.Gradient().Stops[1].Color)
	assert.False(t, c.Equal(&f))
}

func TestPatternStyleNames(t *testing.T) {
	assert.Equal(t, "darkTrellis", PatternSemiGray75.String())
	assert.Equal(t, PatternGray8, ParsePatternStyle("gray0625"))
	assert.Equal(t, PatternNone, ParsePatternStyle(""))
	assert.Equal(t, PatternNone, ParsePatternStyle("unknown"))
}

func TestGradientEqual(t *testing.T) {
	var nilGradient *Gradient
	assert.True(t, nilGradient.Equal(nil))
	assert.Nil(t, nilGradient.Clone())

	a := &Gradient{Kind: GradientRectangular, Left: 0.5, Right: 0.5, Top: 0.5, Bottom: 0.5,
		Stops: []GradientStop{{0, red}, {1, blue}}}
	b := a.Clone()
	assert.True(t, a.Equal(b))
	b.Top = 0
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
