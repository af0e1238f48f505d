package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneBorderEqual(t *testing.T) {
	red := ColorFromRGB(0xFF, 0, 0)
	blue := ColorFromRGB(0, 0, 0xFF)

	tests := []struct {
		name string
		a, b OneBorder
		want bool
	}{
		{"none ignores color", OneBorder{BorderNone, red}, OneBorder{BorderNone, blue}, true},
		{"none vs automatic", OneBorder{BorderNone, red}, OneBorder{}, true},
		{"same style same color", OneBorder{BorderThin, red}, OneBorder{BorderThin, red}, true},
		{"same style other color", OneBorder{BorderThin, red}, OneBorder{BorderThin, blue}, false},
		{"other style", OneBorder{BorderThin, red}, OneBorder{BorderThick, red}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestBordersHashFollowsEqual(t *testing.T) {
	var a, b Borders
	a.Left = OneBorder{BorderNone, ColorFromIndex(10)}
	b.Left = OneBorder{BorderNone, ColorFromIndex(12)}
	require.True(t, a.Equal(&b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Left.Style = BorderDotted
	assert.False(t, a.Equal(&b))
}

func TestBordersSetAllBorders(t *testing.T) {
	var b Borders
	b.Diagonal = OneBorder{BorderHair, ColorFromIndex(8)}
	b.DiagonalStyle = DiagonalUp
	b.SetAllBorders(BorderMedium, ColorFromIndex(9))

	for _, side := range []OneBorder{b.Left, b.Right, b.Top, b.Bottom} {
		assert.Equal(t, OneBorder{BorderMedium, ColorFromIndex(9)}, side)
	}
	assert.Equal(t, BorderHair, b.Diagonal.Style)
	assert.Equal(t, DiagonalUp, b.DiagonalStyle)
	assert.True(t, b.HasBorders())
}

func TestBordersHasBorders(t *testing.T) {
	var b Borders
	assert.False(t, b.HasBorders())

	// a diagonal line without a direction is not drawn
	b.Diagonal.Style = BorderThin
	assert.False(t, b.HasBorders())
	b.DiagonalStyle = DiagonalBoth
	assert.True(t, b.HasBorders())
}

func TestBordersClone(t *testing.T) {
	var b Borders
	b.SetAllBorders(BorderThin, ColorFromIndex(8))
	c := b.Clone()
	require.NotSame(t, &b, c)
	require.True(t, c.Equal(&b))

	c.Left.Style = BorderDouble
	assert.Equal(t, BorderThin, b.Left.Style)
}

func TestBorderStyleNames(t *testing.T) {
	for s := BorderNone; s <= BorderSlantedDashDot; s++ {
		assert.Equal(t, s, ParseBorderStyle(s.String()), s.String())
	}
	assert.Equal(t, "mediumDashDotDot", BorderMediumDashDotDot.String())
	assert.Equal(t, BorderNone, ParseBorderStyle("bogus"))
}
