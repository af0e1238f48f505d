package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontStyleAlias(t *testing.T) {
	// outline and shadow share a bit in the file format
	assert.Equal(t, FontOutline, FontShadow)
	s := FontBold | FontShadow
	assert.True(t, s.Has(FontOutline))
	assert.Equal(t, "bold|outline", s.String())
	assert.Equal(t, "regular", FontRegular.String())
}

func TestFontClone(t *testing.T) {
	f := NewFont()
	f.Style = FontItalic
	c := f.Clone()
	require.NotSame(t, &f, c)
	require.True(t, c.Equal(&f))

	c.Name = "Verdana"
	c.Style |= FontBold
	assert.Equal(t, "Arial", f.Name)
	assert.Equal(t, FontItalic, f.Style)
	assert.False(t, c.Equal(&f))
}

func TestFontCopyTo(t *testing.T) {
	src := Font{Name: "Cambria", Size20: 280, Color: ColorFromTheme(ThemeAccent1, -0.25),
		Style: FontBold, Underline: UnderlineDouble, Family: 1, CharSet: 204, Scheme: FontSchemeMajor}
	dest := NewFont()
	p := &dest
	src.CopyTo(p)
	assert.Same(t, &dest, p)
	assert.True(t, dest.Equal(&src))
	assert.Equal(t, src.Hash(), dest.Hash())
}

func TestFontSizePoints(t *testing.T) {
	f := Font{Size20: 230}
	assert.InDelta(t, 11.5, f.SizePoints(), 1e-9)
}

func TestFontEqualNil(t *testing.T) {
	var a *Font
	assert.True(t, a.Equal(nil))
	f := NewFont()
	assert.False(t, f.Equal(nil))
}
