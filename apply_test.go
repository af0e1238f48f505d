package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFormatEmptyMask(t *testing.T) {
	var mask ApplyFormat
	assert.True(t, mask.IsEmpty())
	assert.True(t, mask.HasOnlyBorders())

	mask.Borders.Left = true
	assert.False(t, mask.IsEmpty())
	assert.True(t, mask.HasOnlyBorders())

	mask.Font.Color = true
	assert.False(t, mask.HasOnlyBorders())

	mask.SetAllMembers(false)
	assert.True(t, mask.IsEmpty())
}

func TestApplyFormatIdempotent(t *testing.T) {
	existing := CreateStandard2007()
	src := CreateStandard2003()
	src.Borders.SetAllBorders(BorderDouble, red)
	src.FillPattern = NewSolidFill(green)
	src.NumberFormat = "0%"
	src.SetParentStyle("Percent")

	var mask ApplyFormat
	mask.SetAllMembers(true)

	require.True(t, mask.Apply(existing, src))
	once := existing.Clone()
	assert.False(t, mask.Apply(existing, src))
	assert.True(t, once.Equal(existing))
	assert.True(t, existing.Equal(src))
}

func TestApplyFormatLocality(t *testing.T) {
	existing := CreateStandard2007()
	existing.Borders.Left = OneBorder{BorderThin, blue}
	src := existing.Clone()
	src.Font.Color = red
	src.Borders.Left = OneBorder{BorderThick, green}

	var mask ApplyFormat
	mask.Font.Color = true
	require.True(t, mask.Apply(existing, src))
	assert.Equal(t, red, existing.Font.Color)
	assert.Equal(t, OneBorder{BorderThin, blue}, existing.Borders.Left)
}

func TestApplyFormatSingleBorder(t *testing.T) {
	existing := CreateStandard2007()
	existing.Borders.Left.Style = BorderThin
	existing.Borders.Right = OneBorder{BorderDotted, red}
	src := CreateStandard2007()
	src.Borders.Left.Style = BorderThick
	src.Borders.Right = OneBorder{BorderDouble, blue}

	var mask ApplyFormat
	mask.Borders.Left = true
	assert.True(t, mask.Apply(existing, src))
	assert.Equal(t, BorderThick, existing.Borders.Left.Style)
	assert.Equal(t, OneBorder{BorderDotted, red}, existing.Borders.Right)
}

func TestApplyChanges(t *testing.T) {
	existing := CreateStandard2007()
	src := existing.Clone()
	src.Font.Style = FontBold
	src.WrapText = true
	src.Font.Name = "Verdana"

	var mask ApplyFormat
	mask.Font.Style = true
	mask.Font.Name = true
	mask.WrapText = true
	mask.Indent = true

	changes := mask.ApplyChanges(existing, src)
	assert.True(t, changes.Font.Style)
	assert.True(t, changes.Font.Name)
	assert.True(t, changes.WrapText)
	// selected but equal
	assert.False(t, changes.Indent)
	assert.False(t, changes.Font.Color)
	assert.False(t, changes.HasOnlyBorders())
}

func TestApplyParentStyle(t *testing.T) {
	existing := CreateStandard2007()
	src := CreateStandard2007()
	src.SetParentStyle(NormalStyleName)

	var mask ApplyFormat
	mask.ParentStyle = true
	// nil and Normal name the same parent
	assert.False(t, mask.Apply(existing, src))

	src.LinkedStyle.LinkedFont = true
	require.True(t, mask.Apply(existing, src))
	assert.True(t, existing.LinkedStyle.LinkedFont)

	src.SetParentStyle("Good")
	require.True(t, mask.Apply(existing, src))
	require.NotNil(t, existing.ParentStyle)
	assert.Equal(t, "Good", *existing.ParentStyle)
	assert.NotSame(t, src.ParentStyle, existing.ParentStyle)
}

func TestApplyDiagonal(t *testing.T) {
	var existing, src Borders
	src.Diagonal = OneBorder{BorderThin, red}
	src.DiagonalStyle = DiagonalDown

	mask := ApplyBorders{Diagonal: true}
	require.True(t, mask.Apply(&existing, &src))
	assert.Equal(t, DiagonalDown, existing.DiagonalStyle)
	assert.Equal(t, src.Diagonal, existing.Diagonal)

	// a direction change alone is a change
	src.DiagonalStyle = DiagonalBoth
	assert.True(t, mask.Apply(&existing, &src))
}

func TestApplyFillGradient(t *testing.T) {
	existing := FillPattern{Pattern: PatternNone}
	var src FillPattern
	src.SetGradient(NewLinearGradient(45, red, blue))

	var mask ApplyFillPattern
	mask.SetAllMembers(true)
	require.True(t, mask.Apply(&existing, &src))
	assert.True(t, existing.Equal(&src))

	src.Gradient().Stops[0].Color = green
	assert.NotEqual(t, green, existing.Gradient().Stops[0].Color)
}

func TestApplyFontMask(t *testing.T) {
	existing := NewFont()
	src := Font{Name: "Tahoma", Size20: 160, Underline: UnderlineSingleAccounting}

	var mask ApplyFont
	assert.True(t, mask.IsEmpty())
	mask.Underline = true
	require.True(t, mask.Apply(&existing, &src))
	assert.Equal(t, UnderlineSingleAccounting, existing.Underline)
	assert.Equal(t, "Arial", existing.Name)
	assert.False(t, mask.Apply(&existing, &src))
}

func TestDiffFormats(t *testing.T) {
	a := CreateStandard2007()
	b := a.Clone()
	b.Font.Size20 = 240
	b.Borders.Bottom = OneBorder{BorderMedium, red}
	b.Locked = false

	d := DiffFormats(a, b)
	assert.True(t, d.Font.Size20)
	assert.False(t, d.Font.Name)
	assert.True(t, d.Borders.Bottom)
	assert.False(t, d.Borders.Top)
	assert.True(t, d.Locked)
	assert.False(t, d.Hidden)
	// a is not touched
	assert.Equal(t, 220, a.Font.Size20)

	same := DiffFormats(a, a.Clone())
	assert.True(t, same.IsEmpty())
}
