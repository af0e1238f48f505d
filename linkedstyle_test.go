package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedStyleDefaults(t *testing.T) {
	l := NewLinkedStyle()
	assert.True(t, l.AutomaticChoose)
	assert.False(t, l.LinkedFont)
	assert.False(t, l.LinkedFill)

	l.LinkAll(true)
	assert.Equal(t, LinkedStyle{true, true, true, true, true, true, true}, l)

	var other LinkedStyle
	assert.False(t, other.SameData(&l))
	other.Assign(&l)
	assert.True(t, other.SameData(&l))
}

func TestInferLinkedStyle(t *testing.T) {
	parent := CreateStandard2007()
	parent.IsStyle = true
	parent.FillPattern = NewSolidFill(green)

	cell := CreateStandard2007()
	cell.FillPattern = NewSolidFill(green)
	cell.Font.Style = FontBold
	cell.Hidden = true
	cell.Indent = 2

	l := InferLinkedStyle(cell, parent)
	assert.True(t, l.AutomaticChoose)
	assert.True(t, l.LinkedFill)
	assert.True(t, l.LinkedBorder)
	assert.True(t, l.LinkedNumericFormat)
	assert.False(t, l.LinkedFont)
	assert.False(t, l.LinkedProtection)
	assert.False(t, l.LinkedAlignment)
}
