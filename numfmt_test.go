package xlstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDateTimeFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"", false},
		{"General", false},
		{"@", false},
		{"0.00", false},
		{"0.00E+00", false},
		{"##0.0E-0", false},
		{`"$"#,##0_);[Red]\("$"#,##0\)`, false},
		{"[Magenta]0.00", false},
		{`"day "0`, false},
		{`\d0`, false},
		{"m/d/yyyy", true},
		{"h:mm AM/PM", true},
		{"[h]:mm:ss", true},
		{"[$-409]mmmm d, yyyy", true},
		{"[Red]dd/mm", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDateTimeFormat(tt.format), tt.format)
	}
}

func TestBuiltinNumberFormat(t *testing.T) {
	s, ok := BuiltinNumberFormat(14)
	assert.True(t, ok)
	assert.Equal(t, "m/d/yyyy", s)

	_, ok = BuiltinNumberFormat(30)
	assert.False(t, ok)

	id, ok := BuiltinNumberFormatID("0.00%")
	assert.True(t, ok)
	assert.Equal(t, uint16(10), id)

	id, ok = BuiltinNumberFormatID("general")
	assert.True(t, ok)
	assert.Equal(t, uint16(0), id)

	id, ok = BuiltinNumberFormatID("")
	assert.True(t, ok)
	assert.Equal(t, uint16(0), id)

	_, ok = BuiltinNumberFormatID("0.000")
	assert.False(t, ok)
}

func TestFormatHasDateTime(t *testing.T) {
	f := CreateStandard2007()
	assert.False(t, f.HasDateTime())
	f.NumberFormat = "yyyy-mm-dd"
	assert.True(t, f.HasDateTime())
}

func TestBuiltinStyleName(t *testing.T) {
	name, ok := BuiltinStyleName(0, 0)
	assert.True(t, ok)
	assert.Equal(t, NormalStyleName, name)

	name, ok = BuiltinStyleName(builtinRowLevel, 2)
	assert.True(t, ok)
	assert.Equal(t, "RowLevel_3", name)

	_, ok = BuiltinStyleName(200, 0)
	assert.False(t, ok)

	assert.Equal(t, builtinColLevel, builtinStyleID("ColLevel_1"))
	assert.Equal(t, -1, builtinStyleID("ColLevel_9"))
	assert.Equal(t, 27, builtinStyleID("bad"))
	assert.Equal(t, -1, builtinStyleID("Custom"))
}
