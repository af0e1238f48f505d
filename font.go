package xlstyle

import "strings"

// FontStyle is a set of independent font style flags.
type FontStyle uint8

const (
	FontRegular     FontStyle = 0
	FontBold        FontStyle = 1
	FontItalic      FontStyle = 2
	FontStrikeOut   FontStyle = 4
	FontSuperscript FontStyle = 8
	FontSubscript   FontStyle = 16
	FontOutline     FontStyle = 32
	// FontShadow shares its bit with FontOutline. Files written by older
	// versions depend on the shared value, so it is kept.
	FontShadow   FontStyle = 32
	FontCondense FontStyle = 64
	FontExtend   FontStyle = 128
)

// Has reports whether all flags in s2 are set.
func (s FontStyle) Has(s2 FontStyle) bool {
	return s&s2 == s2
}

func (s FontStyle) String() string {
	if s == FontRegular {
		return "regular"
	}
	var parts []string
	for _, f := range []struct {
		flag FontStyle
		name string
	}{
		{FontBold, "bold"},
		{FontItalic, "italic"},
		{FontStrikeOut, "strikeout"},
		{FontSuperscript, "superscript"},
		{FontSubscript, "subscript"},
		{FontOutline, "outline"},
		{FontCondense, "condense"},
		{FontExtend, "extend"},
	} {
		if s.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// UnderlineKind is the kind of underline drawn under the text.
type UnderlineKind byte

const (
	UnderlineNone UnderlineKind = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineSingleAccounting
	UnderlineDoubleAccounting
)

func (u UnderlineKind) String() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineSingleAccounting:
		return "singleAccounting"
	case UnderlineDoubleAccounting:
		return "doubleAccounting"
	}
	return "none"
}

// FontScheme binds a font to the theme fonts of an OOXML workbook.
type FontScheme byte

const (
	FontSchemeNone FontScheme = iota
	FontSchemeMinor
	FontSchemeMajor
)

// Font holds the typographic attributes of a cell format.
type Font struct {
	Name string
	// Size20 is the font height in twentieths of a point.
	Size20    int
	Color     Color
	Style     FontStyle
	Underline UnderlineKind
	Family    byte
	CharSet   byte
	Scheme    FontScheme
}

// NewFont returns Arial 10.
func NewFont() Font {
	return Font{
		Name:   "Arial",
		Size20: 200,
		Color:  ColorAutomatic(),
	}
}

// SizePoints returns the font height in points.
func (f *Font) SizePoints() float64 {
	return float64(f.Size20) / 20
}

func (f *Font) Clone() *Font {
	c := *f
	return &c
}

// CopyTo overwrites dest field by field, keeping dest's identity.
func (f *Font) CopyTo(dest *Font) {
	dest.Name = f.Name
	dest.Size20 = f.Size20
	dest.Color = f.Color
	dest.Style = f.Style
	dest.Underline = f.Underline
	dest.Family = f.Family
	dest.CharSet = f.CharSet
	dest.Scheme = f.Scheme
}

func (f *Font) Equal(o *Font) bool {
	if f == nil || o == nil {
		return f == o
	}
	return *f == *o
}

func (f *Font) Hash() uint64 {
	h := newHasher()
	f.hash(h)
	return h.sum()
}

func (f *Font) hash(h *hasher) {
	h.string(f.Name)
	h.int(f.Size20)
	h.color(f.Color)
	h.byte(byte(f.Style))
	h.byte(byte(f.Underline))
	h.byte(f.Family)
	h.byte(f.CharSet)
	h.byte(byte(f.Scheme))
}
