package xlstyle

import "fmt"

// NormalStyleName is the built-in style every cell format inherits from when
// it names no parent.
const NormalStyleName = "Normal"

// HAlign is the horizontal alignment of a cell.
type HAlign byte

const (
	HAlignGeneral HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignFill
	HAlignJustify
	HAlignCenterAcrossSelection
	HAlignDistributed
)

var hAlignNames = [...]string{"general", "left", "center", "right", "fill", "justify", "centerContinuous", "distributed"}

// String returns the OOXML name of the alignment.
func (a HAlign) String() string {
	if int(a) < len(hAlignNames) {
		return hAlignNames[a]
	}
	return "general"
}

func ParseHAlign(name string) HAlign {
	for i, n := range hAlignNames {
		if n == name {
			return HAlign(i)
		}
	}
	return HAlignGeneral
}

// VAlign is the vertical alignment of a cell.
type VAlign byte

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
	VAlignJustify
	VAlignDistributed
)

var vAlignNames = [...]string{"top", "center", "bottom", "justify", "distributed"}

func (a VAlign) String() string {
	if int(a) < len(vAlignNames) {
		return vAlignNames[a]
	}
	return "bottom"
}

func ParseVAlign(name string) VAlign {
	for i, n := range vAlignNames {
		if n == name {
			return VAlign(i)
		}
	}
	return VAlignBottom
}

// RotationVertical is the Rotation value for text stacked vertically.
const RotationVertical = 255

// Format is a cell format or, when IsStyle is set, a named style that cell
// formats can inherit from.
//
// Values are not validated: Rotation and Indent outside the ranges a file
// format supports are stored as given.
type Format struct {
	Font        Font
	Borders     Borders
	FillPattern FillPattern

	// NumberFormat is the number format string, empty for General.
	NumberFormat string

	HAlignment  HAlign
	VAlignment  VAlign
	Locked      bool
	Hidden      bool
	WrapText    bool
	ShrinkToFit bool

	// Rotation is 0..90 for text rotated up, 91..180 for text rotated down
	// (91 = -1 degree) and 255 for vertical text.
	Rotation byte
	// Indent is 0..15 in xls files and 0..250 in xlsx files.
	Indent byte

	Lotus123Prefix bool

	IsStyle bool
	// ParentStyle names the style this format inherits from. nil means Normal.
	ParentStyle *string
	LinkedStyle LinkedStyle
}

func newFormat(font Font) *Format {
	return &Format{
		Font: font,
		FillPattern: FillPattern{
			Pattern: PatternNone,
			FgColor: ColorAutomatic(),
			BgColor: ColorAutomatic(),
		},
		VAlignment:  VAlignBottom,
		Locked:      true,
		LinkedStyle: NewLinkedStyle(),
	}
}

// CreateStandard2007 returns the default format of an Excel 2007 or newer
// workbook: Calibri 11 bound to the minor theme font.
func CreateStandard2007() *Format {
	return newFormat(Font{
		Name:    "Calibri",
		Size20:  220,
		Color:   ColorFromTheme(ThemeForeground1, 0),
		Family:  2,
		CharSet: 0,
		Scheme:  FontSchemeMinor,
	})
}

// CreateStandard2003 returns the default format of an Excel 97-2003 workbook.
func CreateStandard2003() *Format {
	return newFormat(NewFont())
}

// NotNullParentStyle returns the parent style name, Normal when none is set.
func (f *Format) NotNullParentStyle() string {
	if f.ParentStyle == nil {
		return NormalStyleName
	}
	return *f.ParentStyle
}

// SetParentStyle sets the parent style name. An empty name clears it.
func (f *Format) SetParentStyle(name string) {
	if name == "" {
		f.ParentStyle = nil
		return
	}
	f.ParentStyle = &name
}

// RotationAngle converts Rotation to degrees counter-clockwise. ok is false
// for vertical text and out-of-range values.
func (f *Format) RotationAngle() (angle int, ok bool) {
	switch {
	case f.Rotation <= 90:
		return int(f.Rotation), true
	case f.Rotation <= 180:
		return 90 - int(f.Rotation), true
	}
	return 0, false
}

// Clone returns a deep copy: the copy shares no mutable state with f.
func (f *Format) Clone() *Format {
	c := *f
	c.FillPattern = *f.FillPattern.Clone()
	if f.ParentStyle != nil {
		p := *f.ParentStyle
		c.ParentStyle = &p
	}
	return &c
}

func (f *Format) Equal(o *Format) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Font.Equal(&o.Font) &&
		f.Borders.Equal(&o.Borders) &&
		f.FillPattern.Equal(&o.FillPattern) &&
		f.NumberFormat == o.NumberFormat &&
		sameAlignment(f, o) &&
		f.Locked == o.Locked &&
		f.Hidden == o.Hidden &&
		f.Lotus123Prefix == o.Lotus123Prefix &&
		f.IsStyle == o.IsStyle &&
		f.NotNullParentStyle() == o.NotNullParentStyle() &&
		f.LinkedStyle.SameData(&o.LinkedStyle)
}

func (f *Format) Hash() uint64 {
	h := newHasher()
	f.Font.hash(h)
	f.Borders.hash(h)
	f.FillPattern.hash(h)
	h.string(f.NumberFormat)
	h.byte(byte(f.HAlignment))
	h.byte(byte(f.VAlignment))
	h.bool(f.Locked)
	h.bool(f.Hidden)
	h.bool(f.WrapText)
	h.bool(f.ShrinkToFit)
	h.byte(f.Rotation)
	h.byte(f.Indent)
	h.bool(f.Lotus123Prefix)
	h.bool(f.IsStyle)
	h.string(f.NotNullParentStyle())
	f.LinkedStyle.hash(h)
	return h.sum()
}

func (f *Format) String() string {
	kind := "format"
	if f.IsStyle {
		kind = "style"
	}
	return fmt.Sprintf("%s{font: %s %gpt %s, numfmt: %q, align: %s/%s, fill: %s, parent: %s}",
		kind, f.Font.Name, f.Font.SizePoints(), f.Font.Style,
		f.NumberFormat, f.HAlignment, f.VAlignment, f.FillPattern.Pattern, f.NotNullParentStyle())
}
