package xlstyle

// XF type bits shared by BIFF5 and BIFF8.
const (
	xfLocked     = 0x0001
	xfHidden     = 0x0002
	xfStyle      = 0x0004
	xfLotus      = 0x0008
	xfParentMask = 0xFFF0
	xfNoParent   = 0x0FFF
)

// used-attribute flags, in the order both versions store them
const (
	atrNum = 1 << iota
	atrFnt
	atrAlc
	atrBdr
	atrPat
	atrProt
)

// Xf5 is the XF record of BIFF5/BIFF7 workbooks.
type Xf5 struct {
	Font   uint16
	Format uint16
	Type   uint16
	Align  uint16
	Fill   uint32
	Border uint32
}

// Xf8 is the XF record of BIFF8 workbooks.
type Xf8 struct {
	Font        uint16
	Format      uint16
	Type        uint16
	Align       byte
	Rotation    byte
	Ident       byte
	UsedAttr    byte
	LineStyle   uint32
	LineColor   uint32
	GroundColor uint16
}

type xfRecord interface {
	fontNo() uint16
	formatNo() uint16
	typeFlags() uint16
	usedAttr() byte
	decode(f *Format)
}

func (x *Xf5) fontNo() uint16    { return x.Font }
func (x *Xf5) formatNo() uint16  { return x.Format }
func (x *Xf5) typeFlags() uint16 { return x.Type }
func (x *Xf5) usedAttr() byte    { return byte(x.Align >> 10) }

func (x *Xf5) decode(f *Format) {
	f.HAlignment = HAlign(x.Align & 0x7)
	f.WrapText = x.Align&0x8 != 0
	f.VAlignment = VAlign(x.Align >> 4 & 0x7)
	switch x.Align >> 8 & 0x3 {
	case 1:
		f.Rotation = RotationVertical
	case 2:
		f.Rotation = 90
	case 3:
		f.Rotation = 180
	}

	f.FillPattern.FgColor = colorFromIcv(int(x.Fill & 0x7F))
	f.FillPattern.BgColor = colorFromIcv(int(x.Fill >> 7 & 0x7F))
	f.FillPattern.Pattern = patternFromFls(int(x.Fill >> 16 & 0x3F))

	f.Borders.Bottom = OneBorder{BorderStyle(x.Fill >> 22 & 0x7), colorFromIcv(int(x.Fill >> 25 & 0x7F))}
	f.Borders.Top = OneBorder{BorderStyle(x.Border & 0x7), colorFromIcv(int(x.Border >> 9 & 0x7F))}
	f.Borders.Left = OneBorder{BorderStyle(x.Border >> 3 & 0x7), colorFromIcv(int(x.Border >> 16 & 0x7F))}
	f.Borders.Right = OneBorder{BorderStyle(x.Border >> 6 & 0x7), colorFromIcv(int(x.Border >> 23 & 0x7F))}
}

func (x *Xf8) fontNo() uint16    { return x.Font }
func (x *Xf8) formatNo() uint16  { return x.Format }
func (x *Xf8) typeFlags() uint16 { return x.Type }
func (x *Xf8) usedAttr() byte    { return x.UsedAttr >> 2 }

func (x *Xf8) decode(f *Format) {
	f.HAlignment = HAlign(x.Align & 0x7)
	f.WrapText = x.Align&0x8 != 0
	f.VAlignment = VAlign(x.Align >> 4 & 0x7)
	f.Rotation = x.Rotation
	f.Indent = x.Ident & 0xF
	f.ShrinkToFit = x.Ident&0x10 != 0

	f.Borders.Left = OneBorder{BorderStyle(x.LineStyle & 0xF), colorFromIcv(int(x.LineStyle >> 16 & 0x7F))}
	f.Borders.Right = OneBorder{BorderStyle(x.LineStyle >> 4 & 0xF), colorFromIcv(int(x.LineStyle >> 23 & 0x7F))}
	f.Borders.Top = OneBorder{BorderStyle(x.LineStyle >> 8 & 0xF), colorFromIcv(int(x.LineColor & 0x7F))}
	f.Borders.Bottom = OneBorder{BorderStyle(x.LineStyle >> 12 & 0xF), colorFromIcv(int(x.LineColor >> 7 & 0x7F))}
	f.Borders.DiagonalStyle = DiagonalStyle(x.LineStyle >> 30 & 0x3)
	f.Borders.Diagonal = OneBorder{BorderStyle(x.LineColor >> 21 & 0xF), colorFromIcv(int(x.LineColor >> 14 & 0x7F))}

	f.FillPattern.Pattern = patternFromFls(int(x.LineColor >> 26 & 0x3F))
	f.FillPattern.FgColor = colorFromIcv(int(x.GroundColor & 0x7F))
	f.FillPattern.BgColor = colorFromIcv(int(x.GroundColor >> 7 & 0x7F))
}

// colorFromIcv maps a BIFF color index. System colors (64 and up) are the
// automatic window colors.
func colorFromIcv(icv int) Color {
	if icv >= 64 {
		return ColorAutomatic()
	}
	return ColorFromIndex(icv)
}

// patternFromFls maps the BIFF fill pattern number (0 = none, 1 = solid,
// 2..18 hatches) onto PatternStyle.
func patternFromFls(fls int) PatternStyle {
	if fls < 0 || fls > 18 {
		return PatternNone
	}
	return PatternStyle(fls + int(PatternNone))
}

// linkedStyleFromAttr converts the used-attribute bits of a cell XF. A set
// bit means the cell overrides that group of its parent style.
func linkedStyleFromAttr(attr byte) LinkedStyle {
	return LinkedStyle{
		LinkedNumericFormat: attr&atrNum == 0,
		LinkedFont:          attr&atrFnt == 0,
		LinkedAlignment:     attr&atrAlc == 0,
		LinkedBorder:        attr&atrBdr == 0,
		LinkedFill:          attr&atrPat == 0,
		LinkedProtection:    attr&atrProt == 0,
	}
}
