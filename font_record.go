package xlstyle

// FontInfo is the fixed part of a FONT record; the name follows it.
type FontInfo struct {
	Height     uint16
	Flag       uint16
	Color      uint16
	Bold       uint16
	Escapement uint16
	Underline  byte
	Family     byte
	Charset    byte
	Notused    byte
	NameB      byte
}

const (
	fontFlagItalic    = 0x0002
	fontFlagStrikeOut = 0x0008
	fontFlagOutline   = 0x0010
	fontFlagShadow    = 0x0020
	fontFlagCondense  = 0x0040
	fontFlagExtend    = 0x0080

	fontWeightBold = 700
)

func (fi *FontInfo) font(name string) Font {
	f := Font{
		Name:    name,
		Size20:  int(fi.Height),
		Color:   colorFromIcv(int(fi.Color)),
		Family:  fi.Family,
		CharSet: fi.Charset,
	}
	if fi.Bold >= fontWeightBold {
		f.Style |= FontBold
	}
	for _, m := range []struct {
		flag  uint16
		style FontStyle
	}{
		{fontFlagItalic, FontItalic},
		{fontFlagStrikeOut, FontStrikeOut},
		{fontFlagOutline, FontOutline},
		{fontFlagShadow, FontShadow},
		{fontFlagCondense, FontCondense},
		{fontFlagExtend, FontExtend},
	} {
		if fi.Flag&m.flag != 0 {
			f.Style |= m.style
		}
	}
	switch fi.Escapement {
	case 1:
		f.Style |= FontSuperscript
	case 2:
		f.Style |= FontSubscript
	}
	switch fi.Underline {
	case 0x01:
		f.Underline = UnderlineSingle
	case 0x02:
		f.Underline = UnderlineDouble
	case 0x21:
		f.Underline = UnderlineSingleAccounting
	case 0x22:
		f.Underline = UnderlineDoubleAccounting
	}
	return f
}
