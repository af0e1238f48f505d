package xlstyle

import (
	"fmt"
	"math"

	"github.com/tealeg/xlsx"
)

// XlsxStyle projects f onto a tealeg/xlsx style. The xlsx style model has no
// diagonal borders, gradients, protection or number formats; those parts are
// dropped.
func XlsxStyle(f *Format, palette *Palette) *xlsx.Style {
	s := xlsx.NewStyle()

	s.Font = xlsx.Font{
		Size:      int(math.Round(f.Font.SizePoints())),
		Name:      f.Font.Name,
		Family:    int(f.Font.Family),
		Charset:   int(f.Font.CharSet),
		Color:     argbColor(f.Font.Color, palette),
		Bold:      f.Font.Style.Has(FontBold),
		Italic:    f.Font.Style.Has(FontItalic),
		Underline: f.Font.Underline != UnderlineNone,
	}
	s.ApplyFont = true

	s.Border = xlsx.Border{
		Left:        borderName(f.Borders.Left),
		LeftColor:   argbColor(f.Borders.Left.Color, palette),
		Right:       borderName(f.Borders.Right),
		RightColor:  argbColor(f.Borders.Right.Color, palette),
		Top:         borderName(f.Borders.Top),
		TopColor:    argbColor(f.Borders.Top.Color, palette),
		Bottom:      borderName(f.Borders.Bottom),
		BottomColor: argbColor(f.Borders.Bottom.Color, palette),
	}
	s.ApplyBorder = f.Borders.HasBorders()

	switch f.FillPattern.Pattern {
	case PatternAutomatic, PatternNone, PatternGradient:
		s.Fill = xlsx.Fill{PatternType: "none"}
	default:
		s.Fill = xlsx.Fill{
			PatternType: f.FillPattern.Pattern.String(),
			FgColor:     argbColor(f.FillPattern.FgColor, palette),
			BgColor:     argbColor(f.FillPattern.BgColor, palette),
		}
		s.ApplyFill = true
	}

	s.Alignment = xlsx.Alignment{
		Horizontal:   f.HAlignment.String(),
		Vertical:     f.VAlignment.String(),
		WrapText:     f.WrapText,
		ShrinkToFit:  f.ShrinkToFit,
		TextRotation: int(f.Rotation),
		Indent:       int(f.Indent),
	}
	s.ApplyAlignment = true
	return s
}

func borderName(b OneBorder) string {
	if b.Style == BorderNone {
		return ""
	}
	return b.Style.String()
}

func argbColor(c Color, palette *Palette) string {
	rgb, ok := c.Resolve(palette)
	if !ok {
		return ""
	}
	return fmt.Sprintf("FF%06X", rgb)
}

// FormatFromXlsxStyle converts a tealeg/xlsx style. Groups whose Apply flag
// is off keep the values of the Excel 2007 standard format.
func FormatFromXlsxStyle(s *xlsx.Style) *Format {
	f := CreateStandard2007()
	if s == nil {
		return f
	}
	if s.ApplyFont {
		f.Font = Font{
			Name:    s.Font.Name,
			Size20:  s.Font.Size * 20,
			Color:   colorFromHex(s.Font.Color),
			Family:  byte(s.Font.Family),
			CharSet: byte(s.Font.Charset),
		}
		if s.Font.Bold {
			f.Font.Style |= FontBold
		}
		if s.Font.Italic {
			f.Font.Style |= FontItalic
		}
		if s.Font.Underline {
			f.Font.Underline = UnderlineSingle
		}
	}
	if s.ApplyBorder {
		f.Borders.Left = OneBorder{ParseBorderStyle(s.Border.Left), colorFromHex(s.Border.LeftColor)}
		f.Borders.Right = OneBorder{ParseBorderStyle(s.Border.Right), colorFromHex(s.Border.RightColor)}
		f.Borders.Top = OneBorder{ParseBorderStyle(s.Border.Top), colorFromHex(s.Border.TopColor)}
		f.Borders.Bottom = OneBorder{ParseBorderStyle(s.Border.Bottom), colorFromHex(s.Border.BottomColor)}
	}
	if s.ApplyFill {
		f.FillPattern = FillPattern{
			Pattern: ParsePatternStyle(s.Fill.PatternType),
			FgColor: colorFromHex(s.Fill.FgColor),
			BgColor: colorFromHex(s.Fill.BgColor),
		}
	}
	if s.ApplyAlignment {
		f.HAlignment = ParseHAlign(s.Alignment.Horizontal)
		f.VAlignment = ParseVAlign(s.Alignment.Vertical)
		f.WrapText = s.Alignment.WrapText
		f.ShrinkToFit = s.Alignment.ShrinkToFit
		if r := s.Alignment.TextRotation; r >= 0 && r <= 255 {
			f.Rotation = byte(r)
		}
		if i := s.Alignment.Indent; i >= 0 && i <= 255 {
			f.Indent = byte(i)
		}
	}
	return f
}
