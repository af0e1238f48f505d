package xlstyle

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var excelizeBorderSides = [...]string{"left", "right", "top", "bottom"}

// excelize gradient shading variants: 0 horizontal, 1 vertical,
// 2 diagonal up, 3 diagonal down, 4 from corner, 5 from center
var shadingAngles = [...]float64{90, 0, 45, 135}

const (
	shadingFromCorner = 4
	shadingFromCenter = 5
)

// ExcelizeStyle converts f to an excelize style. Indexed and theme colors
// are resolved to RGB through palette; automatic colors are left out.
func ExcelizeStyle(f *Format, palette *Palette) *excelize.Style {
	s := &excelize.Style{
		Font: &excelize.Font{
			Bold:   f.Font.Style.Has(FontBold),
			Italic: f.Font.Style.Has(FontItalic),
			Strike: f.Font.Style.Has(FontStrikeOut),
			Family: f.Font.Name,
			Size:   f.Font.SizePoints(),
			Color:  hexColor(f.Font.Color, palette),
		},
		Alignment: &excelize.Alignment{
			Horizontal:   f.HAlignment.String(),
			Vertical:     f.VAlignment.String(),
			WrapText:     f.WrapText,
			ShrinkToFit:  f.ShrinkToFit,
			TextRotation: int(f.Rotation),
			Indent:       int(f.Indent),
		},
		Protection: &excelize.Protection{
			Locked: f.Locked,
			Hidden: f.Hidden,
		},
	}
	if f.Font.Underline != UnderlineNone {
		s.Font.Underline = f.Font.Underline.String()
	}
	switch {
	case f.Font.Style.Has(FontSuperscript):
		s.Font.VertAlign = "superscript"
	case f.Font.Style.Has(FontSubscript):
		s.Font.VertAlign = "subscript"
	}

	if id, ok := BuiltinNumberFormatID(f.NumberFormat); ok {
		s.NumFmt = int(id)
	} else {
		numFmt := f.NumberFormat
		s.CustomNumFmt = &numFmt
	}

	for i, b := range []OneBorder{f.Borders.Left, f.Borders.Right, f.Borders.Top, f.Borders.Bottom} {
		if b.Style == BorderNone {
			continue
		}
		s.Border = append(s.Border, excelize.Border{
			Type:  excelizeBorderSides[i],
			Color: hexColorOr(b.Color, palette, "000000"),
			Style: int(b.Style),
		})
	}
	if d := f.Borders.Diagonal; d.Style != BorderNone {
		for _, side := range diagonalSides(f.Borders.DiagonalStyle) {
			s.Border = append(s.Border, excelize.Border{
				Type:  side,
				Color: hexColorOr(d.Color, palette, "000000"),
				Style: int(d.Style),
			})
		}
	}

	s.Fill = excelizeFill(&f.FillPattern, palette)
	return s
}

func diagonalSides(d DiagonalStyle) []string {
	switch d {
	case DiagonalDown:
		return []string{"diagonalDown"}
	case DiagonalUp:
		return []string{"diagonalUp"}
	case DiagonalBoth:
		return []string{"diagonalDown", "diagonalUp"}
	}
	return nil
}

func excelizeFill(fp *FillPattern, palette *Palette) excelize.Fill {
	switch fp.Pattern {
	case PatternAutomatic, PatternNone:
		return excelize.Fill{}
	case PatternGradient:
		g := fp.Gradient()
		if g == nil || len(g.Stops) == 0 {
			return excelize.Fill{}
		}
		first, last := g.Stops[0].Color, g.Stops[len(g.Stops)-1].Color
		fill := excelize.Fill{
			Type:  "gradient",
			Color: []string{hexColorOr(first, palette, "FFFFFF"), hexColorOr(last, palette, "FFFFFF")},
		}
		if g.Kind == GradientRectangular {
			fill.Shading = shadingFromCorner
			if g.Left > 0 || g.Top > 0 {
				fill.Shading = shadingFromCenter
			}
			return fill
		}
		for i, a := range shadingAngles {
			if a == g.Angle {
				fill.Shading = i
			}
		}
		return fill
	}
	return excelize.Fill{
		Type:    "pattern",
		Pattern: int(fp.Pattern - PatternNone),
		Color:   []string{hexColorOr(fp.FgColor, palette, "000000")},
	}
}

func hexColor(c Color, palette *Palette) string {
	rgb, ok := c.Resolve(palette)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%06X", rgb)
}

func hexColorOr(c Color, palette *Palette, fallback string) string {
	if s := hexColor(c, palette); s != "" {
		return s
	}
	return fallback
}

func colorFromHex(s string) Color {
	if c, ok := ParseARGB(s); ok {
		return c
	}
	return ColorAutomatic()
}

// FormatFromExcelize converts an excelize style. Parts the style leaves out
// keep the values of the Excel 2007 standard format.
func FormatFromExcelize(s *excelize.Style) *Format {
	f := CreateStandard2007()
	if s == nil {
		return f
	}
	if s.Font != nil {
		font := &f.Font
		if s.Font.Family != "" {
			font.Name = s.Font.Family
			font.Scheme = FontSchemeNone
		}
		if s.Font.Size > 0 {
			font.Size20 = int(s.Font.Size*20 + 0.5)
		}
		switch {
		case s.Font.ColorTheme != nil:
			font.Color = ColorFromTheme(ThemeColor(*s.Font.ColorTheme), s.Font.ColorTint)
		case s.Font.Color != "":
			font.Color = colorFromHex(s.Font.Color)
		}
		for _, m := range []struct {
			on    bool
			style FontStyle
		}{
			{s.Font.Bold, FontBold},
			{s.Font.Italic, FontItalic},
			{s.Font.Strike, FontStrikeOut},
			{s.Font.VertAlign == "superscript", FontSuperscript},
			{s.Font.VertAlign == "subscript", FontSubscript},
		} {
			if m.on {
				font.Style |= m.style
			}
		}
		font.Underline = parseUnderline(s.Font.Underline)
	}

	switch {
	case s.CustomNumFmt != nil:
		f.NumberFormat = *s.CustomNumFmt
	default:
		f.NumberFormat, _ = BuiltinNumberFormat(uint16(s.NumFmt))
	}

	if a := s.Alignment; a != nil {
		f.HAlignment = ParseHAlign(a.Horizontal)
		if a.Vertical != "" {
			f.VAlignment = ParseVAlign(a.Vertical)
		}
		f.WrapText = a.WrapText
		f.ShrinkToFit = a.ShrinkToFit
		if a.TextRotation >= 0 && a.TextRotation <= 255 {
			f.Rotation = byte(a.TextRotation)
		}
		if a.Indent >= 0 && a.Indent <= 255 {
			f.Indent = byte(a.Indent)
		}
	}
	if p := s.Protection; p != nil {
		f.Locked = p.Locked
		f.Hidden = p.Hidden
	}

	for _, b := range s.Border {
		one := OneBorder{Style: BorderStyle(b.Style), Color: colorFromHex(b.Color)}
		switch b.Type {
		case "left":
			f.Borders.Left = one
		case "right":
			f.Borders.Right = one
		case "top":
			f.Borders.Top = one
		case "bottom":
			f.Borders.Bottom = one
		case "diagonalDown":
			f.Borders.Diagonal = one
			f.Borders.DiagonalStyle |= DiagonalDown
		case "diagonalUp":
			f.Borders.Diagonal = one
			f.Borders.DiagonalStyle |= DiagonalUp
		}
	}

	f.FillPattern = fillFromExcelize(s.Fill)
	return f
}

func parseUnderline(name string) UnderlineKind {
	for u := UnderlineSingle; u <= UnderlineDoubleAccounting; u++ {
		if u.String() == name {
			return u
		}
	}
	return UnderlineNone
}

func fillFromExcelize(fill excelize.Fill) FillPattern {
	fp := FillPattern{Pattern: PatternNone}
	switch fill.Type {
	case "pattern":
		if fill.Pattern <= 0 || fill.Pattern > int(PatternGray8-PatternNone) {
			return fp
		}
		fp.Pattern = PatternStyle(fill.Pattern) + PatternNone
		if len(fill.Color) > 0 {
			fp.FgColor = colorFromHex(fill.Color[0])
		}
	case "gradient":
		if len(fill.Color) < 2 {
			return fp
		}
		from, to := colorFromHex(fill.Color[0]), colorFromHex(fill.Color[1])
		switch {
		case fill.Shading >= 0 && fill.Shading < len(shadingAngles):
			fp.SetGradient(NewLinearGradient(shadingAngles[fill.Shading], from, to))
		case fill.Shading == shadingFromCorner || fill.Shading == shadingFromCenter:
			g := &Gradient{
				Kind:  GradientRectangular,
				Stops: []GradientStop{{Position: 0, Color: from}, {Position: 1, Color: to}},
			}
			if fill.Shading == shadingFromCenter {
				g.Left, g.Right, g.Top, g.Bottom = 0.5, 0.5, 0.5, 0.5
			}
			fp.SetGradient(g)
		}
	}
	return fp
}

// WriteExcelize registers the resolved form of every format with file and
// returns the excelize style id of each format index.
func (c *Catalog) WriteExcelize(file *excelize.File) ([]int, error) {
	ids := make([]int, len(c.formats))
	for i := range c.formats {
		id, err := file.NewStyle(ExcelizeStyle(c.ResolvedFormat(i), c.palette))
		if err != nil {
			return nil, errors.Wrapf(err, "xlstyle: register format %d", i)
		}
		ids[i] = id
	}
	c.log.Debug("formats written to excelize", zap.Int("formats", len(ids)))
	return ids, nil
}

// XlsxWorkBook holds the cell formats of an xlsx file.
type XlsxWorkBook struct {
	catalog *Catalog
	sheets  []string
	cells   map[string]map[string]int
}

// OpenXlsx reads the style of every cell inside the used range of each
// sheet. Cells with the default style are not recorded.
func OpenXlsx(path string, cfg Config, opts ...Option) (*XlsxWorkBook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "xlstyle: open xlsx")
	}
	defer file.Close()

	c := NewCatalog(cfg, opts...)
	c.fileVersion = Excel2007
	c.clearFormats()
	wb := &XlsxWorkBook{
		catalog: c,
		sheets:  file.GetSheetList(),
		cells:   make(map[string]map[string]int),
	}
	def, err := file.GetStyle(0)
	if err != nil {
		return nil, errors.Wrap(err, "xlstyle: default style")
	}
	byStyle := map[int]int{0: c.AddFormat(FormatFromExcelize(def))}
	for _, sheet := range wb.sheets {
		dim, err := file.GetSheetDimension(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "xlstyle: sheet %q dimension", sheet)
		}
		fromCol, fromRow, toCol, toRow, err := parseRange(dim)
		if err != nil {
			c.log.Warn("skipping sheet with unreadable dimension", zap.String("sheet", sheet), zap.String("dimension", dim))
			continue
		}
		cells := make(map[string]int)
		for row := fromRow; row <= toRow; row++ {
			for col := fromCol; col <= toCol; col++ {
				name, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return nil, errors.WithStack(err)
				}
				styleID, err := file.GetCellStyle(sheet, name)
				if err != nil {
					return nil, errors.Wrapf(err, "xlstyle: style of %s!%s", sheet, name)
				}
				if styleID == 0 {
					continue
				}
				index, ok := byStyle[styleID]
				if !ok {
					style, err := file.GetStyle(styleID)
					if err != nil {
						return nil, errors.Wrapf(err, "xlstyle: style %d", styleID)
					}
					index = c.AddFormat(FormatFromExcelize(style))
					byStyle[styleID] = index
				}
				cells[name] = index
			}
		}
		wb.cells[sheet] = cells
	}
	c.log.Debug("xlsx styles read", zap.Int("sheets", len(wb.sheets)), zap.Int("styles", len(byStyle)))
	return wb, nil
}

func parseRange(ref string) (fromCol, fromRow, toCol, toRow int, err error) {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		to = from
	}
	if fromCol, fromRow, err = excelize.CellNameToCoordinates(from); err != nil {
		return
	}
	toCol, toRow, err = excelize.CellNameToCoordinates(to)
	return
}

func (w *XlsxWorkBook) Catalog() *Catalog {
	return w.catalog
}

func (w *XlsxWorkBook) Sheets() []string {
	return w.sheets
}

// FormatIndex returns the format index of a cell such as "B3". Cells without
// a recorded style use format 0.
func (w *XlsxWorkBook) FormatIndex(sheet, cell string) int {
	return w.cells[sheet][strings.ToUpper(cell)]
}
