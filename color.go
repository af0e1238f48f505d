package xlstyle

import (
	"fmt"
	"strconv"
)

// ColorKind tells how a Color value is encoded.
type ColorKind byte

const (
	ColorKindAutomatic ColorKind = iota
	ColorKindRGB
	ColorKindIndexed
	ColorKindTheme
)

// ThemeColor is an index into the workbook theme color scheme.
type ThemeColor byte

const (
	ThemeBackground1 ThemeColor = iota
	ThemeForeground1
	ThemeBackground2
	ThemeForeground2
	ThemeAccent1
	ThemeAccent2
	ThemeAccent3
	ThemeAccent4
	ThemeAccent5
	ThemeAccent6
	ThemeHyperLink
	ThemeFollowedHyperLink
)

// Color is either automatic, a fixed RGB value, a palette index or a theme
// color with tint. Colors are comparable with ==.
type Color struct {
	kind  ColorKind
	rgb   uint32
	index int
	theme ThemeColor
	tint  float64
}

// ColorAutomatic returns the automatic (window text / window background) color.
func ColorAutomatic() Color {
	return Color{}
}

// ColorFromRGB returns a fixed RGB color.
func ColorFromRGB(r, g, b byte) Color {
	return Color{kind: ColorKindRGB, rgb: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// ColorFromIndex returns a color addressed by its raw BIFF palette index.
// Indexes 8..63 are palette entries, 64 and above mean system colors.
func ColorFromIndex(icv int) Color {
	return Color{kind: ColorKindIndexed, index: icv}
}

// ColorFromTheme returns a theme color. Tint is in the range -1..1.
func ColorFromTheme(theme ThemeColor, tint float64) Color {
	return Color{kind: ColorKindTheme, theme: theme, tint: tint}
}

func (c Color) Kind() ColorKind {
	return c.kind
}

func (c Color) IsAutomatic() bool {
	return c.kind == ColorKindAutomatic
}

// RGB returns the packed 0xRRGGBB value of an RGB color.
func (c Color) RGB() uint32 {
	return c.rgb
}

func (c Color) Index() int {
	return c.index
}

func (c Color) Theme() ThemeColor {
	return c.theme
}

func (c Color) Tint() float64 {
	return c.tint
}

// ARGB resolves the color to an "FFRRGGBB" string. Automatic and theme colors
// can't be resolved without a theme and return ok=false.
func (c Color) ARGB(palette *Palette) (string, bool) {
	switch c.kind {
	case ColorKindRGB:
		return fmt.Sprintf("FF%06X", c.rgb), true
	case ColorKindIndexed:
		if palette == nil {
			palette = DefaultPalette()
		}
		rgb, ok := palette.Lookup(c.index)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("FF%06X", rgb), true
	}
	return "", false
}

func (c Color) String() string {
	switch c.kind {
	case ColorKindRGB:
		return fmt.Sprintf("#%06X", c.rgb)
	case ColorKindIndexed:
		return fmt.Sprintf("indexed(%d)", c.index)
	case ColorKindTheme:
		if c.tint != 0 {
			return fmt.Sprintf("theme(%d,%g)", c.theme, c.tint)
		}
		return fmt.Sprintf("theme(%d)", c.theme)
	}
	return "automatic"
}

// ParseARGB parses "RRGGBB" or "AARRGGBB" (with an optional leading '#').
// The alpha channel is ignored.
func ParseARGB(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{kind: ColorKindRGB, rgb: uint32(v)}, true
}

// first palette entry is addressed by BIFF index 8
const paletteBase = 8

var defaultPaletteRGB = [56]uint32{
	0x000000, 0xFFFFFF, 0xFF0000, 0x00FF00, 0x0000FF, 0xFFFF00, 0xFF00FF, 0x00FFFF,
	0x800000, 0x008000, 0x000080, 0x808000, 0x800080, 0x008080, 0xC0C0C0, 0x808080,
	0x9999FF, 0x993366, 0xFFFFCC, 0xCCFFFF, 0x660066, 0xFF8080, 0x0066CC, 0xCCCCFF,
	0x000080, 0xFF00FF, 0xFFFF00, 0x00FFFF, 0x800080, 0x800000, 0x008080, 0x0000FF,
	0x00CCFF, 0xCCFFFF, 0xCCFFCC, 0xFFFF99, 0x99CCFF, 0xFF99CC, 0xCC99FF, 0xFFCC99,
	0x3366FF, 0x33CCCC, 0x99CC00, 0xFFCC00, 0xFF9900, 0xFF6600, 0x666699, 0x969696,
	0x003366, 0x339966, 0x003300, 0x333300, 0x993300, 0x993366, 0x333399, 0x333333,
}

// Palette maps BIFF color indexes to RGB values. A workbook PALETTE record
// replaces the default entries.
type Palette struct {
	colors [56]uint32
}

func DefaultPalette() *Palette {
	return &Palette{colors: defaultPaletteRGB}
}

// Lookup returns the RGB value for a BIFF color index. Indexes 0..7 are the
// fixed EGA colors that mirror the first eight palette entries.
func (p *Palette) Lookup(icv int) (uint32, bool) {
	switch {
	case icv >= 0 && icv < paletteBase:
		return defaultPaletteRGB[icv], true
	case icv >= paletteBase && icv < paletteBase+len(p.colors):
		return p.colors[icv-paletteBase], true
	}
	return 0, false
}

// Set replaces the palette entry for a BIFF color index.
func (p *Palette) Set(icv int, rgb uint32) {
	if icv >= paletteBase && icv < paletteBase+len(p.colors) {
		p.colors[icv-paletteBase] = rgb & 0xFFFFFF
	}
}

// NearestIndex finds the palette index closest to an RGB value, by euclidean
// distance.
func (p *Palette) NearestIndex(rgb uint32) int {
	best, bestMetric := paletteBase, 3*256*256+1
	r, g, b := int(rgb>>16&0xFF), int(rgb>>8&0xFF), int(rgb&0xFF)
	for i, cand := range p.colors {
		dr := r - int(cand>>16&0xFF)
		dg := g - int(cand>>8&0xFF)
		db := b - int(cand&0xFF)
		metric := dr*dr + dg*dg + db*db
		if metric < bestMetric {
			best, bestMetric = i+paletteBase, metric
			if metric == 0 {
				break
			}
		}
	}
	return best
}

// colors of the default Office theme, indexed by ThemeColor
var officeThemeRGB = [...]uint32{
	0xFFFFFF, 0x000000, 0xE7E6E6, 0x44546A, 0x4472C4, 0xED7D31,
	0xA5A5A5, 0xFFC000, 0x5B9BD5, 0x70AD47, 0x0563C1, 0x954F72,
}

// Resolve returns the RGB value of c. Theme colors are taken from the default
// Office theme with the tint applied. Automatic colors return ok=false.
func (c Color) Resolve(palette *Palette) (uint32, bool) {
	switch c.kind {
	case ColorKindRGB:
		return c.rgb, true
	case ColorKindIndexed:
		if palette == nil {
			palette = DefaultPalette()
		}
		return palette.Lookup(c.index)
	case ColorKindTheme:
		if int(c.theme) >= len(officeThemeRGB) {
			return 0, false
		}
		rgb := officeThemeRGB[c.theme]
		if c.tint == 0 {
			return rgb, true
		}
		var out uint32
		for shift := 16; shift >= 0; shift -= 8 {
			v := float64(rgb >> uint(shift) & 0xFF)
			if c.tint < 0 {
				v *= 1 + c.tint
			} else {
				v += (255 - v) * c.tint
			}
			out |= uint32(v+0.5) << uint(shift)
		}
		return out, true
	}
	return 0, false
}
