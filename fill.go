package xlstyle

// PatternStyle is the fill pattern of a cell.
type PatternStyle byte

const (
	PatternAutomatic PatternStyle = iota
	PatternNone
	PatternSolid
	PatternGray50
	PatternGray75
	PatternGray25
	PatternHorizontal
	PatternVertical
	PatternDown
	PatternUp
	PatternCheckers
	PatternSemiGray75
	PatternLightHorizontal
	PatternLightVertical
	PatternLightDown
	PatternLightUp
	PatternGrid
	PatternCrissCross
	PatternGray16
	PatternGray8
	PatternGradient
)

// ooxml patternType names, indexed by PatternStyle
var patternNames = [...]string{
	"", "none", "solid", "mediumGray", "darkGray", "lightGray",
	"darkHorizontal", "darkVertical", "darkDown", "darkUp", "darkGrid", "darkTrellis",
	"lightHorizontal", "lightVertical", "lightDown", "lightUp", "lightGrid", "lightTrellis",
	"gray125", "gray0625", "",
}

// String returns the OOXML patternType name. Automatic and gradient patterns
// have no patternType.
func (p PatternStyle) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return ""
}

// ParsePatternStyle maps an OOXML patternType name back to its value.
func ParsePatternStyle(name string) PatternStyle {
	if name == "" {
		return PatternNone
	}
	for i, n := range patternNames {
		if n == name {
			return PatternStyle(i)
		}
	}
	return PatternNone
}

// FillPattern is the background of a cell. FgColor only matters for solid
// and hatch patterns, BgColor only for non-solid ones.
type FillPattern struct {
	Pattern PatternStyle
	FgColor Color
	BgColor Color

	gradient *Gradient
}

// NewSolidFill returns a solid fill of the given color.
func NewSolidFill(c Color) FillPattern {
	return FillPattern{Pattern: PatternSolid, FgColor: c, BgColor: ColorAutomatic()}
}

// Gradient returns the gradient definition, or nil when the pattern is not
// PatternGradient.
func (f *FillPattern) Gradient() *Gradient {
	if f.Pattern != PatternGradient {
		return nil
	}
	return f.gradient
}

// SetGradient stores a copy of g. A non-nil gradient switches the pattern to
// PatternGradient.
func (f *FillPattern) SetGradient(g *Gradient) {
	f.gradient = g.Clone()
	if g != nil {
		f.Pattern = PatternGradient
	}
}

func (f *FillPattern) Clone() *FillPattern {
	c := *f
	c.gradient = f.Gradient().Clone()
	return &c
}

// Equal compares two fills by their visible effect: None fills are all
// equal, Solid fills ignore BgColor and Gradient fills compare the gradients.
func (f *FillPattern) Equal(o *FillPattern) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.Pattern != o.Pattern {
		return false
	}
	switch f.Pattern {
	case PatternNone:
		return true
	case PatternSolid:
		return f.FgColor == o.FgColor
	case PatternGradient:
		return f.Gradient().Equal(o.Gradient())
	}
	return f.FgColor == o.FgColor && f.BgColor == o.BgColor
}

func (f *FillPattern) Hash() uint64 {
	h := newHasher()
	f.hash(h)
	return h.sum()
}

func (f *FillPattern) hash(h *hasher) {
	h.byte(byte(f.Pattern))
	switch f.Pattern {
	case PatternNone:
	case PatternSolid:
		h.color(f.FgColor)
	case PatternGradient:
		if g := f.Gradient(); g != nil {
			h.byte(byte(g.Kind))
			h.float(g.Angle)
			h.int(len(g.Stops))
			for _, s := range g.Stops {
				h.float(s.Position)
				h.color(s.Color)
			}
		}
	default:
		h.color(f.FgColor)
		h.color(f.BgColor)
	}
}
