package xlstyle

// BorderStyle is the line style of one border. Values follow the BIFF
// encoding, so they can be stored in records unchanged.
type BorderStyle byte

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantedDashDot
)

var borderStyleNames = [...]string{
	"none", "thin", "medium", "dashed", "dotted", "thick", "double", "hair",
	"mediumDashed", "dashDot", "mediumDashDot", "dashDotDot", "mediumDashDotDot", "slantDashDot",
}

// String returns the OOXML name of the style.
func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return "none"
}

// ParseBorderStyle maps an OOXML border style name back to its value.
func ParseBorderStyle(name string) BorderStyle {
	for i, n := range borderStyleNames {
		if n == name {
			return BorderStyle(i)
		}
	}
	return BorderNone
}

// DiagonalStyle selects which diagonal lines are drawn.
type DiagonalStyle byte

const (
	DiagonalNone DiagonalStyle = iota
	DiagonalDown
	DiagonalUp
	DiagonalBoth
)

// OneBorder is a single border line.
type OneBorder struct {
	Style BorderStyle
	Color Color
}

// Equal compares two borders. A BorderNone border has no color, so two of
// them are always equal.
func (b OneBorder) Equal(o OneBorder) bool {
	if b.Style != o.Style {
		return false
	}
	return b.Style == BorderNone || b.Color == o.Color
}

func (b OneBorder) hash(h *hasher) {
	h.byte(byte(b.Style))
	if b.Style != BorderNone {
		h.color(b.Color)
	}
}

// Borders are the four side borders of a cell plus its diagonal.
type Borders struct {
	Left          OneBorder
	Right         OneBorder
	Top           OneBorder
	Bottom        OneBorder
	Diagonal      OneBorder
	DiagonalStyle DiagonalStyle
}

// SetAllBorders sets the four side borders. The diagonal is not touched.
func (b *Borders) SetAllBorders(style BorderStyle, color Color) {
	one := OneBorder{Style: style, Color: color}
	b.Left = one
	b.Right = one
	b.Top = one
	b.Bottom = one
}

// HasBorders reports whether any line would be drawn.
func (b *Borders) HasBorders() bool {
	return b.Left.Style != BorderNone || b.Right.Style != BorderNone ||
		b.Top.Style != BorderNone || b.Bottom.Style != BorderNone ||
		(b.DiagonalStyle != DiagonalNone && b.Diagonal.Style != BorderNone)
}

func (b *Borders) Clone() *Borders {
	c := *b
	return &c
}

func (b *Borders) Equal(o *Borders) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Left.Equal(o.Left) &&
		b.Right.Equal(o.Right) &&
		b.Top.Equal(o.Top) &&
		b.Bottom.Equal(o.Bottom) &&
		b.Diagonal.Equal(o.Diagonal) &&
		b.DiagonalStyle == o.DiagonalStyle
}

func (b *Borders) Hash() uint64 {
	h := newHasher()
	b.hash(h)
	return h.sum()
}

func (b *Borders) hash(h *hasher) {
	b.Left.hash(h)
	b.Right.hash(h)
	b.Top.hash(h)
	b.Bottom.hash(h)
	b.Diagonal.hash(h)
	h.byte(byte(b.DiagonalStyle))
}
