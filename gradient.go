package xlstyle

// GradientKind selects how gradient stops are laid out.
type GradientKind byte

const (
	GradientLinear GradientKind = iota
	GradientRectangular
)

// GradientStop is a color at a relative position (0..1) of a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient describes a gradient fill. Linear gradients use Angle, rectangular
// ones use the Left/Right/Top/Bottom convergence box.
type Gradient struct {
	Kind   GradientKind
	Angle  float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Stops  []GradientStop
}

// NewLinearGradient returns a two-stop linear gradient.
func NewLinearGradient(angle float64, from, to Color) *Gradient {
	return &Gradient{
		Kind:  GradientLinear,
		Angle: angle,
		Stops: []GradientStop{{Position: 0, Color: from}, {Position: 1, Color: to}},
	}
}

// Clone returns an independent copy. Cloning nil yields nil.
func (g *Gradient) Clone() *Gradient {
	if g == nil {
		return nil
	}
	c := *g
	if g.Stops != nil {
		c.Stops = make([]GradientStop, len(g.Stops))
		copy(c.Stops, g.Stops)
	}
	return &c
}

// Equal compares two gradients structurally. Two nil gradients are equal.
func (g *Gradient) Equal(o *Gradient) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Kind != o.Kind || g.Angle != o.Angle ||
		g.Left != o.Left || g.Right != o.Right || g.Top != o.Top || g.Bottom != o.Bottom {
		return false
	}
	if len(g.Stops) != len(o.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return true
}
