package xlstyle

// LinkedStyle records which property groups of a cell format are read from
// its parent style instead of from the cell format itself.
//
// When AutomaticChoose is set, the groups are worked out by comparing the cell
// format with its parent at the moment the format is stored in a Catalog.
type LinkedStyle struct {
	AutomaticChoose     bool
	LinkedNumericFormat bool
	LinkedFont          bool
	LinkedAlignment     bool
	LinkedBorder        bool
	LinkedFill          bool
	LinkedProtection    bool
}

// NewLinkedStyle returns a descriptor that lets the catalog choose the linked
// groups.
func NewLinkedStyle() LinkedStyle {
	return LinkedStyle{AutomaticChoose: true}
}

// SameData reports whether both descriptors hold the same flags.
func (l *LinkedStyle) SameData(o *LinkedStyle) bool {
	return *l == *o
}

// Assign copies the flags of src into l.
func (l *LinkedStyle) Assign(src *LinkedStyle) {
	*l = *src
}

// LinkAll marks every group as linked or not linked.
func (l *LinkedStyle) LinkAll(linked bool) {
	l.LinkedNumericFormat = linked
	l.LinkedFont = linked
	l.LinkedAlignment = linked
	l.LinkedBorder = linked
	l.LinkedFill = linked
	l.LinkedProtection = linked
}

// InferLinkedStyle links every group in which cell and parent agree.
// AutomaticChoose is kept from the cell.
func InferLinkedStyle(cell, parent *Format) LinkedStyle {
	return LinkedStyle{
		AutomaticChoose:     cell.LinkedStyle.AutomaticChoose,
		LinkedNumericFormat: cell.NumberFormat == parent.NumberFormat,
		LinkedFont:          cell.Font.Equal(&parent.Font),
		LinkedAlignment:     sameAlignment(cell, parent),
		LinkedBorder:        cell.Borders.Equal(&parent.Borders),
		LinkedFill:          cell.FillPattern.Equal(&parent.FillPattern),
		LinkedProtection:    cell.Locked == parent.Locked && cell.Hidden == parent.Hidden,
	}
}

func sameAlignment(a, b *Format) bool {
	return a.HAlignment == b.HAlignment &&
		a.VAlignment == b.VAlignment &&
		a.WrapText == b.WrapText &&
		a.ShrinkToFit == b.ShrinkToFit &&
		a.Rotation == b.Rotation &&
		a.Indent == b.Indent
}

func (l *LinkedStyle) hash(h *hasher) {
	h.bool(l.AutomaticChoose)
	h.bool(l.LinkedNumericFormat)
	h.bool(l.LinkedFont)
	h.bool(l.LinkedAlignment)
	h.bool(l.LinkedBorder)
	h.bool(l.LinkedFill)
	h.bool(l.LinkedProtection)
}
