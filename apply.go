package xlstyle

// ApplyFont selects which font attributes an apply operation touches.
type ApplyFont struct {
	Name      bool
	Size20    bool
	Color     bool
	Style     bool
	Underline bool
	Family    bool
	CharSet   bool
	Scheme    bool
}

func (a *ApplyFont) SetAllMembers(value bool) {
	*a = ApplyFont{value, value, value, value, value, value, value, value}
}

func (a *ApplyFont) IsEmpty() bool {
	return *a == ApplyFont{}
}

// Apply copies the selected attributes of src into existing and reports
// whether any of them changed.
func (a *ApplyFont) Apply(existing, src *Font) bool {
	var changes ApplyFont
	a.apply(existing, src, &changes)
	return !changes.IsEmpty()
}

func (a *ApplyFont) apply(existing, src *Font, changes *ApplyFont) {
	if a.Name && existing.Name != src.Name {
		existing.Name = src.Name
		changes.Name = true
	}
	if a.Size20 && existing.Size20 != src.Size20 {
		existing.Size20 = src.Size20
		changes.Size20 = true
	}
	if a.Color && existing.Color != src.Color {
		existing.Color = src.Color
		changes.Color = true
	}
	if a.Style && existing.Style != src.Style {
		existing.Style = src.Style
		changes.Style = true
	}
	if a.Underline && existing.Underline != src.Underline {
		existing.Underline = src.Underline
		changes.Underline = true
	}
	if a.Family && existing.Family != src.Family {
		existing.Family = src.Family
		changes.Family = true
	}
	if a.CharSet && existing.CharSet != src.CharSet {
		existing.CharSet = src.CharSet
		changes.CharSet = true
	}
	if a.Scheme && existing.Scheme != src.Scheme {
		existing.Scheme = src.Scheme
		changes.Scheme = true
	}
}

// ApplyBorders selects which borders an apply operation touches. Diagonal
// covers both the diagonal line and the DiagonalStyle.
type ApplyBorders struct {
	Left     bool
	Right    bool
	Top      bool
	Bottom   bool
	Diagonal bool
}

func (a *ApplyBorders) SetAllMembers(value bool) {
	*a = ApplyBorders{value, value, value, value, value}
}

func (a *ApplyBorders) IsEmpty() bool {
	return *a == ApplyBorders{}
}

func (a *ApplyBorders) Apply(existing, src *Borders) bool {
	var changes ApplyBorders
	a.apply(existing, src, &changes)
	return !changes.IsEmpty()
}

func (a *ApplyBorders) apply(existing, src *Borders, changes *ApplyBorders) {
	if a.Left && !existing.Left.Equal(src.Left) {
		existing.Left = src.Left
		changes.Left = true
	}
	if a.Right && !existing.Right.Equal(src.Right) {
		existing.Right = src.Right
		changes.Right = true
	}
	if a.Top && !existing.Top.Equal(src.Top) {
		existing.Top = src.Top
		changes.Top = true
	}
	if a.Bottom && !existing.Bottom.Equal(src.Bottom) {
		existing.Bottom = src.Bottom
		changes.Bottom = true
	}
	if a.Diagonal && (!existing.Diagonal.Equal(src.Diagonal) || existing.DiagonalStyle != src.DiagonalStyle) {
		existing.Diagonal = src.Diagonal
		existing.DiagonalStyle = src.DiagonalStyle
		changes.Diagonal = true
	}
}

// ApplyFillPattern selects which parts of a fill an apply operation touches.
type ApplyFillPattern struct {
	Pattern  bool
	FgColor  bool
	BgColor  bool
	Gradient bool
}

func (a *ApplyFillPattern) SetAllMembers(value bool) {
	*a = ApplyFillPattern{value, value, value, value}
}

func (a *ApplyFillPattern) IsEmpty() bool {
	return *a == ApplyFillPattern{}
}

func (a *ApplyFillPattern) Apply(existing, src *FillPattern) bool {
	var changes ApplyFillPattern
	a.apply(existing, src, &changes)
	return !changes.IsEmpty()
}

func (a *ApplyFillPattern) apply(existing, src *FillPattern, changes *ApplyFillPattern) {
	if a.Pattern && existing.Pattern != src.Pattern {
		existing.Pattern = src.Pattern
		changes.Pattern = true
	}
	if a.FgColor && existing.FgColor != src.FgColor {
		existing.FgColor = src.FgColor
		changes.FgColor = true
	}
	if a.BgColor && existing.BgColor != src.BgColor {
		existing.BgColor = src.BgColor
		changes.BgColor = true
	}
	if a.Gradient && !existing.Gradient().Equal(src.Gradient()) {
		existing.SetGradient(src.Gradient())
		changes.Gradient = true
	}
}

// ApplyFormat selects which attributes of a Format an apply operation
// touches. The zero value selects nothing.
type ApplyFormat struct {
	Font        ApplyFont
	Borders     ApplyBorders
	FillPattern ApplyFillPattern

	NumericFormat  bool
	HAlignment     bool
	VAlignment     bool
	Locked         bool
	Hidden         bool
	ParentStyle    bool
	WrapText       bool
	ShrinkToFit    bool
	Rotation       bool
	Indent         bool
	Lotus123Prefix bool
}

func (a *ApplyFormat) SetAllMembers(value bool) {
	a.Font.SetAllMembers(value)
	a.Borders.SetAllMembers(value)
	a.FillPattern.SetAllMembers(value)
	a.NumericFormat = value
	a.HAlignment = value
	a.VAlignment = value
	a.Locked = value
	a.Hidden = value
	a.ParentStyle = value
	a.WrapText = value
	a.ShrinkToFit = value
	a.Rotation = value
	a.Indent = value
	a.Lotus123Prefix = value
}

// IsEmpty reports whether nothing is selected, nested masks included.
func (a *ApplyFormat) IsEmpty() bool {
	return a.Borders.IsEmpty() && a.HasOnlyBorders()
}

// HasOnlyBorders reports whether nothing outside the border mask is selected.
func (a *ApplyFormat) HasOnlyBorders() bool {
	return a.Font.IsEmpty() &&
		a.FillPattern.IsEmpty() &&
		!a.NumericFormat &&
		!a.HAlignment &&
		!a.VAlignment &&
		!a.Locked &&
		!a.Hidden &&
		!a.ParentStyle &&
		!a.WrapText &&
		!a.ShrinkToFit &&
		!a.Rotation &&
		!a.Indent &&
		!a.Lotus123Prefix
}

// Apply copies the selected attributes of src into existing and reports
// whether existing changed. Applying the same values twice reports no change
// the second time.
func (a *ApplyFormat) Apply(existing, src *Format) bool {
	changes := a.ApplyChanges(existing, src)
	return !changes.IsEmpty()
}

// ApplyChanges works like Apply but returns the set of attributes that
// actually changed.
func (a *ApplyFormat) ApplyChanges(existing, src *Format) ApplyFormat {
	var changes ApplyFormat
	a.Font.apply(&existing.Font, &src.Font, &changes.Font)
	a.Borders.apply(&existing.Borders, &src.Borders, &changes.Borders)
	a.FillPattern.apply(&existing.FillPattern, &src.FillPattern, &changes.FillPattern)

	if a.NumericFormat && existing.NumberFormat != src.NumberFormat {
		existing.NumberFormat = src.NumberFormat
		changes.NumericFormat = true
	}
	if a.HAlignment && existing.HAlignment != src.HAlignment {
		existing.HAlignment = src.HAlignment
		changes.HAlignment = true
	}
	if a.VAlignment && existing.VAlignment != src.VAlignment {
		existing.VAlignment = src.VAlignment
		changes.VAlignment = true
	}
	if a.Locked && existing.Locked != src.Locked {
		existing.Locked = src.Locked
		changes.Locked = true
	}
	if a.Hidden && existing.Hidden != src.Hidden {
		existing.Hidden = src.Hidden
		changes.Hidden = true
	}
	// null and "Normal" name the same parent; a different set of linked
	// groups is a change even under the same parent.
	if a.ParentStyle && (existing.NotNullParentStyle() != src.NotNullParentStyle() ||
		!existing.LinkedStyle.SameData(&src.LinkedStyle)) {
		existing.ParentStyle = nil
		if src.ParentStyle != nil {
			name := *src.ParentStyle
			existing.ParentStyle = &name
		}
		existing.LinkedStyle.Assign(&src.LinkedStyle)
		changes.ParentStyle = true
	}
	if a.WrapText && existing.WrapText != src.WrapText {
		existing.WrapText = src.WrapText
		changes.WrapText = true
	}
	if a.ShrinkToFit && existing.ShrinkToFit != src.ShrinkToFit {
		existing.ShrinkToFit = src.ShrinkToFit
		changes.ShrinkToFit = true
	}
	if a.Rotation && existing.Rotation != src.Rotation {
		existing.Rotation = src.Rotation
		changes.Rotation = true
	}
	if a.Indent && existing.Indent != src.Indent {
		existing.Indent = src.Indent
		changes.Indent = true
	}
	if a.Lotus123Prefix && existing.Lotus123Prefix != src.Lotus123Prefix {
		existing.Lotus123Prefix = src.Lotus123Prefix
		changes.Lotus123Prefix = true
	}
	return changes
}

// DiffFormats returns the mask of attributes in which a and b differ.
// Applying that mask from b onto a copy of a makes the copy agree with b in
// everything an ApplyFormat can select.
func DiffFormats(a, b *Format) ApplyFormat {
	var all ApplyFormat
	all.SetAllMembers(true)
	return all.ApplyChanges(a.Clone(), b)
}
