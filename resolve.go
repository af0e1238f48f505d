package xlstyle

import "go.uber.org/zap"

// Resolve returns the effective appearance of f: its parent style chain with
// f's own values laid over every group f does not link to the parent.
// Missing parents resolve to Normal, and a cycle in the style chain stops at
// the first style seen twice.
func (c *Catalog) Resolve(f *Format) *Format {
	return c.resolve(f, make(map[string]bool))
}

// ResolvedFormat resolves the cell format at index. It returns nil when index
// is out of range.
func (c *Catalog) ResolvedFormat(index int) *Format {
	if index < 0 || index >= len(c.formats) {
		return nil
	}
	if c.resolved != nil {
		if f, ok := c.resolved.Get(index); ok {
			return f.Clone()
		}
	}
	f := c.Resolve(c.formats[index])
	if c.resolved != nil {
		c.resolved.Add(index, f.Clone())
	}
	return f
}

// ResolvedStyle resolves a named style through its parent chain. It returns
// nil when the style doesn't exist.
func (c *Catalog) ResolvedStyle(name string) *Format {
	if !c.HasStyle(name) {
		return nil
	}
	return c.resolveStyle(name, make(map[string]bool))
}

func (c *Catalog) resolve(f *Format, visited map[string]bool) *Format {
	if f.IsStyle && f.ParentStyle == nil {
		return f.Clone()
	}
	out := c.resolveStyle(f.NotNullParentStyle(), visited)
	mask := unlinkedMask(&f.LinkedStyle)
	mask.Apply(out, f)
	out.IsStyle = f.IsStyle
	return out
}

func (c *Catalog) resolveStyle(name string, visited map[string]bool) *Format {
	key := c.fold.String(name)
	s, ok := c.styles[key]
	if !ok {
		if key != c.fold.String(NormalStyleName) {
			c.log.Warn("parent style not found, using Normal", zap.String("style", name))
			return c.resolveStyle(NormalStyleName, visited)
		}
		normal := c.cfg.StandardFormat()
		normal.IsStyle = true
		return normal
	}
	if visited[key] {
		c.log.Warn("style chain has a cycle", zap.String("style", s.name))
		return s.format.Clone()
	}
	visited[key] = true
	return c.resolve(s.format, visited)
}

// unlinkedMask selects every group that is not linked to the parent style,
// plus the attributes that never come from a parent.
func unlinkedMask(l *LinkedStyle) ApplyFormat {
	var m ApplyFormat
	if !l.LinkedFont {
		m.Font.SetAllMembers(true)
	}
	if !l.LinkedBorder {
		m.Borders.SetAllMembers(true)
	}
	if !l.LinkedFill {
		m.FillPattern.SetAllMembers(true)
	}
	m.NumericFormat = !l.LinkedNumericFormat
	alignment := !l.LinkedAlignment
	m.HAlignment = alignment
	m.VAlignment = alignment
	m.WrapText = alignment
	m.ShrinkToFit = alignment
	m.Rotation = alignment
	m.Indent = alignment
	m.Locked = !l.LinkedProtection
	m.Hidden = !l.LinkedProtection
	m.ParentStyle = true
	m.Lotus123Prefix = true
	return m
}
