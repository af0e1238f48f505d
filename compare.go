package xlstyle

import (
	"fmt"
	"strings"
)

// CompareCatalogs compares what two catalogs look like once resolved: their
// named styles by name and their cell formats as sets, since the same
// formats may sit at different indexes. Parents and linked groups are not
// compared. It returns an empty string if the catalogs are equivalent, or a
// description of the first mismatch found.
func CompareCatalogs(a, b *Catalog) string {
	for _, name := range a.StyleNames() {
		if !b.HasStyle(name) {
			return fmt.Sprintf("style %q: missing from second catalog", name)
		}
		if groups := visualDiff(a.ResolvedStyle(name), b.ResolvedStyle(name)); len(groups) > 0 {
			return fmt.Sprintf("style %q: %s differ", name, strings.Join(groups, ", "))
		}
	}
	for _, name := range b.StyleNames() {
		if !a.HasStyle(name) {
			return fmt.Sprintf("style %q: missing from first catalog", name)
		}
	}

	if msg := unmatchedFormat(a, b, "second"); msg != "" {
		return msg
	}
	return unmatchedFormat(b, a, "first")
}

func unmatchedFormat(from, in *Catalog, inName string) string {
	candidates := make([]*Format, in.FormatCount())
	for i := range candidates {
		candidates[i] = in.ResolvedFormat(i)
	}
	for i := 0; i < from.FormatCount(); i++ {
		f := from.ResolvedFormat(i)
		var closest []string
		matched := false
		for j, cand := range candidates {
			groups := visualDiff(f, cand)
			if len(groups) == 0 {
				matched = true
				break
			}
			if j == 0 || len(groups) < len(closest) {
				closest = groups
			}
		}
		if matched {
			continue
		}
		if len(candidates) == 0 {
			return fmt.Sprintf("format %d %s: %s catalog is empty", i, f, inName)
		}
		return fmt.Sprintf("format %d %s: no match in %s catalog, closest differs in %s",
			i, f, inName, strings.Join(closest, ", "))
	}
	return ""
}

// visualDiff names the attribute groups in which two formats look different.
// Font, borders and fill follow their Equal rules, so colors a None fill or a
// None border never shows are ignored.
func visualDiff(a, b *Format) []string {
	mask := DiffFormats(a, b)
	var groups []string
	for _, g := range []struct {
		name    string
		changed bool
	}{
		{"font", !a.Font.Equal(&b.Font)},
		{"borders", !a.Borders.Equal(&b.Borders)},
		{"fill", !a.FillPattern.Equal(&b.FillPattern)},
		{"number format", mask.NumericFormat},
		{"alignment", mask.HAlignment || mask.VAlignment || mask.WrapText ||
			mask.ShrinkToFit || mask.Rotation || mask.Indent},
		{"protection", mask.Locked || mask.Hidden},
	} {
		if g.changed {
			groups = append(groups, g.name)
		}
	}
	return groups
}
