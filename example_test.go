package xlstyle

import (
	"fmt"
)

// ExampleFormat_Clone shows that a cloned format can be changed without
// touching the original.
func ExampleFormat_Clone() {
	f := CreateStandard2007()
	g := f.Clone()
	g.Font.Name = "Verdana"
	fmt.Println(f.Font.Name, g.Font.Name, f.Equal(g))
	// Output: Calibri Verdana false
}

// ExampleCatalog_ApplyFormat adds a bottom border to two cells sharing a
// format.
func ExampleCatalog_ApplyFormat() {
	c := NewCatalog(DefaultConfig())
	src := CreateStandard2007()
	src.Borders.Bottom = OneBorder{BorderThin, ColorAutomatic()}

	var mask ApplyFormat
	mask.Borders.Bottom = true
	result, changed := c.ApplyFormat([]int{0, 0}, mask, src)
	fmt.Println(result, changed)
	fmt.Println(c.GetFormat(result[0]).Borders.Bottom.Style)
	// Output:
	// [1 1] true
	// thin
}

// ExampleCatalog_ResolvedFormat resolves a cell that takes its font from a
// named style and keeps its own alignment.
func ExampleCatalog_ResolvedFormat() {
	c := NewCatalog(DefaultConfig())
	title := CreateStandard2007()
	title.Font.Size20 = 360
	title.Font.Style = FontBold
	c.SetStyle("Title", title)

	cell := CreateStandard2007()
	cell.SetParentStyle("Title")
	cell.Font = title.Font
	cell.HAlignment = HAlignCenter
	i := c.AddFormat(cell)

	fmt.Println(c.ResolvedFormat(i))
	// Output: format{font: Calibri 18pt bold, numfmt: "", align: center/bottom, fill: none, parent: Title}
}

// ExampleParseConfig builds a catalog with Excel 97-2003 defaults.
func ExampleParseConfig() {
	cfg, err := ParseConfig([]byte(`excel_version: "2003"`))
	if err != nil {
		fmt.Println("bad config:", err)
		return
	}
	c := NewCatalog(cfg)
	fmt.Println(c.MaxRows(), c.MaxColumns(), c.GetFormat(0).Font.Name)
	// Output: 65536 256 Arial
}
