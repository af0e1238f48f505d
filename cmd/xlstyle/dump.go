package main

import (
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"
	"gopkg.in/yaml.v3"

	"gopkg.inshopline.com/commons/xlstyle"
)

type fontDoc struct {
	Name      string  `yaml:"name"`
	Size      float64 `yaml:"size"`
	Style     string  `yaml:"style,omitempty"`
	Underline string  `yaml:"underline,omitempty"`
	Color     string  `yaml:"color"`
}

type borderDoc struct {
	Style string `yaml:"style"`
	Color string `yaml:"color"`
}

type fillDoc struct {
	Pattern string `yaml:"pattern"`
	Fg      string `yaml:"fg,omitempty"`
	Bg      string `yaml:"bg,omitempty"`
}

type formatDoc struct {
	Index        *int                 `yaml:"index,omitempty"`
	Parent       string               `yaml:"parent,omitempty"`
	Font         fontDoc              `yaml:"font"`
	NumberFormat string               `yaml:"numberFormat,omitempty"`
	HAlign       string               `yaml:"halign"`
	VAlign       string               `yaml:"valign"`
	Wrap         bool                 `yaml:"wrap,omitempty"`
	Shrink       bool                 `yaml:"shrink,omitempty"`
	Rotation     int                  `yaml:"rotation,omitempty"`
	Indent       int                  `yaml:"indent,omitempty"`
	Locked       bool                 `yaml:"locked"`
	Hidden       bool                 `yaml:"hidden,omitempty"`
	Borders      map[string]borderDoc `yaml:"borders,omitempty"`
	Fill         fillDoc              `yaml:"fill"`
}

type styleDoc struct {
	Name    string    `yaml:"name"`
	Builtin bool      `yaml:"builtin,omitempty"`
	Format  formatDoc `yaml:"format"`
}

type catalogDoc struct {
	Version string      `yaml:"version"`
	Styles  []styleDoc  `yaml:"styles"`
	Formats []formatDoc `yaml:"formats"`
}

func newFormatDoc(f *xlstyle.Format) formatDoc {
	d := formatDoc{
		Parent: f.NotNullParentStyle(),
		Font: fontDoc{
			Name:  f.Font.Name,
			Size:  f.Font.SizePoints(),
			Color: f.Font.Color.String(),
		},
		NumberFormat: f.NumberFormat,
		HAlign:       f.HAlignment.String(),
		VAlign:       f.VAlignment.String(),
		Wrap:         f.WrapText,
		Shrink:       f.ShrinkToFit,
		Rotation:     int(f.Rotation),
		Indent:       int(f.Indent),
		Locked:       f.Locked,
		Hidden:       f.Hidden,
		Fill:         fillDoc{Pattern: f.FillPattern.Pattern.String()},
	}
	if f.IsStyle {
		d.Parent = ""
	}
	if f.Font.Style != xlstyle.FontRegular {
		d.Font.Style = f.Font.Style.String()
	}
	if f.Font.Underline != xlstyle.UnderlineNone {
		d.Font.Underline = f.Font.Underline.String()
	}
	if f.FillPattern.Pattern == xlstyle.PatternGradient {
		d.Fill.Pattern = "gradient"
	}
	if f.FillPattern.Pattern > xlstyle.PatternNone {
		d.Fill.Fg = f.FillPattern.FgColor.String()
		d.Fill.Bg = f.FillPattern.BgColor.String()
	}
	for side, b := range map[string]xlstyle.OneBorder{
		"left":     f.Borders.Left,
		"right":    f.Borders.Right,
		"top":      f.Borders.Top,
		"bottom":   f.Borders.Bottom,
		"diagonal": f.Borders.Diagonal,
	} {
		if b.Style == xlstyle.BorderNone {
			continue
		}
		if d.Borders == nil {
			d.Borders = make(map[string]borderDoc)
		}
		d.Borders[side] = borderDoc{Style: b.Style.String(), Color: b.Color.String()}
	}
	return d
}

func newCatalogDoc(c *xlstyle.Catalog) catalogDoc {
	doc := catalogDoc{Version: string(c.FileVersion())}
	for _, name := range c.StyleNames() {
		doc.Styles = append(doc.Styles, styleDoc{
			Name:    name,
			Builtin: c.IsBuiltinStyle(name),
			Format:  newFormatDoc(c.ResolvedStyle(name)),
		})
	}
	for i := 0; i < c.FormatCount(); i++ {
		d := newFormatDoc(c.ResolvedFormat(i))
		index := i
		d.Index = &index
		doc.Formats = append(doc.Formats, d)
	}
	return doc
}

// xlsxStyleDoc is a resolved format as the tealeg/xlsx style model sees it.
type xlsxStyleDoc struct {
	Index int         `yaml:"index"`
	Style *xlsx.Style `yaml:"style"`
}

func newXlsxStyleDocs(c *xlstyle.Catalog) []xlsxStyleDoc {
	docs := make([]xlsxStyleDoc, 0, c.FormatCount())
	for i := 0; i < c.FormatCount(); i++ {
		docs = append(docs, xlsxStyleDoc{Index: i, Style: xlstyle.XlsxStyle(c.ResolvedFormat(i), c.Palette())})
	}
	return docs
}

var dumpTealeg bool

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print resolved formats and styles as YAML",
	Long: `Print resolved formats and styles as YAML. With --tealeg each format is
printed as the tealeg/xlsx style it maps to instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(args[0])
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		var doc any = newCatalogDoc(c)
		if dumpTealeg {
			doc = newXlsxStyleDocs(c)
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpTealeg, "tealeg", false, "Print formats as tealeg/xlsx styles")
	rootCmd.AddCommand(dumpCmd)
}
