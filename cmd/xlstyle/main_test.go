package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"gopkg.inshopline.com/commons/xlstyle"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	id, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Family: "Arial", Size: 12},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "title"))
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "A1", id))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 1))
	require.NoError(t, f.SetSheetDimension("Sheet1", "A1:A2"))
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestNewCatalogDoc(t *testing.T) {
	c := xlstyle.NewCatalog(xlstyle.DefaultConfig())
	f := xlstyle.CreateStandard2007()
	f.Font.Style = xlstyle.FontBold | xlstyle.FontItalic
	f.Borders.Top = xlstyle.OneBorder{Style: xlstyle.BorderThick, Color: xlstyle.ColorFromRGB(0x11, 0x22, 0x33)}
	f.FillPattern = xlstyle.NewSolidFill(xlstyle.ColorFromIndex(10))
	c.AddFormat(f)

	doc := newCatalogDoc(c)
	assert.Equal(t, "2007", doc.Version)
	require.Len(t, doc.Styles, 1)
	assert.Equal(t, "Normal", doc.Styles[0].Name)
	assert.True(t, doc.Styles[0].Builtin)
	assert.Equal(t, "", doc.Styles[0].Format.Parent)

	require.Len(t, doc.Formats, 2)
	got := doc.Formats[1]
	require.NotNil(t, got.Index)
	assert.Equal(t, 1, *got.Index)
	assert.Equal(t, "Normal", got.Parent)
	assert.Equal(t, "bold|italic", got.Font.Style)
	assert.Equal(t, map[string]borderDoc{"top": {Style: "thick", Color: "#112233"}}, got.Borders)
	assert.Equal(t, fillDoc{Pattern: "solid", Fg: "indexed(10)", Bg: "automatic"}, got.Fill)
}

func TestDumpAndDiff(t *testing.T) {
	path := writeSample(t)

	out, err := run(t, "dump", path)
	require.NoError(t, err)
	var doc catalogDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2007", doc.Version)
	assert.NotEmpty(t, doc.Formats)

	out, err = run(t, "diff", path, path)
	require.NoError(t, err)
	assert.Equal(t, "formats match\n", out)
}

func TestDumpTealeg(t *testing.T) {
	t.Cleanup(func() { dumpTealeg = false })
	path := writeSample(t)

	out, err := run(t, "dump", "--tealeg", path)
	require.NoError(t, err)
	var docs []xlsxStyleDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))

	c, err := openCatalog(path)
	require.NoError(t, err)
	require.Len(t, docs, c.FormatCount())

	var title *xlsx.Style
	for i, d := range docs {
		assert.Equal(t, i, d.Index)
		require.NotNil(t, d.Style)
		if d.Style.Font.Bold {
			title = d.Style
		}
	}
	require.NotNil(t, title)
	assert.Equal(t, "Arial", title.Font.Name)
	assert.Equal(t, 12, title.Font.Size)
	assert.Equal(t, "medium", title.Border.Bottom)
	assert.True(t, title.ApplyBorder)
}

func TestConvert(t *testing.T) {
	in := writeSample(t)
	converted := filepath.Join(t.TempDir(), "formats.xlsx")
	_, err := run(t, "convert", in, converted)
	require.NoError(t, err)

	// one sample cell per format of the input
	src, err := xlstyle.OpenXlsx(in, xlstyle.DefaultConfig())
	require.NoError(t, err)
	wb, err := xlstyle.OpenXlsx(converted, xlstyle.DefaultConfig())
	require.NoError(t, err)
	for i := 0; i < src.Catalog().FormatCount(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		want := src.Catalog().ResolvedFormat(i)
		got := wb.Catalog().ResolvedFormat(wb.FormatIndex("Sheet1", cell))
		require.NotNil(t, got, cell)
		assert.Equal(t, want.Font.Name, got.Font.Name, cell)
		assert.Equal(t, want.Font.Style, got.Font.Style, cell)
		assert.Equal(t, want.Borders.Bottom.Style, got.Borders.Bottom.Style, cell)
	}
}

func TestUnsupportedFile(t *testing.T) {
	_, err := run(t, "dump", "report.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
