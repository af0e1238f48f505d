package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

const sampleSheet = "Sheet1"

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out.xlsx>",
	Short: "Write every format of a workbook into a new xlsx file",
	Long: `Write every format of a workbook into a new xlsx file. Cell A<n+1> of the
first sheet carries format n and shows its description.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(args[0])
		if err != nil {
			return err
		}

		out := excelize.NewFile()
		defer out.Close()

		ids, err := c.WriteExcelize(out)
		if err != nil {
			return err
		}
		for i, id := range ids {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := out.SetCellValue(sampleSheet, cell, c.ResolvedFormat(i).String()); err != nil {
				return errors.Wrapf(err, "write %s", cell)
			}
			if err := out.SetCellStyle(sampleSheet, cell, cell, id); err != nil {
				return errors.Wrapf(err, "style %s", cell)
			}
		}
		if len(ids) > 0 {
			last, _ := excelize.CoordinatesToCellName(1, len(ids))
			if err := out.SetSheetDimension(sampleSheet, "A1:"+last); err != nil {
				return errors.Wrap(err, "dimension")
			}
		}
		return errors.Wrap(out.SaveAs(args[1]), "save")
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
