package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gopkg.inshopline.com/commons/xlstyle"
)

var errFormatsDiffer = errors.New("formats differ")

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare the formats of two workbooks",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openCatalog(args[0])
		if err != nil {
			return err
		}
		b, err := openCatalog(args[1])
		if err != nil {
			return err
		}
		if msg := xlstyle.CompareCatalogs(a, b); msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return errFormatsDiffer
		}
		fmt.Fprintln(cmd.OutOrStdout(), "formats match")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
