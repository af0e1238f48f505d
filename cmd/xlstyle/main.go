package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gopkg.inshopline.com/commons/xlstyle"
)

var (
	configPath string
	verbose    bool
	log        = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "xlstyle",
	Short: "Inspect and convert spreadsheet cell formats",
	Long: `Read the fonts, cell formats and named styles of Excel workbooks (.xls, .xlsx).

Commands:
  dump     Print the resolved formats and styles as YAML.
  diff     Compare the formats of two workbooks.
  convert  Copy the formats of an .xls workbook into a new .xlsx file.

Examples:
  xlstyle dump report.xls
  xlstyle diff report.xls report.xlsx
  xlstyle --config xlstyle.yaml convert report.xls formats.xlsx`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func loadConfig() (xlstyle.Config, error) {
	if configPath == "" {
		return xlstyle.DefaultConfig(), nil
	}
	return xlstyle.LoadConfig(configPath)
}

// openCatalog reads the formats of an .xls or .xlsx file.
func openCatalog(path string) (*xlstyle.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		wb, err := xlstyle.Open(path, cfg, xlstyle.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return wb.Catalog(), nil
	case ".xlsx", ".xlsm":
		wb, err := xlstyle.OpenXlsx(path, cfg, xlstyle.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return wb.Catalog(), nil
	}
	return nil, errors.Errorf("%s: unsupported file type", path)
}

func main() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
