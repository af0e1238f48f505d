package xlstyle

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExcelVersion is the Excel version whose limits and defaults a catalog
// follows.
type ExcelVersion string

const (
	Excel2003 ExcelVersion = "2003"
	Excel2007 ExcelVersion = "2007"
	Excel2010 ExcelVersion = "2010"
	Excel2013 ExcelVersion = "2013"
	Excel2016 ExcelVersion = "2016"
)

const defaultResolveCacheSize = 1024

// Config holds the settings that affect how formats are created and
// resolved. A Config is passed to every Catalog explicitly; there is no
// process-wide default that can change under a running catalog.
type Config struct {
	// ExcelVersion selects the default Normal style and the sheet limits.
	ExcelVersion ExcelVersion `yaml:"excel_version"`

	// KeepMaxRowsAndColumnsWhenUpdating keeps the limits of the file a
	// catalog was read from instead of those of ExcelVersion.
	KeepMaxRowsAndColumnsWhenUpdating bool `yaml:"keep_max_rows_and_columns_when_updating"`

	// ResolveCacheSize is the number of resolved formats kept per catalog.
	// Zero or less disables the cache.
	ResolveCacheSize int `yaml:"resolve_cache_size"`
}

func DefaultConfig() Config {
	return Config{
		ExcelVersion:     Excel2007,
		ResolveCacheSize: defaultResolveCacheSize,
	}
}

// ParseConfig reads a YAML config. Missing keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "xlstyle: decode config")
	}
	if !cfg.ExcelVersion.valid() {
		return Config{}, errors.Errorf("xlstyle: unknown excel version %q", cfg.ExcelVersion)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "xlstyle: read config %s", path)
	}
	return ParseConfig(data)
}

func (v ExcelVersion) valid() bool {
	switch v {
	case Excel2003, Excel2007, Excel2010, Excel2013, Excel2016:
		return true
	}
	return false
}

// IsXlsx reports whether the version uses the OOXML limits and defaults.
func (v ExcelVersion) IsXlsx() bool {
	return v != Excel2003
}

// MaxRows returns the number of rows of a sheet in the configured version.
func (c Config) MaxRows() int {
	if c.ExcelVersion.IsXlsx() {
		return 1048576
	}
	return 65536
}

// MaxColumns returns the number of columns of a sheet in the configured version.
func (c Config) MaxColumns() int {
	if c.ExcelVersion.IsXlsx() {
		return 16384
	}
	return 256
}

// Limits returns the sheet limits for a workbook originally saved by
// fileVersion.
func (c Config) Limits(fileVersion ExcelVersion) (rows, cols int) {
	if c.KeepMaxRowsAndColumnsWhenUpdating && fileVersion.valid() {
		kept := Config{ExcelVersion: fileVersion}
		return kept.MaxRows(), kept.MaxColumns()
	}
	return c.MaxRows(), c.MaxColumns()
}

// StandardFormat returns the default format of the configured version.
func (c Config) StandardFormat() *Format {
	if c.ExcelVersion.IsXlsx() {
		return CreateStandard2007()
	}
	return CreateStandard2003()
}
