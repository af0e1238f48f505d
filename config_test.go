package xlstyle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
excel_version: "2003"
keep_max_rows_and_columns_when_updating: true
`))
	require.NoError(t, err)
	assert.Equal(t, Excel2003, cfg.ExcelVersion)
	assert.True(t, cfg.KeepMaxRowsAndColumnsWhenUpdating)
	// missing keys keep their defaults
	assert.Equal(t, DefaultConfig().ResolveCacheSize, cfg.ResolveCacheSize)
	assert.Equal(t, "Arial", cfg.StandardFormat().Font.Name)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("excel_version: [1, 2"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`excel_version: "95"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown excel version "95"`)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlstyle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolve_cache_size: 16\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.ResolveCacheSize)
	assert.Equal(t, Excel2007, cfg.ExcelVersion)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigLimits(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		fileVersion ExcelVersion
		rows, cols  int
	}{
		{"xlsx", Config{ExcelVersion: Excel2016}, Excel2003, 1048576, 16384},
		{"xls", Config{ExcelVersion: Excel2003}, Excel2016, 65536, 256},
		{"keep xls", Config{ExcelVersion: Excel2013, KeepMaxRowsAndColumnsWhenUpdating: true}, Excel2003, 65536, 256},
		{"keep unknown", Config{ExcelVersion: Excel2013, KeepMaxRowsAndColumnsWhenUpdating: true}, "", 1048576, 16384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := tt.cfg.Limits(tt.fileVersion)
			assert.Equal(t, tt.rows, rows)
			assert.Equal(t, tt.cols, cols)
		})
	}
}
