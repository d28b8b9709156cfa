package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := `- input: export.csv
  decimal_places: 2
  category: OHLC
  export_csv: out.csv
- input: other.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	configs, err := getYaml(path)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	require.Equal(t, "export.csv", configs[0].Input)
	require.Equal(t, 2, configs[0].DecimalPlaces)
	require.Equal(t, "OHLC", configs[0].Category)
	require.Equal(t, "out.csv", configs[0].ExportCSV)

	// defaults fill in for the second job
	require.Equal(t, defaultDecimalPlaces, configs[1].DecimalPlaces)
	require.Equal(t, defaultMaxRows, configs[1].MaxRows)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Input: "a.csv", DecimalPlaces: 4},
		},
		{
			name:    "missing input",
			cfg:     Config{DecimalPlaces: 4},
			wantErr: "'input' param is required",
		},
		{
			name:    "negative decimals",
			cfg:     Config{Input: "a.csv", DecimalPlaces: -1},
			wantErr: "invalid 'decimal_places' param",
		},
		{
			name:    "too many decimals",
			cfg:     Config{Input: "a.csv", DecimalPlaces: 13},
			wantErr: "invalid 'decimal_places' param",
		},
		{
			name:    "bad category",
			cfg:     Config{Input: "a.csv", DecimalPlaces: 4, Category: "Momentum"},
			wantErr: "invalid 'category' param",
		},
		{
			name: "case-insensitive category",
			cfg:  Config{Input: "a.csv", DecimalPlaces: 4, Category: "ohlc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
