// Package config loads settings for the tvparse command line tool from
// flags or from a YAML job file.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/luxfeed/tvparse/internal/entity"
)

const (
	defaultDecimalPlaces = 4
	maxDecimalPlaces     = 12
	defaultMaxRows       = 10
)

// Config describes one parse job.
type Config struct {
	Input         string `yaml:"input"`
	DecimalPlaces int    `yaml:"decimal_places"`
	Category      string `yaml:"category,omitempty"`
	MaxRows       int    `yaml:"max_rows,omitempty"`
	ExportCSV     string `yaml:"export_csv,omitempty"`
	ExportJSON    string `yaml:"export_json,omitempty"`
}

// Get reads the configuration from CLI flags, or from a YAML file holding a
// list of jobs when --config is given. An empty result (no --input and no
// --config) signals the caller to fall back to the interactive wizard.
func Get() ([]Config, error) {
	configPath := flag.String("config", "", "path to yaml config with parse jobs")
	input := flag.String("input", "", "path to a chart export csv file")
	decimals := flag.Int("decimals", defaultDecimalPlaces, "decimal places for numeric output")
	category := flag.String("category", "", "restrict display/export to one category, example: OHLC")
	maxRows := flag.Int("maxrows", defaultMaxRows, "max rows to display")
	exportCSV := flag.String("csv", "", "path for csv export")
	exportJSON := flag.String("json", "", "path for json export")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}
	if *input == "" {
		return nil, nil
	}

	cfg := Config{
		Input:         *input,
		DecimalPlaces: *decimals,
		Category:      *category,
		MaxRows:       *maxRows,
		ExportCSV:     *exportCSV,
		ExportJSON:    *exportJSON,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return []Config{cfg}, nil
}

func getYaml(path string) ([]Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var configs []Config
	if err := yaml.Unmarshal(f, &configs); err != nil {
		return nil, fmt.Errorf("cannot parse yaml config %s: %w", path, err)
	}

	for i := range configs {
		if configs[i].DecimalPlaces == 0 {
			configs[i].DecimalPlaces = defaultDecimalPlaces
		}
		if configs[i].MaxRows == 0 {
			configs[i].MaxRows = defaultMaxRows
		}
		if err := configs[i].validate(); err != nil {
			return nil, fmt.Errorf("invalid job %d in %s: %w", i+1, path, err)
		}
	}
	return configs, nil
}

func (c Config) validate() error {
	if c.Input == "" {
		return fmt.Errorf("'input' param is required")
	}
	if c.DecimalPlaces < 0 || c.DecimalPlaces > maxDecimalPlaces {
		return fmt.Errorf("invalid 'decimal_places' param: %d, must be in [0, %d]", c.DecimalPlaces, maxDecimalPlaces)
	}
	if c.Category != "" {
		if _, ok := entity.CategoryFromString(c.Category); !ok {
			return fmt.Errorf("invalid 'category' param: %s", c.Category)
		}
	}
	return nil
}
