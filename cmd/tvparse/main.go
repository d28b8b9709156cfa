// Command tvparse formats chart-platform CSV exports: it converts the Unix
// time column to readable datetimes, groups columns by category, rounds
// numeric values and re-emits the result as console text, CSV or JSON.
//
// Usage:
//
//	tvparse --input export.csv --decimals 4 --category OHLC --csv out.csv
//	tvparse --config tvparse.yaml
//	tvparse (starts the interactive wizard)
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/luxfeed/tvparse/config"
	"github.com/luxfeed/tvparse/internal/parser"
	"github.com/luxfeed/tvparse/internal/setup"
)

func main() {
	configs, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if len(configs) == 0 {
		cfg, err := setup.RunWizard()
		if err != nil {
			log.Fatal(err)
		}
		configs = []config.Config{cfg}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	for _, cfg := range configs {
		if err := run(cfg, logger); err != nil {
			log.Fatal(err)
		}
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	p := parser.New(cfg.DecimalPlaces, parser.WithLogger(logger))

	if _, err := p.ParseCSV(cfg.Input); err != nil {
		return err
	}

	summary, err := p.DisplaySummary()
	if err != nil {
		return err
	}
	fmt.Println(summary)
	fmt.Println()

	data, err := p.DisplayData(cfg.Category, cfg.MaxRows)
	if err != nil {
		return err
	}
	fmt.Println(data)

	if cfg.ExportCSV != "" {
		if err := p.ExportToCSV(cfg.ExportCSV, cfg.Category); err != nil {
			return err
		}
	}
	if cfg.ExportJSON != "" {
		if err := p.ExportToJSON(cfg.ExportJSON, cfg.Category); err != nil {
			return err
		}
	}

	return nil
}
