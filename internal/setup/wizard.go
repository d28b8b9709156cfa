// Package setup provides the interactive terminal wizard used when tvparse
// is started without an input file.
package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/luxfeed/tvparse/config"
	"github.com/luxfeed/tvparse/internal/entity"
)

const savedConfigPath = "tvparse.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)
)

// RunWizard collects a parse job interactively and optionally saves it to
// tvparse.yaml for later --config runs.
func RunWizard() (config.Config, error) {
	var (
		input      string
		decimals   string
		category   string
		exportCSV  string
		exportJSON string
		save       bool
	)
	decimals = "4"

	fmt.Println(headerStyle.Render("TVPARSE SETUP"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Pick a chart export and how to format it.\n"))

	categoryOptions := []huh.Option[string]{huh.NewOption("All categories", "")}
	for _, cat := range entity.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(cat.String(), cat.String()))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CSV file").
				Description("Path to the exported chart data").
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					return nil
				}),
			huh.NewInput().
				Title("Decimal places").
				Description("Fractional digits for numeric output (0-12)").
				Value(&decimals).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > 12 {
						return fmt.Errorf("must be an integer in [0, 12]")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category filter").
				Options(categoryOptions...).
				Value(&category),
			huh.NewInput().
				Title("CSV export path").
				Description("Leave empty to skip the export").
				Value(&exportCSV),
			huh.NewInput().
				Title("JSON export path").
				Description("Leave empty to skip the export").
				Value(&exportJSON),
			huh.NewConfirm().
				Title("Save these settings to " + savedConfigPath + "?").
				Value(&save),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	places, err := strconv.Atoi(decimals)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid decimal places: %w", err)
	}

	cfg := config.Config{
		Input:         input,
		DecimalPlaces: places,
		Category:      category,
		ExportCSV:     exportCSV,
		ExportJSON:    exportJSON,
	}

	if save {
		payload, err := yaml.Marshal([]config.Config{cfg})
		if err != nil {
			return config.Config{}, err
		}
		if err := os.WriteFile(savedConfigPath, payload, 0o644); err != nil {
			return config.Config{}, fmt.Errorf("cannot save %s: %w", savedConfigPath, err)
		}
		fmt.Println("Saved, next time run: tvparse --config " + savedConfigPath)
	}

	return cfg, nil
}
