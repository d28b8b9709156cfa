package entity

import "strings"

// Category is the semantic group a column belongs to.
type Category int

const (
	CategoryOHLC Category = iota
	CategoryLuxAlgoConnector
	CategorySignals
	CategoryMetrics
	CategoryIndicators
	CategoryBands
	CategoryNeo
	CategoryAlerts
	CategoryOther
)

// category string constants to avoid magic strings
const (
	categoryStringOHLC             = "OHLC"
	categoryStringLuxAlgoConnector = "LuxAlgo_Connector"
	categoryStringSignals          = "Signals"
	categoryStringMetrics          = "Metrics"
	categoryStringIndicators       = "Indicators"
	categoryStringBands            = "Bands"
	categoryStringNeo              = "Neo"
	categoryStringAlerts           = "Alerts"
	categoryStringOther            = "Other"
)

// Categories returns every category in canonical display order.
func Categories() []Category {
	return []Category{
		CategoryOHLC,
		CategoryLuxAlgoConnector,
		CategorySignals,
		CategoryMetrics,
		CategoryIndicators,
		CategoryBands,
		CategoryNeo,
		CategoryAlerts,
		CategoryOther,
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryOHLC:
		return categoryStringOHLC
	case CategoryLuxAlgoConnector:
		return categoryStringLuxAlgoConnector
	case CategorySignals:
		return categoryStringSignals
	case CategoryMetrics:
		return categoryStringMetrics
	case CategoryIndicators:
		return categoryStringIndicators
	case CategoryBands:
		return categoryStringBands
	case CategoryNeo:
		return categoryStringNeo
	case CategoryAlerts:
		return categoryStringAlerts
	case CategoryOther:
		return categoryStringOther
	default:
		return "unknown"
	}
}

// CategoryFromString resolves a category by name, case-insensitively.
func CategoryFromString(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return CategoryOther, false
}
