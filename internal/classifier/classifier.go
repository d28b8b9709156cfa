// Package classifier assigns chart-export column names to semantic
// categories using a fixed, ordered rule table.
package classifier

import (
	"strings"

	"github.com/luxfeed/tvparse/internal/entity"
)

// rule maps a column-name pattern to a category. Exact rules compare the
// whole name; keyword rules match a substring. All matching is
// case-insensitive.
type rule struct {
	pattern  string
	keyword  bool
	category entity.Category
}

// Rule order is part of the contract: the first match wins, and every exact
// name precedes every keyword so that, for example, "Trend Strength" lands
// in Metrics before the "trend" keyword can claim it for Indicators.
var rules = []rule{
	// OHLC
	{pattern: "time", category: entity.CategoryOHLC},
	{pattern: "datetime", category: entity.CategoryOHLC},
	{pattern: "open", category: entity.CategoryOHLC},
	{pattern: "high", category: entity.CategoryOHLC},
	{pattern: "low", category: entity.CategoryOHLC},
	{pattern: "close", category: entity.CategoryOHLC},

	// LuxAlgo connector
	{pattern: "LUCID Connector", category: entity.CategoryLuxAlgoConnector},

	// Signals
	{pattern: "Bullish", category: entity.CategorySignals},
	{pattern: "Bullish+", category: entity.CategorySignals},
	{pattern: "Bearish", category: entity.CategorySignals},
	{pattern: "Bearish+", category: entity.CategorySignals},
	{pattern: "Bullish Exit", category: entity.CategorySignals},
	{pattern: "Bearish Exit", category: entity.CategorySignals},

	// Metrics
	{pattern: "Trend Strength", category: entity.CategoryMetrics},
	{pattern: "Take Profit", category: entity.CategoryMetrics},
	{pattern: "Stop Loss", category: entity.CategoryMetrics},
	{pattern: "Bar Color Value", category: entity.CategoryMetrics},

	// Indicators
	{pattern: "Trend Tracer", category: entity.CategoryIndicators},
	{pattern: "Trend Catcher", category: entity.CategoryIndicators},
	{pattern: "Smart Trail", category: entity.CategoryIndicators},
	{pattern: "Smart Trail Extremity", category: entity.CategoryIndicators},

	// Bands
	{pattern: "RZ R3 Band", category: entity.CategoryBands},
	{pattern: "RZ R2 Band", category: entity.CategoryBands},
	{pattern: "RZ R1 Band", category: entity.CategoryBands},
	{pattern: "Reversal Zones Average", category: entity.CategoryBands},
	{pattern: "RZ S1 Band", category: entity.CategoryBands},
	{pattern: "RZ S2 Band", category: entity.CategoryBands},
	{pattern: "RZ S3 Band", category: entity.CategoryBands},

	// Neo
	{pattern: "Neo Lead", category: entity.CategoryNeo},
	{pattern: "Neo Lag", category: entity.CategoryNeo},

	// Alerts
	{pattern: "Custom Alert Condition Highlighter", category: entity.CategoryAlerts},
	{pattern: "Alert Scripting Condition Highlighter", category: entity.CategoryAlerts},

	// Other
	{pattern: "@valuewhen", category: entity.CategoryOther},

	// Keyword fallbacks for renamed or user-suffixed columns.
	{pattern: "trend", keyword: true, category: entity.CategoryIndicators},
	{pattern: "band", keyword: true, category: entity.CategoryBands},
	{pattern: "bullish", keyword: true, category: entity.CategorySignals},
	{pattern: "bearish", keyword: true, category: entity.CategorySignals},
	{pattern: "alert", keyword: true, category: entity.CategoryAlerts},
	{pattern: "neo", keyword: true, category: entity.CategoryNeo},
	{pattern: "connector", keyword: true, category: entity.CategoryLuxAlgoConnector},
}

// Classify returns the category for a column name. Unmatched names fall
// into Other.
func Classify(name string) entity.Category {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, r := range rules {
		if r.keyword {
			if strings.Contains(lowered, r.pattern) {
				return r.category
			}
			continue
		}
		if lowered == strings.ToLower(r.pattern) {
			return r.category
		}
	}
	return entity.CategoryOther
}
