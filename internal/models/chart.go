package models

import "github.com/shopspring/decimal"

// ChartSegment represents a single labeled bar in the breakdown chart.
type ChartSegment struct {
	Label   string          `json:"label"`
	Percent decimal.Decimal `json:"percent"` // rounded to one fractional digit
}

// ChartBreakdown represents the normalized per-paycheck split of debt,
// savings and spending. Empty is set when no category has a positive amount.
type ChartBreakdown struct {
	Empty    bool           `json:"empty"`
	Segments []ChartSegment `json:"segments,omitempty"`
}
