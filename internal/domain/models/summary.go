package models

// SymbolSummary represents the aggregate computed over one symbol's
// uploaded price points.
//
// Fields:
//   - Symbol: The symbol the summary belongs to (e.g., "btc").
//   - OldestPrice: Price of the chronologically first point.
//   - NewestPrice: Price of the chronologically last point.
//   - MinPrice: Lowest price across all points, independent of order.
//   - MaxPrice: Highest price across all points, independent of order.
//   - NormalizedRange: (MaxPrice - MinPrice) / MinPrice.
//
// NormalizedRange is left unguarded for MinPrice == 0: IEEE arithmetic yields
// +Inf (or NaN when max == min == 0). Allow-listed feeds never report a zero
// price, so the arithmetic is kept as-is.
//
// One summary exists per symbol at any time; a new ingestion for the same
// symbol replaces the previous summary entirely.
//
// swagger:model SymbolSummary
type SymbolSummary struct {
	Symbol          string  `json:"symbol" example:"btc"`
	OldestPrice     float64 `json:"oldest_price" example:"46813.21"`
	NewestPrice     float64 `json:"newest_price" example:"47143.98"`
	MinPrice        float64 `json:"min_price" example:"33276.59"`
	MaxPrice        float64 `json:"max_price" example:"47722.66"`
	NormalizedRange float64 `json:"normalized_range" example:"0.43412"`
}
