package dto

// UploadResponse is returned by POST /api/v1/cryptos/upload on success.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type UploadResponse struct {
	Symbol string `json:"symbol" example:"btc"` // Symbol extracted from the uploaded filename
	Rows   int    `json:"rows" example:"100"`   // Number of price points ingested from the batch
}

// SummaryResponse is returned by GET /api/v1/cryptos/metadata/{symbol}.
//
// It deliberately exposes only the four price aggregates; the normalized
// range stays internal and drives the sorted-symbols ranking instead.
type SummaryResponse struct {
	OldestPrice float64 `json:"oldest_price" example:"46813.21"` // Price of the chronologically first point
	NewestPrice float64 `json:"newest_price" example:"47143.98"` // Price of the chronologically last point
	MinPrice    float64 `json:"min_price" example:"33276.59"`    // Lowest ingested price
	MaxPrice    float64 `json:"max_price" example:"47722.66"`    // Highest ingested price
}

// BestMoverResponse is returned by GET /api/v1/cryptos/best-mover/{date}.
type BestMoverResponse struct {
	Date   string `json:"date" example:"2022-01-01"` // Queried calendar date
	Symbol string `json:"symbol" example:"xrp"`      // Symbol with the highest normalized range that day
}
