package models

// PricePoint is a single observation from an uploaded batch.
// Each field matches one column in the CSV file.
//
// Column order:
//  1. Timestamp (epoch milliseconds)
//  2. Symbol (lowercase-normalized)
//  3. Price
//
// The struct is comparable on purpose: the analytics store keeps points in
// map-backed sets, so two points with identical timestamp, symbol, and price
// collapse into one entry.
type PricePoint struct {
	Timestamp int64   // Observation instant in epoch milliseconds
	Symbol    string  // Lowercased symbol the point belongs to
	Price     float64 // Observed price
}
