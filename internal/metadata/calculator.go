// Package metadata reduces a symbol's price points into its summary record.
package metadata

import (
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// ErrNilPoints is returned when the point slice itself is absent. An empty
// but non-nil slice is the caller's problem and is rejected before this stage.
var ErrNilPoints = errors.New("nil price points")

// Calculate computes the SymbolSummary for one symbol's points.
//
// The two price reductions are independent: min/max scan the whole set
// regardless of order, while oldest/newest come from chronological order.
// Min and max run as two concurrent tasks joined before the summary is
// built; the input is read-only, so they need no synchronization.
//
// Oldest/newest use a stable sort by timestamp over a copied slice, so
// timestamp ties keep their upload order and the caller's slice is not
// reordered.
//
// Parameters:
//   - symbol: symbol all points belong to.
//   - points: at least one point; nil yields ErrNilPoints.
//
// Returns:
//   - models.SymbolSummary: the computed aggregate.
//   - error: ErrNilPoints, or a fault from the concurrent reductions.
func Calculate(symbol string, points []models.PricePoint) (models.SymbolSummary, error) {
	if points == nil {
		return models.SymbolSummary{}, ErrNilPoints
	}

	var minPrice, maxPrice float64
	var g errgroup.Group
	g.Go(func() error {
		minPrice = reducePrice(points, 1, func(acc, p float64) bool { return p < acc })
		return nil
	})
	g.Go(func() error {
		maxPrice = reducePrice(points, 0, func(acc, p float64) bool { return p > acc })
		return nil
	})

	chrono := make([]models.PricePoint, len(points))
	copy(chrono, points)
	sort.SliceStable(chrono, func(i, j int) bool { return chrono[i].Timestamp < chrono[j].Timestamp })

	if err := g.Wait(); err != nil {
		return models.SymbolSummary{}, err
	}

	var oldest, newest float64
	if len(chrono) > 0 {
		oldest = chrono[0].Price
		newest = chrono[len(chrono)-1].Price
	}

	return models.SymbolSummary{
		Symbol:          symbol,
		OldestPrice:     oldest,
		NewestPrice:     newest,
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		NormalizedRange: (maxPrice - minPrice) / minPrice,
	}, nil
}

// reducePrice folds the points' prices with the given ordering, starting
// from fallback when the slice is empty (1 for min, 0 for max).
func reducePrice(points []models.PricePoint, fallback float64, better func(acc, p float64) bool) float64 {
	if len(points) == 0 {
		return fallback
	}
	acc := points[0].Price
	for _, p := range points[1:] {
		if better(acc, p.Price) {
			acc = p.Price
		}
	}
	return acc
}
