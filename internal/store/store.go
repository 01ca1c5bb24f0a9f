// Package store holds the process-wide in-memory analytics state: one
// summary per symbol, and every ingested price point grouped by calendar
// day. It is the only shared mutable state in the service.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// dayBucket holds one calendar day's points, per symbol.
//
// PricePoint is comparable, so the point maps give set semantics:
// re-ingesting an identical point is a no-op. order remembers the sequence
// symbols first appeared in, which decides best-mover ties.
type dayBucket struct {
	order  []string
	points map[string]map[models.PricePoint]struct{}
}

// Store is the in-memory analytics store. All operations are safe for
// concurrent use by HTTP handlers; a single RWMutex guards both maps.
//
// Day buckets are keyed by calendar date in the fixed location supplied at
// construction, so a point's bucket is fully determined by its timestamp.
type Store struct {
	mu  sync.RWMutex
	loc *time.Location

	// summaries holds the latest summary per symbol (last write wins).
	summaries map[string]models.SymbolSummary

	// days maps calendar date -> that day's per-symbol point sets.
	days map[time.Time]*dayBucket
}

// New creates an empty Store bucketing days in the given location.
// A nil location defaults to UTC.
func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{
		loc:       loc,
		summaries: make(map[string]models.SymbolSummary),
		days:      make(map[time.Time]*dayBucket),
	}
}

// RecordSummary upserts the summary for its symbol, replacing any previous
// one. It never fails.
func (s *Store) RecordSummary(summary models.SymbolSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.Symbol] = summary
}

// RecordPoint inserts a point into its (date, symbol) bucket. Inserting an
// exact duplicate is a no-op. It never fails.
func (s *Store) RecordPoint(p models.PricePoint) {
	day := s.dayOfMillis(p.Timestamp)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.days[day]
	if !ok {
		bucket = &dayBucket{points: make(map[string]map[models.PricePoint]struct{})}
		s.days[day] = bucket
	}
	set, ok := bucket.points[p.Symbol]
	if !ok {
		set = make(map[models.PricePoint]struct{})
		bucket.points[p.Symbol] = set
		bucket.order = append(bucket.order, p.Symbol)
	}
	set[p] = struct{}{}
}

// SortedSymbols returns every known symbol ordered by the given comparator
// over their summaries. With no summaries it returns an empty slice, not an
// error. Comparators come from the sort-mode registry (ResolveSortMode).
func (s *Store) SortedSymbols(less SortFunc) []string {
	s.mu.RLock()
	all := make([]models.SymbolSummary, 0, len(s.summaries))
	for _, sum := range s.summaries {
		all = append(all, sum)
	}
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })

	out := make([]string, len(all))
	for i, sum := range all {
		out[i] = sum.Symbol
	}
	return out
}

// SummaryFor returns the summary stored under the exact symbol key. Callers
// normalize case before calling; this layer does not.
func (s *Store) SummaryFor(symbol string) (models.SymbolSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum, ok := s.summaries[symbol]
	return sum, ok
}

// BestMoverForDate returns the symbol with the highest normalized price
// range on the given calendar day.
//
// For each symbol with points that day it computes (max-min)/min over the
// day's set. A symbol only takes the lead by strictly exceeding the running
// best, which starts at 0: the first-ingested symbol keeps exact ties, and
// a day where every symbol has zero range reports no winner. An empty set
// falls back to min=1, max=0; the resulting -1 never beats the seed.
//
// Returns ("", false) when the date has no bucket or no qualifying symbol.
func (s *Store) BestMoverForDate(date time.Time) (string, bool) {
	// The argument is a calendar date, not an instant: its own year/month/day
	// are taken as-is and anchored in the store's location.
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.days[day]
	if !ok {
		return "", false
	}

	best := ""
	bestRange := 0.0

	for _, sym := range bucket.order {
		minPrice, maxPrice := 1.0, 0.0
		first := true
		for p := range bucket.points[sym] {
			if first {
				minPrice, maxPrice = p.Price, p.Price
				first = false
				continue
			}
			if p.Price < minPrice {
				minPrice = p.Price
			}
			if p.Price > maxPrice {
				maxPrice = p.Price
			}
		}
		normalized := (maxPrice - minPrice) / minPrice
		if normalized > bestRange {
			best = sym
			bestRange = normalized
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// dayOfMillis buckets an epoch-millisecond instant to its calendar date in
// the store's location.
func (s *Store) dayOfMillis(ts int64) time.Time {
	y, m, d := time.UnixMilli(ts).In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}
