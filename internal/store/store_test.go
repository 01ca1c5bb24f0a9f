package store

import (
	"sync"
	"testing"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// ts builds an epoch-millis timestamp on the given UTC date.
func ts(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).UnixMilli()
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRecordPoint_Deduplicates(t *testing.T) {
	s := New(time.UTC)
	p := models.PricePoint{Timestamp: ts(2022, 1, 1, 10), Symbol: "btc", Price: 46813.21}

	s.RecordPoint(p)
	s.RecordPoint(p) // exact duplicate collapses
	s.RecordPoint(models.PricePoint{Timestamp: p.Timestamp, Symbol: "btc", Price: 9999}) // same instant, new price

	bucket := s.days[date(2022, 1, 1)]
	if bucket == nil {
		t.Fatalf("missing day bucket")
	}
	if got := len(bucket.points["btc"]); got != 2 {
		t.Fatalf("want 2 distinct points, got %d", got)
	}
}

func TestRecordSummary_LastWriteWins(t *testing.T) {
	s := New(time.UTC)
	s.RecordSummary(models.SymbolSummary{Symbol: "btc", MinPrice: 1})
	s.RecordSummary(models.SymbolSummary{Symbol: "btc", MinPrice: 2})

	sum, ok := s.SummaryFor("btc")
	if !ok || sum.MinPrice != 2 {
		t.Fatalf("want replaced summary, got ok=%v sum=%+v", ok, sum)
	}
}

func TestSummaryFor_NotFound(t *testing.T) {
	s := New(time.UTC)
	if _, ok := s.SummaryFor("btc"); ok {
		t.Fatalf("empty store must report not found")
	}
}

func TestSortedSymbols(t *testing.T) {
	s := New(time.UTC)
	less, ok := ResolveSortMode("NORMALIZED_DESC")
	if !ok {
		t.Fatalf("mode lookup must be case-insensitive")
	}

	if got := s.SortedSymbols(less); len(got) != 0 {
		t.Fatalf("empty store: want empty slice, got %v", got)
	}

	s.RecordSummary(models.SymbolSummary{Symbol: "btc", NormalizedRange: 0.43})
	s.RecordSummary(models.SymbolSummary{Symbol: "eth", NormalizedRange: 0.64})
	s.RecordSummary(models.SymbolSummary{Symbol: "ltc", NormalizedRange: 0.5})

	got := s.SortedSymbols(less)
	want := []string{"eth", "ltc", "btc"}
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}

func TestBestMoverForDate_TableDriven(t *testing.T) {
	type point struct {
		symbol string
		hour   int
		price  float64
	}

	cases := []struct {
		name    string
		points  []point
		query   time.Time
		want    string
		wantHit bool
	}{
		{
			name:    "no bucket for date",
			points:  nil,
			query:   date(2099, 1, 1),
			wantHit: false,
		},
		{
			name: "single zero-range symbol yields nothing",
			points: []point{
				{"btc", 10, 100}, {"btc", 11, 100},
			},
			query:   date(2022, 1, 1),
			wantHit: false,
		},
		{
			name: "highest normalized range wins",
			points: []point{
				{"btc", 10, 100}, {"btc", 11, 110}, // range 0.10
				{"eth", 10, 100}, {"eth", 11, 105}, // range 0.05
			},
			query:   date(2022, 1, 1),
			want:    "btc",
			wantHit: true,
		},
		{
			name: "first ingested symbol keeps exact ties",
			points: []point{
				{"eth", 10, 100}, {"eth", 11, 110},
				{"btc", 10, 200}, {"btc", 11, 220},
			},
			query:   date(2022, 1, 1),
			want:    "eth",
			wantHit: true,
		},
		{
			name: "points from other days are excluded",
			points: []point{
				{"btc", 10, 100}, {"btc", 11, 110},
			},
			query:   date(2022, 1, 2),
			wantHit: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(time.UTC)
			for _, p := range tc.points {
				s.RecordPoint(models.PricePoint{
					Timestamp: ts(2022, 1, 1, p.hour),
					Symbol:    p.symbol,
					Price:     p.price,
				})
			}

			got, ok := s.BestMoverForDate(tc.query)
			if ok != tc.wantHit {
				t.Fatalf("hit: want %v got %v (%q)", tc.wantHit, ok, got)
			}
			if ok && got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestDayBucketing_FixedZone(t *testing.T) {
	athens, err := time.LoadLocation("Europe/Athens")
	if err != nil {
		t.Skipf("zone db unavailable: %v", err)
	}
	s := New(athens)

	// 23:30 UTC on Jan 1 is already Jan 2 in Athens (+2).
	s.RecordPoint(models.PricePoint{
		Timestamp: time.Date(2022, 1, 1, 23, 30, 0, 0, time.UTC).UnixMilli(),
		Symbol:    "btc",
		Price:     100,
	})
	s.RecordPoint(models.PricePoint{
		Timestamp: time.Date(2022, 1, 1, 23, 45, 0, 0, time.UTC).UnixMilli(),
		Symbol:    "btc",
		Price:     110,
	})

	if _, ok := s.BestMoverForDate(date(2022, 1, 1)); ok {
		t.Fatalf("points must not land on the UTC date")
	}
	got, ok := s.BestMoverForDate(date(2022, 1, 2))
	if !ok || got != "btc" {
		t.Fatalf("want btc on Athens date, got ok=%v %q", ok, got)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New(time.UTC)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.RecordPoint(models.PricePoint{
					Timestamp: ts(2022, 1, 1, 10) + int64(j),
					Symbol:    "btc",
					Price:     float64(100 + n),
				})
				s.RecordSummary(models.SymbolSummary{Symbol: "btc", NormalizedRange: float64(n)})
				s.SummaryFor("btc")
				s.BestMoverForDate(date(2022, 1, 1))
			}
		}(i)
	}
	wg.Wait()

	if _, ok := s.SummaryFor("btc"); !ok {
		t.Fatalf("summary lost after concurrent writes")
	}
}

func TestSortModes(t *testing.T) {
	modes := SortModes()
	if len(modes) != 1 || modes[0] != SortNormalizedDesc {
		t.Fatalf("unexpected modes: %v", modes)
	}
	if _, ok := ResolveSortMode("abra-kadabra"); ok {
		t.Fatalf("unknown mode must not resolve")
	}
}
