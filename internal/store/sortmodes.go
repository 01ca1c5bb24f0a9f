package store

import (
	"sort"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// SortFunc orders two summaries; it reports whether a sorts before b.
type SortFunc func(a, b models.SymbolSummary) bool

// SortNormalizedDesc orders symbols by normalized range, highest first.
const SortNormalizedDesc = "normalized_desc"

// sortModes is the registry of named comparators. Adding a mode means
// adding an entry here; lookups and error messages pick it up automatically.
var sortModes = map[string]SortFunc{
	SortNormalizedDesc: func(a, b models.SymbolSummary) bool {
		return a.NormalizedRange > b.NormalizedRange
	},
}

// ResolveSortMode looks a comparator up by name, case-insensitively.
func ResolveSortMode(name string) (SortFunc, bool) {
	f, ok := sortModes[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// SortModes returns the registered mode names, sorted, for validation
// messages.
func SortModes() []string {
	out := make([]string, 0, len(sortModes))
	for name := range sortModes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
