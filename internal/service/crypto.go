package service

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/metadata"
	"github.com/guttosm/cryptopulse/internal/recorder"
	"github.com/guttosm/cryptopulse/internal/store"
)

// filenamePattern is the accepted upload name shape: SYMBOL_values.csv.
var filenamePattern = regexp.MustCompile(`^[A-Za-z0-9]+_values\.csv$`)

// dateLayout is the strict calendar-date format accepted by queries.
const dateLayout = "2006-01-02"

// CryptoService orchestrates uploads and queries against the analytics
// store. It validates all external input and maps outcomes to the error
// kinds the HTTP boundary understands; the store itself never fails.
type CryptoService interface {
	// ProcessUpload validates, parses, and ingests one batch. It returns
	// the symbol the batch was accepted for and the number of points.
	ProcessUpload(ctx context.Context, filename string, body io.Reader) (string, int, error)

	// SortedSymbols returns all known symbols ordered by the named mode.
	SortedSymbols(sortMode string) ([]string, error)

	// SummaryFor returns the stored summary for a symbol, case-insensitively.
	SummaryFor(symbol string) (models.SymbolSummary, error)

	// BestMover returns the symbol with the highest normalized range on the
	// given YYYY-MM-DD date.
	BestMover(date string) (string, error)
}

type cryptoService struct {
	store   *store.Store
	rec     recorder.Recorder
	allowed map[string]struct{}
}

// NewCryptoService builds the service around the shared store, the upload
// audit recorder, and the configured symbol allow-list.
func NewCryptoService(st *store.Store, rec recorder.Recorder, allowedSymbols []string) CryptoService {
	allowed := make(map[string]struct{}, len(allowedSymbols))
	for _, s := range allowedSymbols {
		allowed[strings.ToLower(s)] = struct{}{}
	}
	return &cryptoService{store: st, rec: rec, allowed: allowed}
}

// ProcessUpload runs the full ingestion pipeline for one batch.
//
// Validation order (first failure aborts, nothing is ingested):
//  1. filename matches SYMBOL_values.csv
//  2. extracted symbol is on the allow-list
//  3. every row parses and names the expected symbol
//  4. the batch yields at least one point
//
// Only after the whole batch is validated are the summary and points
// written, so a rejected batch never partially lands in the store. The
// summary write and the per-point writes are individually atomic but not
// atomic with each other.
func (s *cryptoService) ProcessUpload(ctx context.Context, filename string, body io.Reader) (string, int, error) {
	if !filenamePattern.MatchString(filename) {
		return "", 0, Validationf("wrong file name format, expected SYMBOL_values.csv")
	}

	symbol := strings.ToLower(strings.SplitN(filename, "_", 2)[0])
	if _, ok := s.allowed[symbol]; !ok {
		return "", 0, Validationf("symbol %s is not allowed", symbol)
	}

	points, err := ingestion.ParseBatch(body, symbol)
	if err != nil {
		switch {
		case errors.Is(err, ingestion.ErrSymbolMismatch), errors.Is(err, ingestion.ErrMalformedNumber):
			return "", 0, &Error{Kind: KindValidation, Message: err.Error(), Err: err}
		default:
			logger.L().Error().Err(err).Str("file", filename).Msg("batch parse failed")
			return "", 0, Computationf(err, "error while processing uploaded file")
		}
	}
	if len(points) == 0 {
		return "", 0, Computationf(nil, "no data was retrieved from file, please check the file")
	}

	summary, err := metadata.Calculate(symbol, points)
	if err != nil {
		logger.L().Error().Err(err).Str("symbol", symbol).Msg("metadata computation failed")
		return "", 0, Computationf(err, "error while computing metadata")
	}

	s.store.RecordSummary(summary)
	for _, p := range points {
		s.store.RecordPoint(p)
	}

	// Audit is best-effort; an unavailable backend must not fail an upload
	// that already landed in the store.
	if err := s.rec.RecordUpload(recorder.UploadEvent{
		Symbol:     symbol,
		Filename:   filename,
		Rows:       len(points),
		ReceivedAt: time.Now().UTC(),
	}); err != nil {
		logger.L().Warn().Err(err).Str("file", filename).Msg("upload audit write failed")
	}

	return symbol, len(points), nil
}

// SortedSymbols resolves the sort mode case-insensitively and returns the
// ordered symbol list. Unknown modes fail validation with a message
// enumerating the valid names; an empty store is a no-content outcome.
func (s *cryptoService) SortedSymbols(sortMode string) ([]string, error) {
	less, ok := store.ResolveSortMode(sortMode)
	if !ok {
		return nil, Validationf("wrong sorting type, available: %s", strings.Join(store.SortModes(), ", "))
	}

	symbols := s.store.SortedSymbols(less)
	if len(symbols) == 0 {
		return nil, NoContentf("no symbols ingested yet")
	}
	return symbols, nil
}

// SummaryFor lowercases the symbol and looks its summary up.
func (s *cryptoService) SummaryFor(symbol string) (models.SymbolSummary, error) {
	sum, ok := s.store.SummaryFor(strings.ToLower(symbol))
	if !ok {
		return models.SymbolSummary{}, NoContentf("nothing was found for symbol %s", symbol)
	}
	return sum, nil
}

// BestMover parses the date strictly and asks the store for that day's
// highest normalized-range symbol.
func (s *cryptoService) BestMover(date string) (string, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}

	symbol, ok := s.store.BestMoverForDate(day)
	if !ok {
		return "", NoContentf("no data registered for date %s", date)
	}
	return symbol, nil
}
