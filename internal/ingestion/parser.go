package ingestion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// Sentinel errors for batch parsing. Callers match them with errors.Is to
// distinguish caller-input problems from internal faults.
var (
	// ErrMalformedNumber marks a row whose timestamp or price cannot be
	// parsed, or whose shape is not exactly three comma-separated fields.
	ErrMalformedNumber = errors.New("malformed batch row")

	// ErrSymbolMismatch marks a row naming a different symbol than the one
	// the batch was uploaded for. The whole batch is rejected.
	ErrSymbolMismatch = errors.New("symbol mismatch")
)

// batchFieldCount is the fixed row shape: timestamp,symbol,price.
const batchFieldCount = 3

// ParseBatch reads an uploaded batch and returns its typed price points.
//
// Batch format:
//   - First line is a header and is skipped without validation.
//   - Every following line is "timestamp,symbol,price": int64 epoch millis,
//     case-insensitive symbol, float64 price. No quoting or escaping.
//
// It fails on:
//   - a row without exactly 3 fields, or with unparsable numerics (ErrMalformedNumber)
//   - a row whose symbol differs from expectedSymbol, case-insensitively (ErrSymbolMismatch)
//
// The first failing row aborts the whole batch; no partial result is
// returned. Every returned point carries the lowercased expectedSymbol,
// normalizing whatever casing the rows used.
//
// Parameters:
//   - r: batch body (UTF-8 text).
//   - expectedSymbol: symbol this batch was uploaded for.
//
// Returns:
//   - []models.PricePoint: points in file order.
//   - error: nil, or the first row error wrapped with its line number.
func ParseBatch(r io.Reader, expectedSymbol string) ([]models.PricePoint, error) {
	symbol := strings.ToLower(expectedSymbol)

	sc := bufio.NewScanner(r)

	// Skip exactly one header line. A body with no lines at all simply
	// yields zero points; the caller decides what emptiness means.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, nil
	}

	var points []models.PricePoint
	lineNumber := 1 // header already read

	for sc.Scan() {
		lineNumber++
		line := sc.Text()

		fields := strings.Split(line, ",")
		if len(fields) != batchFieldCount {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d: %w",
				lineNumber, batchFieldCount, len(fields), ErrMalformedNumber)
		}

		ts, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestamp %q: %w", lineNumber, fields[0], ErrMalformedNumber)
		}

		rowSymbol := strings.ToLower(strings.TrimSpace(fields[1]))
		if rowSymbol != symbol {
			return nil, fmt.Errorf("line %d: expected symbol %s, but got %s: %w",
				lineNumber, symbol, rowSymbol, ErrSymbolMismatch)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price %q: %w", lineNumber, fields[2], ErrMalformedNumber)
		}

		points = append(points, models.PricePoint{
			Timestamp: ts,
			Symbol:    symbol,
			Price:     price,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
	}

	return points, nil
}
