package ingestion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/logger"
)

// batchGlob matches preloadable batch files: SYMBOL_values.csv.
const batchGlob = "*_values.csv"

// maxPreloadParallel caps concurrent file processing.
const maxPreloadParallel = 8

// ProcessDirectory preloads every *_values.csv batch in dir through the
// upload callback, with bounded concurrency. The callback is a function
// rather than the service interface so this package has no dependency on
// the service layer.
//
// Parameters:
//   - ctx: cancels in-flight files.
//   - dir: directory containing batch files.
//   - upload: per-file ingestion callback (filename, open body) -> (symbol, rows, error).
//   - parallel: concurrent files; 0 means min(NumCPU, 8), values clamp to 1..8.
//
// Behavior:
//   - Files are discovered by name shape only; validation happens per file
//     in the callback, exactly as for an HTTP upload.
//   - The first failing file cancels the remaining ones and its error is
//     returned; nothing from the failed file lands in the store.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, upload func(ctx context.Context, filename string, body io.Reader) (string, int, error), parallel int) error {
	files, err := filepath.Glob(filepath.Join(dir, batchGlob))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.L().Warn().Str("dir", dir).Msg("no batch files to preload")
		return nil
	}

	maxParallel := maxPreloadParallel
	if parallel > 0 {
		if parallel > maxPreloadParallel {
			parallel = maxPreloadParallel
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Int("max_parallel", maxParallel).Str("dir", dir).Msg("preload start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		path := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			base := filepath.Base(path)

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("file %s: open: %w", base, err)
			}
			defer func() { _ = f.Close() }()

			symbol, rows, err := upload(gctx, base, f)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("preload file failed")
				return fmt.Errorf("file %s: %w", base, err)
			}

			logger.L().Info().
				Int("idx", idx+1).Int("total", len(files)).
				Str("file", base).Str("symbol", symbol).Int("rows", rows).
				Dur("elapsed", time.Since(start)).
				Msg("preload file done")
			return nil
		})
	}

	return g.Wait()
}
