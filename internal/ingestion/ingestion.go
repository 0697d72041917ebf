package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/finpulse/config"
	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/storage"
)

const maxParallelSymbols = 4

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.FinancialDataRepository {
	return storage.NewFinancialDataRepository(db)
}

// ProcessSymbols fetches the configured symbols from the upstream provider
// and upserts the trailing window of daily records into Postgres.
//
// Behavior:
//   - Symbols are fetched concurrently, bounded by min(maxParallelSymbols,
//     NumCPU) or the provided parallel clamp.
//   - Each symbol's records are written in one batch; the (symbol, date)
//     upsert makes repeated runs idempotent.
//   - The first symbol error cancels the remaining fetches and is returned.
func ProcessSymbols(ctx context.Context, cfg config.ProviderConfig, db *sql.DB, parallel int) error {
	if err := config.ValidateProvider(cfg); err != nil {
		return err
	}

	repo := repoCtor(db)
	client := NewProviderClient(cfg)

	// Trailing ingestion window, today included.
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -cfg.PeriodDays)

	maxParallel := maxParallelSymbols
	if parallel > 0 {
		if parallel > maxParallelSymbols {
			parallel = maxParallelSymbols
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().
		Int("symbols", len(cfg.Symbols)).
		Int("max_parallel", maxParallel).
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Msg("ingestion start")

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, symbol := range cfg.Symbols {
		idx := i
		sym := symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			began := time.Now()
			logger.L().Info().Int("idx", idx+1).Int("total", len(cfg.Symbols)).Str("symbol", sym).Msg("symbol start")

			series, err := client.FetchDailySeries(gctx, sym)
			if err != nil {
				logger.L().Error().Str("symbol", sym).Err(err).Msg("provider fetch failed")
				return err
			}

			records, err := parseDailySeries(sym, series, start, end)
			if err != nil {
				logger.L().Error().Str("symbol", sym).Err(err).Msg("series parse failed")
				return err
			}

			if err := repo.UpsertRecordsBatch(gctx, records); err != nil {
				logger.L().Error().Str("symbol", sym).Err(err).Msg("upsert failed")
				return fmt.Errorf("symbol %s: upsert records: %w", sym, err)
			}

			logger.L().Info().
				Int("idx", idx+1).
				Int("total", len(cfg.Symbols)).
				Str("symbol", sym).
				Int("rows", len(records)).
				Dur("elapsed", time.Since(began)).
				Msg("symbol done")
			return nil
		})
	}

	return g.Wait()
}
