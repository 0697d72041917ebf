package service

import (
	"context"
	"time"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/storage"
)

// QueryService defines the read-side business logic. It decouples HTTP
// handlers from data access; handlers never touch the repository directly.
type QueryService interface {
	// ListFinancialData returns the page of records selected by the filter
	// plus the total number of matching rows before pagination.
	ListFinancialData(ctx context.Context, filter models.Filter) ([]models.Record, int, error)

	// GetStatistics computes the averages over every record in the window
	// (no pagination) and reports how many records the summary covers.
	GetStatistics(ctx context.Context, startDate, endDate time.Time, symbol string) (models.Summary, int, error)
}

type queryService struct {
	repo storage.FinancialDataRepository
}

func NewQueryService(repo storage.FinancialDataRepository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) ListFinancialData(ctx context.Context, filter models.Filter) ([]models.Record, int, error) {
	return s.repo.Fetch(ctx, filter)
}

func (s *queryService) GetStatistics(ctx context.Context, startDate, endDate time.Time, symbol string) (models.Summary, int, error) {
	// Aggregation happens in-process over the full, unpaginated window.
	records, _, err := s.repo.Fetch(ctx, models.Filter{
		StartDate: &startDate,
		EndDate:   &endDate,
		Symbol:    symbol,
	})
	if err != nil {
		return models.Summary{}, 0, err
	}

	return Aggregate(startDate, endDate, symbol, records), len(records), nil
}
