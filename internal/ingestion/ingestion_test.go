package ingestion

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/finpulse/config"
	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/storage"
)

type captureRepo struct {
	mu      sync.Mutex
	upserts map[string][]models.Record
	err     error
}

func (r *captureRepo) Fetch(_ context.Context, _ models.Filter) ([]models.Record, int, error) {
	return nil, 0, nil
}

func (r *captureRepo) UpsertRecordsBatch(_ context.Context, records []models.Record) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upserts == nil {
		r.upserts = make(map[string][]models.Record)
	}
	for _, rec := range records {
		r.upserts[rec.Symbol] = append(r.upserts[rec.Symbol], rec)
	}
	return nil
}

func overrideRepo(t *testing.T, repo storage.FinancialDataRepository) {
	t.Helper()
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.FinancialDataRepository { return repo }
	t.Cleanup(func() { repoCtor = old })
}

func TestProcessSymbols_UpsertsAllSymbols(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"Time Series (Daily)": {
				"` + today + `": {"1. open": "10.00", "4. close": "10.50", "5. volume": "1000"}
			}
		}`))
	}))
	defer server.Close()

	repo := &captureRepo{}
	overrideRepo(t, repo)

	cfg := config.ProviderConfig{
		URL:        server.URL + "/query?function=TIME_SERIES_DAILY",
		APIKey:     "demo",
		Symbols:    []string{"AAPL", "IBM"},
		PeriodDays: 14,
	}

	if err := ProcessSymbols(context.Background(), cfg, nil, 2); err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(repo.upserts) != 2 {
		t.Fatalf("upserted symbols = %d, want 2", len(repo.upserts))
	}
	if len(repo.upserts["AAPL"]) != 1 || repo.upserts["AAPL"][0].Volume != 1000 {
		t.Fatalf("AAPL records: %+v", repo.upserts["AAPL"])
	}
}

func TestProcessSymbols_ProviderErrorFailsRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Error Message": "Invalid API call."}`))
	}))
	defer server.Close()

	overrideRepo(t, &captureRepo{})

	cfg := config.ProviderConfig{
		URL:        server.URL + "/query?function=TIME_SERIES_DAILY",
		APIKey:     "demo",
		Symbols:    []string{"AAPL"},
		PeriodDays: 14,
	}

	if err := ProcessSymbols(context.Background(), cfg, nil, 1); err == nil {
		t.Fatalf("expected provider error to fail the run")
	}
}

func TestProcessSymbols_InvalidProviderConfig(t *testing.T) {
	overrideRepo(t, &captureRepo{})

	if err := ProcessSymbols(context.Background(), config.ProviderConfig{}, nil, 1); err == nil {
		t.Fatalf("expected validation error for empty provider config")
	}
}
