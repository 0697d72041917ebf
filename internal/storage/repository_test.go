package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/guttosm/finpulse/internal/domain/models"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*financialDataRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &financialDataRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"symbol", "date", "open_price", "close_price", "volume"}).
		AddRow("AAPL", time.Date(2023, 1, 30, 0, 0, 0, 0, time.UTC), "144.01", "143.00", int64(100)).
		AddRow("AAPL", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), "142.28", "144.29", int64(200))
}

func TestBuildConditions(t *testing.T) {
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		filter    models.Filter
		wantWhere string
		wantArgs  int
	}{
		{name: "no filter", filter: models.Filter{}, wantWhere: "", wantArgs: 0},
		{name: "symbol only", filter: models.Filter{Symbol: "AAPL"}, wantWhere: " WHERE symbol = $1", wantArgs: 1},
		{name: "dates only", filter: models.Filter{StartDate: &day, EndDate: &day2}, wantWhere: " WHERE date >= $1 AND date <= $2", wantArgs: 2},
		{
			name:      "all clauses",
			filter:    models.Filter{Symbol: "AAPL", StartDate: &day, EndDate: &day2},
			wantWhere: " WHERE symbol = $1 AND date >= $2 AND date <= $3",
			wantArgs:  3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildConditions(tc.filter)
			if where != tc.wantWhere {
				t.Fatalf("where = %q, want %q", where, tc.wantWhere)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("args = %d, want %d", len(args), tc.wantArgs)
			}
		})
	}
}

func TestFetch_NoFilter(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM financial_data")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT symbol, date, open_price, close_price, volume FROM financial_data ORDER BY date, symbol")).
		WillReturnRows(recordRows())

	records, count, err := repo.Fetch(context.Background(), models.Filter{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if count != 2 || len(records) != 2 {
		t.Fatalf("count=%d records=%d", count, len(records))
	}
	if !records[1].OpenPrice.Equal(decimal.RequireFromString("142.28")) {
		t.Fatalf("open price scanned as %s", records[1].OpenPrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFetch_FilterAndPagination(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM financial_data WHERE symbol = $1 AND date >= $2 AND date <= $3")).
		WithArgs("AAPL", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	// page 2, limit 5 -> LIMIT 5 OFFSET 5, both bound.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT symbol, date, open_price, close_price, volume FROM financial_data WHERE symbol = $1 AND date >= $2 AND date <= $3 ORDER BY date, symbol LIMIT $4 OFFSET $5")).
		WithArgs("AAPL", start, end, 5, 5).
		WillReturnRows(recordRows())

	filter := models.Filter{Symbol: "AAPL", StartDate: &start, EndDate: &end, Limit: 5, Page: 2}
	records, count, err := repo.Fetch(context.Background(), filter)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if count != 12 || len(records) != 2 {
		t.Fatalf("count=%d records=%d", count, len(records))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// An offset beyond the result set yields an empty slice, not an error, while
// the count still reflects all matching rows.
func TestFetch_OffsetPastEnd(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM financial_data WHERE symbol = $1")).
		WithArgs("AAPL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs("AAPL", 5, 45).
		WillReturnRows(sqlmock.NewRows([]string{"symbol", "date", "open_price", "close_price", "volume"}))

	records, count, err := repo.Fetch(context.Background(), models.Filter{Symbol: "AAPL", Limit: 5, Page: 10})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", records)
	}
}

func TestFetch_CountError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM financial_data")).
		WillReturnError(dummyErr{})

	if _, _, err := repo.Fetch(context.Background(), models.Filter{}); err == nil {
		t.Fatalf("expected error from count query")
	}
}

func TestUpsertRecordsBatch(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	records := []models.Record{
		{Symbol: "AAPL", Date: day, OpenPrice: decimal.RequireFromString("142.28"), ClosePrice: decimal.RequireFromString("144.29"), Volume: 100},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO financial_data .* ON CONFLICT \\(symbol, date\\)")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.UpsertRecordsBatch(context.Background(), records); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertRecordsBatch_EmptyIsNoop(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	if err := repo.UpsertRecordsBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no queries expected: %v", err)
	}
}

func TestUpsertRecordsBatch_RollbackOnExecError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO financial_data")
	prep.ExpectExec().WillReturnError(dummyErr{})
	mock.ExpectRollback()

	records := []models.Record{{Symbol: "AAPL", Date: time.Now()}}
	if err := repo.UpsertRecordsBatch(context.Background(), records); err == nil {
		t.Fatalf("expected error on exec")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewFinancialDataRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if r := NewFinancialDataRepository(db); r == nil {
		t.Fatalf("expected non-nil repository")
	}
}
