package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// FinancialDataRepository defines the contract for DB operations over the
// financial_data table.
type FinancialDataRepository interface {
	// Fetch returns the records matching the filter plus the total number of
	// matching rows before pagination is applied.
	Fetch(ctx context.Context, filter models.Filter) ([]models.Record, int, error)

	// UpsertRecordsBatch inserts records in one transaction, updating
	// price/volume fields when a (symbol, date) pair already exists.
	UpsertRecordsBatch(ctx context.Context, records []models.Record) error
}

type financialDataRepository struct {
	db *sql.DB
}

func NewFinancialDataRepository(db *sql.DB) FinancialDataRepository {
	return &financialDataRepository{db: db}
}

// buildConditions translates the filter into a conjunctive WHERE clause with
// positional placeholders. Filter values are always bound parameters, never
// interpolated into the query text.
func buildConditions(filter models.Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Symbol != "" {
		args = append(args, filter.Symbol)
		conditions = append(conditions, fmt.Sprintf("symbol = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Fetch runs the count query and the data query over the same WHERE clause.
//
// When filter.Limit > 0 the data query is windowed with
// offset = (page - 1) * limit; an offset past the end of the result set
// yields an empty slice, not an error. Rows are ordered by (date, symbol)
// ascending so pagination stays stable across calls.
func (r *financialDataRepository) Fetch(ctx context.Context, filter models.Filter) ([]models.Record, int, error) {
	where, args := buildConditions(filter)

	var count int
	countQuery := "SELECT COUNT(*) FROM financial_data" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count financial_data: %w", err)
	}

	dataQuery := "SELECT symbol, date, open_price, close_price, volume FROM financial_data" +
		where + " ORDER BY date, symbol"
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		args = append(args, filter.Limit)
		dataQuery += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, offset)
		dataQuery += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select financial_data: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]models.Record, 0)
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.Symbol, &rec.Date, &rec.OpenPrice, &rec.ClosePrice, &rec.Volume); err != nil {
			return nil, 0, fmt.Errorf("scan financial_data row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate financial_data rows: %w", err)
	}

	return records, count, nil
}

// UpsertRecordsBatch writes all records in a single transaction. The
// (symbol, date) conflict target makes re-ingestion idempotent: existing rows
// get fresh price/volume values instead of duplicates.
func (r *financialDataRepository) UpsertRecordsBatch(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (symbol, date)
		DO UPDATE SET open_price = EXCLUDED.open_price,
					  close_price = EXCLUDED.close_price,
					  volume = EXCLUDED.volume
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Symbol, rec.Date, rec.OpenPrice, rec.ClosePrice, rec.Volume); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
