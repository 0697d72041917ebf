package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record represents one symbol's trading figures for a single calendar day,
// as stored in the financial_data table.
//
// The pair (Symbol, Date) is the natural key: re-ingesting the same day for
// the same symbol updates prices and volume, it never creates a second row.
//
// Prices are decimals, not floats. Rounding errors in money values are a
// correctness bug, so every arithmetic step stays in decimal.Decimal.
type Record struct {
	Symbol     string
	Date       time.Time // date only, UTC midnight
	OpenPrice  decimal.Decimal
	ClosePrice decimal.Decimal
	Volume     int64
}

// Filter narrows a records query. Nil date pointers and an empty symbol mean
// "no constraint". Limit and Page apply only to the listing endpoint; Limit 0
// disables pagination (the statistics path fetches the full window).
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Symbol    string
	Limit     int
	Page      int
}
