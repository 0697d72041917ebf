package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the per-symbol averages derived from a set of Records over a
// date window. It is computed fresh per request and never persisted.
//
// Fields:
//   - StartDate / EndDate: the requested window, echoed back even when no
//     records matched.
//   - AverageOpenPrice / AverageClosePrice: arithmetic means, kept as exact
//     decimals; rendered with two fractional digits on the wire.
//   - AverageVolume: integer mean, truncated toward zero (not rounded).
type Summary struct {
	StartDate         time.Time
	EndDate           time.Time
	Symbol            string
	AverageOpenPrice  decimal.Decimal
	AverageClosePrice decimal.Decimal
	AverageVolume     int64
}
