package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// Aggregate computes the arithmetic-mean open price, close price, and volume
// over the given records. It is pure: the caller supplies the exact record
// set, typically the full unpaginated result for the window.
//
// Price sums stay in decimal arithmetic end to end; binary floating point
// never enters the calculation. The volume mean uses integer division, so it
// truncates toward zero rather than rounding.
//
// An empty record set yields zero-valued averages with the window bounds and
// symbol still echoed back.
func Aggregate(startDate, endDate time.Time, symbol string, records []models.Record) models.Summary {
	summary := models.Summary{
		StartDate: startDate,
		EndDate:   endDate,
		Symbol:    symbol,
	}

	n := int64(len(records))
	if n == 0 {
		return summary
	}

	var totalOpen, totalClose decimal.Decimal
	var totalVolume int64
	for _, rec := range records {
		totalOpen = totalOpen.Add(rec.OpenPrice)
		totalClose = totalClose.Add(rec.ClosePrice)
		totalVolume += rec.Volume
	}

	count := decimal.NewFromInt(n)
	summary.AverageOpenPrice = totalOpen.Div(count)
	summary.AverageClosePrice = totalClose.Div(count)
	summary.AverageVolume = totalVolume / n

	return summary
}
