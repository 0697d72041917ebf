package ingestion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/finpulse/internal/domain/models"
)

const seriesDateLayout = "2006-01-02"

// Field names inside one day's map, after stripping the provider's ordinal
// prefix ("1. open" -> "open").
const (
	openField   = "open"
	closeField  = "close"
	volumeField = "volume"
)

// parseDailySeries converts a provider series into Records for one symbol,
// keeping only dates inside [start, end]. Days missing any of the open,
// close, or volume fields fail the whole parse; a partially ingested day
// would silently skew the statistics endpoint.
func parseDailySeries(symbol string, series dailySeries, start, end time.Time) ([]models.Record, error) {
	records := make([]models.Record, 0, len(series))

	for dateKey, fields := range series {
		date, err := time.ParseInLocation(seriesDateLayout, dateKey, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("symbol %s: invalid series date %q: %w", symbol, dateKey, err)
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		rec := models.Record{Symbol: symbol, Date: date}
		var haveOpen, haveClose, haveVolume bool

		for key, value := range fields {
			switch fieldName(key) {
			case openField:
				if rec.OpenPrice, err = decimal.NewFromString(value); err != nil {
					return nil, fmt.Errorf("symbol %s, date %s: invalid open price %q: %w", symbol, dateKey, value, err)
				}
				haveOpen = true
			case closeField:
				if rec.ClosePrice, err = decimal.NewFromString(value); err != nil {
					return nil, fmt.Errorf("symbol %s, date %s: invalid close price %q: %w", symbol, dateKey, value, err)
				}
				haveClose = true
			case volumeField:
				if rec.Volume, err = strconv.ParseInt(value, 10, 64); err != nil {
					return nil, fmt.Errorf("symbol %s, date %s: invalid volume %q: %w", symbol, dateKey, value, err)
				}
				haveVolume = true
			}
		}

		if !haveOpen || !haveClose || !haveVolume {
			return nil, fmt.Errorf("symbol %s, date %s: incomplete day (need open, close, volume)", symbol, dateKey)
		}

		records = append(records, rec)
	}

	return records, nil
}

// fieldName strips the provider's "N. " ordinal prefix from a per-day key.
// Keys without the prefix are returned trimmed as-is.
func fieldName(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return strings.TrimSpace(key[i+1:])
	}
	return strings.TrimSpace(key)
}
