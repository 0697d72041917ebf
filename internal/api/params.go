package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/models"
)

const (
	defaultLimit = 5
	defaultPage  = 1
)

// Endpoint whitelists. Order matters: missing required parameters are
// reported in whitelist order.
var (
	listingParams    = []string{"start_date", "end_date", "symbol", "limit", "page"}
	statisticsParams = []string{"start_date", "end_date", "symbol"}
)

// validateSupported rejects the first supplied query key that is not in the
// endpoint's whitelist. Keys are walked in the order they appear in the raw
// query string so the reported offender is deterministic.
func validateSupported(rawQuery string, supported []string) error {
	allowed := make(map[string]struct{}, len(supported))
	for _, p := range supported {
		allowed[p] = struct{}{}
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("Unsupported query parameter: %s", key)
		}
	}
	return nil
}

// validateRequired reports every absent required parameter, not just the
// first, joined in whitelist order.
func validateRequired(query url.Values, required []string) error {
	var missing []string
	for _, p := range required {
		if !query.Has(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("Missing required parameters: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseDate accepts the two supported date literals, disambiguated by the
// presence of a slash: YYYY/MM/DD when the value contains '/', YYYY-MM-DD
// otherwise. Both produce the same UTC midnight instant.
func ParseDate(value string) (time.Time, error) {
	layout := "2006-01-02"
	if strings.Contains(value, "/") {
		layout = "2006/01/02"
	}
	d, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s, expected YYYY-MM-DD or YYYY/MM/DD", value)
	}
	return d, nil
}

// parsePositiveInt parses limit/page style parameters. Empty means default;
// anything that is not an integer >= 1 is a client input error, never a
// silent coercion.
func parsePositiveInt(name, value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid value for parameter %s: %s, expected a positive integer", name, value)
	}
	return n, nil
}

// parseListingFilter validates and parses the query parameters of the
// listing endpoint into a storage filter. Validation happens before any
// storage access; a malformed request never reaches the repository.
func parseListingFilter(c *gin.Context) (models.Filter, error) {
	if err := validateSupported(c.Request.URL.RawQuery, listingParams); err != nil {
		return models.Filter{}, err
	}

	filter := models.Filter{Symbol: c.Query("symbol")}

	if s := c.Query("start_date"); s != "" {
		d, err := ParseDate(s)
		if err != nil {
			return models.Filter{}, err
		}
		filter.StartDate = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := ParseDate(s)
		if err != nil {
			return models.Filter{}, err
		}
		filter.EndDate = &d
	}

	var err error
	if filter.Limit, err = parsePositiveInt("limit", c.Query("limit"), defaultLimit); err != nil {
		return models.Filter{}, err
	}
	if filter.Page, err = parsePositiveInt("page", c.Query("page"), defaultPage); err != nil {
		return models.Filter{}, err
	}

	return filter, nil
}

// parseStatisticsWindow validates and parses the statistics endpoint's
// required window: start_date, end_date, and symbol must all be present.
func parseStatisticsWindow(c *gin.Context) (startDate, endDate time.Time, symbol string, err error) {
	if err = validateSupported(c.Request.URL.RawQuery, statisticsParams); err != nil {
		return
	}
	if err = validateRequired(c.Request.URL.Query(), statisticsParams); err != nil {
		return
	}

	if startDate, err = ParseDate(c.Query("start_date")); err != nil {
		return
	}
	if endDate, err = ParseDate(c.Query("end_date")); err != nil {
		return
	}
	symbol = c.Query("symbol")
	return
}
