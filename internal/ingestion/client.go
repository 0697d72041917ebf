package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/guttosm/finpulse/config"
)

// dailySeries maps "YYYY-MM-DD" date keys to the provider's per-day field
// map (e.g. "1. open" -> "142.2800").
type dailySeries map[string]map[string]string

// providerPayload is the provider's response shape. Besides the series it
// can carry a throttle notice ("Note") or an error ("Error Message"), both of
// which mean no usable data came back.
type providerPayload struct {
	Note         string      `json:"Note"`
	ErrorMessage string      `json:"Error Message"`
	TimeSeries   dailySeries `json:"Time Series (Daily)"`
}

// ProviderClient fetches daily time-series data from the upstream provider.
type ProviderClient struct {
	http   *resty.Client
	url    string
	apiKey string
}

// NewProviderClient builds a client from the provider configuration.
func NewProviderClient(cfg config.ProviderConfig) *ProviderClient {
	return &ProviderClient{
		http:   resty.New().SetTimeout(30 * time.Second),
		url:    cfg.URL,
		apiKey: cfg.APIKey,
	}
}

// FetchDailySeries requests the daily series for one symbol.
//
// Provider-level throttling and error payloads arrive with HTTP 200, so they
// are detected from the body, not the status code.
func (c *ProviderClient) FetchDailySeries(ctx context.Context, symbol string) (dailySeries, error) {
	url := fmt.Sprintf("%s&symbol=%s&apikey=%s", c.url, symbol, c.apiKey)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: provider returned status %d", symbol, resp.StatusCode())
	}

	var payload providerPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("fetch %s: decode response: %w", symbol, err)
	}

	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("fetch %s: provider error: %s", symbol, payload.ErrorMessage)
	}
	if payload.TimeSeries == nil {
		if payload.Note != "" {
			return nil, fmt.Errorf("fetch %s: provider throttled: %s", symbol, payload.Note)
		}
		return nil, fmt.Errorf("fetch %s: response has no daily time series", symbol)
	}

	return payload.TimeSeries, nil
}
