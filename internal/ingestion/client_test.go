package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/finpulse/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ProviderClient, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewProviderClient(config.ProviderConfig{
		URL:    server.URL + "/query?function=TIME_SERIES_DAILY",
		APIKey: "demo",
	})
	return client, server.Close
}

func TestFetchDailySeries_Success(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol param = %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "demo" {
			t.Errorf("apikey param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Meta Data": {"2. Symbol": "AAPL"},
			"Time Series (Daily)": {
				"2023-01-31": {"1. open": "142.2800", "4. close": "144.2900", "5. volume": "65874459"}
			}
		}`))
	})
	defer done()

	series, err := client.FetchDailySeries(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(series) != 1 || series["2023-01-31"]["1. open"] != "142.2800" {
		t.Fatalf("unexpected series: %v", series)
	}
}

// The provider signals throttling and errors inside a 200 body.
func TestFetchDailySeries_ProviderPayloadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "throttle note", body: `{"Note": "Thank you for using our API, the rate limit was reached."}`},
		{name: "error message", body: `{"Error Message": "Invalid API call."}`},
		{name: "missing series", body: `{"Meta Data": {}}`},
		{name: "not json", body: `<html>oops</html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			defer done()

			if _, err := client.FetchDailySeries(context.Background(), "AAPL"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFetchDailySeries_HTTPError(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})
	defer done()

	if _, err := client.FetchDailySeries(context.Background(), "AAPL"); err == nil {
		t.Fatalf("expected error for 503")
	}
}
