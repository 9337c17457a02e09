package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarcia/secfund/pkg/config"
	"github.com/agarcia/secfund/pkg/logger"
)

func testClient(serverURL string) *Client {
	log := logger.New(&config.Config{LogLevel: "error", LogFormat: "console"})
	return NewClient(config.YahooConfig{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	}, log)
}

func TestQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/AAPL", r.URL.Path)
		assert.Equal(t, "price", r.URL.Query().Get("modules"))
		w.Write([]byte(`{
			"quoteSummary": {
				"result": [{
					"price": {
						"regularMarketPrice": {"raw": 195.42},
						"marketCap": {"raw": 3000000000000},
						"currency": "USD"
					}
				}]
			}
		}`))
	}))
	defer srv.Close()

	md, err := testClient(srv.URL).Quote(context.Background(), "aapl")
	require.NoError(t, err)
	require.NotNil(t, md.SharePrice)
	assert.Equal(t, 195.42, *md.SharePrice)
	require.NotNil(t, md.MarketCap)
	assert.Equal(t, 3e12, *md.MarketCap)
	assert.Equal(t, "USD", md.Currency)
	assert.Equal(t, "YahooFinance", md.Source)
	assert.NotEmpty(t, md.FetchedAt)
}

func TestQuote_MissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [{"price": {"currency": "USD"}}]}}`))
	}))
	defer srv.Close()

	md, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, md.SharePrice)
	assert.Nil(t, md.MarketCap)
}

func TestQuote_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": []}}`))
	}))
	defer srv.Close()

	md, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, md.SharePrice)
	assert.Empty(t, md.Source)
}

func TestQuote_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	assert.Error(t, err)
}
