// Package yahoo fetches share price and market cap from the public Yahoo
// Finance quote summary endpoint. Market data is best-effort: no API key,
// and callers must tolerate an empty result.
package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agarcia/secfund/pkg/config"
	"github.com/agarcia/secfund/pkg/httputil"
	"github.com/agarcia/secfund/pkg/logger"
)

// Client handles communication with Yahoo Finance.
type Client struct {
	http    *httputil.Client
	logger  *logger.Logger
	baseURL string
}

// NewClient creates a Yahoo Finance client from configuration.
func NewClient(cfg config.YahooConfig, log *logger.Logger) *Client {
	return &Client{
		http:    httputil.New(log, cfg.Timeout),
		logger:  log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// MarketData is a point-in-time market snapshot. Pointer fields are nil when
// the upstream response omitted them.
type MarketData struct {
	SharePrice *float64 `json:"share_price"`
	MarketCap  *float64 `json:"market_cap"`
	Currency   string   `json:"currency,omitempty"`
	Source     string   `json:"source,omitempty"`
	FetchedAt  string   `json:"fetched_at,omitempty"`
}

// quoteSummaryResponse is the subset of the quoteSummary payload we read.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				RegularMarketPrice *rawValue `json:"regularMarketPrice"`
				MarketCap          *rawValue `json:"marketCap"`
				Currency           string    `json:"currency"`
			} `json:"price"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

type rawValue struct {
	Raw *float64 `json:"raw"`
}

// Quote fetches the market snapshot for a ticker. Failures return an error;
// callers deciding to degrade gracefully do so themselves.
func (c *Client) Quote(ctx context.Context, ticker string) (*MarketData, error) {
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price",
		c.baseURL, strings.ToUpper(strings.TrimSpace(ticker)))

	var resp quoteSummaryResponse
	if err := c.http.GetJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", ticker, err)
	}

	md := &MarketData{}
	if len(resp.QuoteSummary.Result) > 0 {
		price := resp.QuoteSummary.Result[0].Price
		if price.RegularMarketPrice != nil && price.RegularMarketPrice.Raw != nil {
			md.SharePrice = price.RegularMarketPrice.Raw
		}
		if price.MarketCap != nil && price.MarketCap.Raw != nil {
			md.MarketCap = price.MarketCap.Raw
		}
		md.Currency = price.Currency
		md.Source = "YahooFinance"
		md.FetchedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return md, nil
}
