// Package edgar is the single access point to SEC EDGAR: ticker resolution,
// company submissions, XBRL company facts and filing documents.
package edgar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agarcia/secfund/internal/metrics"
	"github.com/agarcia/secfund/pkg/config"
	"github.com/agarcia/secfund/pkg/httputil"
	"github.com/agarcia/secfund/pkg/logger"
)

// ErrTickerNotFound is returned when a ticker has no CIK mapping.
var ErrTickerNotFound = errors.New("ticker not found")

// Client handles communication with SEC EDGAR. All requests carry the
// configured User-Agent and share one rate limiter; SEC enforces both.
type Client struct {
	http     *httputil.Client
	logger   *logger.Logger
	dataURL  string
	filesURL string
}

// NewClient creates an EDGAR client from configuration.
func NewClient(cfg config.EDGARConfig, log *logger.Logger) *Client {
	return &Client{
		http: httputil.New(log, cfg.Timeout).
			WithUserAgent(cfg.UserAgent).
			WithRateLimit(cfg.RequestsPerSecond),
		logger:   log,
		dataURL:  strings.TrimRight(cfg.DataURL, "/"),
		filesURL: strings.TrimRight(cfg.FilesURL, "/"),
	}
}

// tickerEntry is one row of the company_tickers.json mapping.
type tickerEntry struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// LookupCIK resolves a ticker to its zero-padded 10-digit CIK.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	var mapping map[string]tickerEntry
	url := c.filesURL + "/files/company_tickers.json"
	if err := c.http.GetJSON(ctx, url, &mapping); err != nil {
		return "", fmt.Errorf("fetch ticker mapping: %w", err)
	}

	for _, entry := range mapping {
		if strings.ToUpper(entry.Ticker) == ticker {
			return fmt.Sprintf("%010d", entry.CIK), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
}

// CompanyProfile fetches descriptive company data from the submissions API.
func (c *Client) CompanyProfile(ctx context.Context, cik string) (*CompanyProfile, error) {
	var doc submissionsDocument
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.dataURL, cik)
	if err := c.http.GetJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch submissions for CIK %s: %w", cik, err)
	}

	return &CompanyProfile{
		CIK:            cik,
		Name:           doc.Name,
		SIC:            doc.SIC,
		SICDescription: doc.SICDescription,
		Category:       doc.Category,
		FiscalYearEnd:  doc.FiscalYearEnd,
	}, nil
}

// CompanyFacts fetches the full XBRL facts document for a CIK.
func (c *Client) CompanyFacts(ctx context.Context, cik string) (*metrics.FactsDocument, error) {
	var doc metrics.FactsDocument
	url := fmt.Sprintf("%s/api/xbrl/companyfacts/CIK%s.json", c.dataURL, cik)
	if err := c.http.GetJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch company facts for CIK %s: %w", cik, err)
	}
	return &doc, nil
}

// RecentFilings lists the most recent filings of the given form types, most
// recent first, up to limit.
func (c *Client) RecentFilings(ctx context.Context, cik string, forms []string, limit int) ([]Filing, error) {
	var doc submissionsDocument
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.dataURL, cik)
	if err := c.http.GetJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch submissions for CIK %s: %w", cik, err)
	}

	wanted := make(map[string]bool, len(forms))
	for _, f := range forms {
		wanted[f] = true
	}

	recent := doc.Filings.Recent
	var filings []Filing
	for i := range recent.Form {
		if !wanted[recent.Form[i]] {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.PrimaryDocument) {
			break
		}
		filings = append(filings, Filing{
			Form:            recent.Form[i],
			AccessionNumber: recent.AccessionNumber[i],
			PrimaryDocument: recent.PrimaryDocument[i],
			URL:             c.filingURL(cik, recent.AccessionNumber[i], recent.PrimaryDocument[i]),
		})
		if limit > 0 && len(filings) >= limit {
			break
		}
	}
	return filings, nil
}

// FetchFiling downloads a filing document by URL and returns its body.
func (c *Client) FetchFiling(ctx context.Context, url string) (string, error) {
	body, err := c.http.GetBody(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch filing %s: %w", url, err)
	}
	return body, nil
}

// filingURL builds an archive URL. Archive paths use the unpadded CIK and
// the accession number without dashes.
func (c *Client) filingURL(cik, accessionNumber, primaryDocument string) string {
	acc := strings.ReplaceAll(accessionNumber, "-", "")
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s",
		c.filesURL, strings.TrimLeft(cik, "0"), acc, primaryDocument)
}
