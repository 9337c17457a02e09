// Package occupancy extracts REIT portfolio occupancy rates from 10-K and
// 10-Q filings. Filers report occupancy in prose rather than structured
// data, so extraction is heuristic: inline XBRL first, then portfolio
// summary tables, then scored narrative matches.
package occupancy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/agarcia/secfund/internal/external/edgar"
	"github.com/agarcia/secfund/pkg/logger"
)

var (
	// ErrNoFilings is returned when the company has no recent 10-K/10-Q.
	ErrNoFilings = errors.New("no recent filings found")

	// ErrNoReliableRate is returned when every pass over every candidate
	// filing came up empty.
	ErrNoReliableRate = errors.New("no reliable rate found across recent filings")
)

// maxFilings bounds how many recent filings are scanned per ticker.
const maxFilings = 3

// FilingSource provides the EDGAR lookups the miner needs. *edgar.Client
// satisfies it.
type FilingSource interface {
	LookupCIK(ctx context.Context, ticker string) (string, error)
	RecentFilings(ctx context.Context, cik string, forms []string, limit int) ([]edgar.Filing, error)
	FetchFiling(ctx context.Context, url string) (string, error)
}

// Source kinds, in decreasing order of trust.
const (
	SourceStructuredTag = "structured-tag"
	SourceTable         = "table"
	SourceNarrativeText = "narrative-text"
)

// Result is an extracted occupancy rate with its provenance.
type Result struct {
	Ticker        string  `json:"ticker"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Source        string  `json:"source"`
	Form          string  `json:"form"`
	Context       string  `json:"context"`
	FilingURL     string  `json:"filing_url"`
}

// Miner extracts occupancy rates from a company's recent filings.
type Miner struct {
	source FilingSource
	logger *logger.Logger
}

// NewMiner creates a Miner backed by the given filing source.
func NewMiner(source FilingSource, log *logger.Logger) *Miner {
	return &Miner{source: source, logger: log}
}

// Extract finds the occupancy rate for a ticker. Filings are fetched
// concurrently but scanned most-recent-first, so a hit in a newer filing
// always wins regardless of fetch order.
func (m *Miner) Extract(ctx context.Context, ticker string) (*Result, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	cik, err := m.source.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, err
	}

	filings, err := m.source.RecentFilings(ctx, cik, []string{"10-Q", "10-K"}, maxFilings)
	if err != nil {
		return nil, err
	}
	if len(filings) == 0 {
		return nil, ErrNoFilings
	}

	type fetched struct {
		body string
		err  error
	}
	bodies := make([]fetched, len(filings))
	var wg sync.WaitGroup
	for i := range filings {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			body, err := m.source.FetchFiling(ctx, url)
			bodies[i] = fetched{body: body, err: err}
		}(i, filings[i].URL)
	}
	wg.Wait()

	for i, filing := range filings {
		if bodies[i].err != nil {
			m.logger.WithError(bodies[i].err).WithFields(map[string]interface{}{
				"ticker": ticker,
				"url":    filing.URL,
			}).Warn("skipping unfetchable filing")
			continue
		}
		if res, ok := m.scanFiling(ticker, filing, bodies[i].body); ok {
			return res, nil
		}
	}

	return nil, ErrNoReliableRate
}

// scanFiling runs the three extraction passes over one filing in order of
// reliability: inline XBRL, summary tables, narrative text.
func (m *Miner) scanFiling(ticker string, filing edgar.Filing, body string) (*Result, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		m.logger.WithError(err).WithField("url", filing.URL).Warn("unparseable filing")
		return nil, false
	}

	if res, ok := m.scanInlineXBRL(ticker, filing, doc); ok {
		return res, true
	}

	text := normalizeText(doc)

	if res, ok := m.scanTables(ticker, filing, text); ok {
		return res, true
	}
	return m.scanNarrative(ticker, filing, text)
}

// scanInlineXBRL looks for ix:nonfraction facts in a current-period context
// whose surrounding markup mentions occupancy.
func (m *Miner) scanInlineXBRL(ticker string, filing edgar.Filing, doc *goquery.Document) (*Result, bool) {
	var result *Result

	doc.Find(`ix\:nonfraction`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		ctxRef, _ := s.Attr("contextref")
		lowerRef := strings.ToLower(ctxRef)
		if !strings.Contains(lowerRef, "current") && !strings.Contains(lowerRef, "asof") {
			return true
		}

		parent := s.Parent()
		surrounding := strings.TrimSpace(
			extractText(parent.Parent()) + " " + extractText(parent))
		lower := strings.ToLower(surrounding)

		matched := false
		for _, kw := range xbrlKeywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return true
		}

		num := strings.ReplaceAll(strings.TrimSpace(s.Text()), ",", "")
		if !xbrlNumberPattern.MatchString(num) {
			return true
		}
		rate, err := strconv.ParseFloat(num, 64)
		if err != nil || rate < narrativeMinRate || rate > narrativeMaxRate {
			return true
		}

		result = &Result{
			Ticker:        ticker,
			OccupancyRate: roundTo(rate, 2),
			Source:        SourceStructuredTag,
			Form:          filing.Form,
			Context:       surrounding,
			FilingURL:     filing.URL,
		}
		return false
	})

	return result, result != nil
}

// scanTables matches "percent leased" figures from portfolio summary tables.
func (m *Miner) scanTables(ticker string, filing edgar.Filing, text string) (*Result, bool) {
	for _, match := range tablePattern.FindAllStringSubmatch(text, -1) {
		rate, err := strconv.ParseFloat(match[1], 64)
		if err != nil || rate < tableMinRate || rate > tableMaxRate {
			continue
		}
		return &Result{
			Ticker:        ticker,
			OccupancyRate: roundTo(rate, 1),
			Source:        SourceTable,
			Form:          filing.Form,
			Context:       fmt.Sprintf("Percent leased: %.1f%% (from portfolio summary)", rate),
			FilingURL:     filing.URL,
		}, true
	}
	return nil, false
}

// scanNarrative collects every prose match, scores its sentence, and
// returns the strongest candidate.
func (m *Miner) scanNarrative(ticker string, filing edgar.Filing, text string) (*Result, bool) {
	var candidates []candidate

	for _, pattern := range narrativePatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			rate, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
			if err != nil || rate < narrativeMinRate || rate > narrativeMaxRate {
				continue
			}

			start := loc[0] - 1000
			if start < 0 {
				start = 0
			}
			end := loc[1] + 1000
			if end > len(text) {
				end = len(text)
			}
			sentence := contextSentence(text[start:end])
			if disqualified(sentence) {
				continue
			}

			candidates = append(candidates, candidate{
				score:    scoreSentence(sentence),
				rate:     rate,
				sentence: sentence,
			})
		}
	}

	best, ok := bestCandidate(candidates)
	if !ok {
		return nil, false
	}
	return &Result{
		Ticker:        ticker,
		OccupancyRate: roundTo(best.rate, 2),
		Source:        SourceNarrativeText,
		Form:          filing.Form,
		Context:       best.sentence,
		FilingURL:     filing.URL,
	}, true
}

// normalizeText flattens the document to space-separated text and repairs
// decimals that HTML rendering split across elements.
func normalizeText(doc *goquery.Document) string {
	text := extractText(doc.Selection)
	text = collapseWhitespace.ReplaceAllString(text, " ")
	text = splitDecimalPercent.ReplaceAllString(text, "$1.$2$3")
	text = splitDecimal.ReplaceAllString(text, "$1.$2")
	return text
}

// extractText walks the selection's nodes collecting text with a space
// between adjacent text nodes, so words from sibling elements never fuse.
func extractText(sel *goquery.Selection) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.TrimSpace(sb.String())
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
