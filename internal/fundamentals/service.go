// Package fundamentals orchestrates the full per-company pipeline: EDGAR
// company facts are resolved into a single annual fact set, reconciled,
// validated, and combined with computed ratios and a best-effort market
// quote into one Report.
package fundamentals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agarcia/secfund/internal/external/edgar"
	"github.com/agarcia/secfund/internal/external/yahoo"
	"github.com/agarcia/secfund/internal/metrics"
	"github.com/agarcia/secfund/internal/occupancy"
	"github.com/agarcia/secfund/pkg/logger"
)

// FilingData is the EDGAR surface the service depends on.
type FilingData interface {
	LookupCIK(ctx context.Context, ticker string) (string, error)
	CompanyProfile(ctx context.Context, cik string) (*edgar.CompanyProfile, error)
	CompanyFacts(ctx context.Context, cik string) (*metrics.FactsDocument, error)
}

// MarketQuoter fetches a market snapshot for a ticker. Failures degrade to
// an empty market block, never a failed report.
type MarketQuoter interface {
	Quote(ctx context.Context, ticker string) (*yahoo.MarketData, error)
}

// OccupancyMiner extracts an occupancy rate from recent filings. Used for
// REITs only, best-effort.
type OccupancyMiner interface {
	Extract(ctx context.Context, ticker string) (*occupancy.Result, error)
}

// Service builds fundamentals reports and caches them by ticker.
type Service struct {
	edgar     FilingData
	market    MarketQuoter
	occupancy OccupancyMiner
	cache     *reportCache
	logger    *logger.Logger
}

// NewService wires the collaborators. market and miner may be nil; the
// corresponding report sections then stay empty.
func NewService(filings FilingData, market MarketQuoter, miner OccupancyMiner, cacheTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		edgar:     filings,
		market:    market,
		occupancy: miner,
		cache:     newReportCache(cacheTTL),
		logger:    log,
	}
}

// Fundamentals returns the full report for a ticker, serving from cache when
// a fresh entry exists.
func (s *Service) Fundamentals(ctx context.Context, ticker string) (*Report, error) {
	upper := strings.ToUpper(strings.TrimSpace(ticker))
	if upper == "" {
		return nil, fmt.Errorf("empty ticker")
	}

	if r, ok := s.cache.get(upper); ok {
		s.logger.WithField("ticker", upper).Debug("fundamentals served from cache")
		return r, nil
	}

	r, err := s.build(ctx, upper)
	if err != nil {
		return nil, err
	}
	s.cache.set(upper, r)
	return r, nil
}

func (s *Service) build(ctx context.Context, ticker string) (*Report, error) {
	cik, err := s.edgar.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("looking up CIK for %s: %w", ticker, err)
	}

	// Collaborator fetches past CIK resolution are best-effort: a failure
	// leaves the corresponding input empty and the report is still built,
	// with the gaps surfaced through data_quality.
	profile, err := s.edgar.CompanyProfile(ctx, cik)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("company profile unavailable")
		profile = &edgar.CompanyProfile{}
	}
	industry := metrics.DetectIndustry(profile.SIC, profile.SICDescription)

	doc, err := s.edgar.CompanyFacts(ctx, cik)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("company facts unavailable")
		doc = &metrics.FactsDocument{}
	}

	resolution := metrics.Resolve(doc)
	normalized := metrics.Normalize(resolution.Facts)
	fs := metrics.Reconcile(metrics.NewFactSet(normalized, resolution.ReportEndDate))

	issues := metrics.Validate(fs)
	flags := metrics.FlagOneOffs(fs)
	ratios := metrics.CalculateRatios(fs, industry)

	report := buildReport(fs, ratios)
	report.Ticker = ticker
	report.CompanyName = profile.Name
	report.Industry = string(industry)
	report.SICCode = profile.SIC
	report.SICDescription = profile.SICDescription
	report.FiscalYearEnd = formatFiscalYearEnd(profile.FiscalYearEnd)
	report.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	report.MarketData = s.marketBlock(ctx, ticker, fs, ratios)

	report.DataQuality = DataQuality{
		ValidationIssues:          issues,
		OneOffFlags:               flags,
		DataComplete:              len(issues) == 0,
		ProvenanceConfirmedAnnual: fs.ReportEndDate != "",
		ReportEndDate:             fs.ReportEndDate,
		MarketDataProvided:        report.MarketData.MarketCap != nil || report.MarketData.SharePrice != nil,
	}

	industryBlock(report, industry, fs, ratios, s.mineOccupancy(ctx, ticker, industry))
	return report, nil
}

// marketBlock fetches a quote and derives the market-based figures. A failed
// or partial quote yields whatever can still be computed.
func (s *Service) marketBlock(ctx context.Context, ticker string, fs metrics.FactSet, rs metrics.RatioSet) MarketBlock {
	var block MarketBlock
	if s.market == nil {
		return block
	}

	quote, err := s.market.Quote(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("market quote unavailable")
		return block
	}
	block.Currency = quote.Currency
	block.Source = quote.Source
	block.FetchedAt = quote.FetchedAt

	sharePrice := quote.SharePrice
	marketCap := quote.MarketCap
	shares := fs.Shares()
	if marketCap == nil && sharePrice != nil && shares != 0 {
		mc := *sharePrice * shares
		marketCap = &mc
	}
	if sharePrice == nil && marketCap != nil && shares != 0 {
		sp := *marketCap / shares
		sharePrice = &sp
	}
	block.SharePrice = sharePrice
	block.MarketCap = marketCap
	if marketCap == nil {
		return block
	}

	if ni := fs.Get(metrics.NetIncome); fs.Nonzero(metrics.NetIncome) && *marketCap != 0 {
		pe := *marketCap / ni
		block.PERatio = &pe
	}

	cash := fs.Get(metrics.Cash) + fs.Get(metrics.RestrictedCash)
	ev := *marketCap + fs.TotalDebt() - cash
	block.EnterpriseValue = &ev

	if ebitda, ok := rs.Get(metrics.RatioEBITDA); ok && ebitda != 0 {
		ratio := ev / ebitda
		block.EVToEBITDA = &ratio
	}
	return block
}

func (s *Service) mineOccupancy(ctx context.Context, ticker string, industry metrics.Industry) *occupancy.Result {
	if industry != metrics.IndustryREIT || s.occupancy == nil {
		return nil
	}
	res, err := s.occupancy.Extract(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("occupancy extraction failed")
		return nil
	}
	return res
}

// formatFiscalYearEnd rewrites EDGAR's "MMDD" into "MM-DD"; anything else
// passes through unchanged.
func formatFiscalYearEnd(fye string) string {
	if len(fye) == 4 && isDigits(fye) {
		return fye[:2] + "-" + fye[2:]
	}
	return fye
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
