package fundamentals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarcia/secfund/internal/external/edgar"
	"github.com/agarcia/secfund/internal/external/yahoo"
	"github.com/agarcia/secfund/internal/metrics"
	"github.com/agarcia/secfund/internal/occupancy"
	"github.com/agarcia/secfund/pkg/config"
	"github.com/agarcia/secfund/pkg/logger"
)

type fakeFilings struct {
	cik     string
	profile *edgar.CompanyProfile
	facts   *metrics.FactsDocument

	cikErr     error
	profileErr error
	factsErr   error
}

func (f *fakeFilings) LookupCIK(_ context.Context, _ string) (string, error) {
	if f.cikErr != nil {
		return "", f.cikErr
	}
	return f.cik, nil
}

func (f *fakeFilings) CompanyProfile(_ context.Context, _ string) (*edgar.CompanyProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeFilings) CompanyFacts(_ context.Context, _ string) (*metrics.FactsDocument, error) {
	if f.factsErr != nil {
		return nil, f.factsErr
	}
	return f.facts, nil
}

type fakeQuoter struct {
	data *yahoo.MarketData
	err  error
}

func (f *fakeQuoter) Quote(_ context.Context, _ string) (*yahoo.MarketData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type fakeMiner struct {
	result *occupancy.Result
	err    error
	calls  int
}

func (f *fakeMiner) Extract(_ context.Context, _ string) (*occupancy.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func annualUSD(val float64, start, end string) metrics.Concept {
	return metrics.Concept{Units: map[string][]metrics.ConceptFact{
		"USD": {{Start: start, End: end, Val: val, Form: "10-K", FY: 2023, FP: "FY"}},
	}}
}

func instantUSD(val float64, end string) metrics.Concept {
	return metrics.Concept{Units: map[string][]metrics.ConceptFact{
		"USD": {{End: end, Val: val, Form: "10-K", FY: 2023, FP: "FY"}},
	}}
}

func instantShares(val float64, end string) metrics.Concept {
	return metrics.Concept{Units: map[string][]metrics.ConceptFact{
		"shares": {{End: end, Val: val, Form: "10-K", FY: 2023, FP: "FY"}},
	}}
}

func testFactsDocument() *metrics.FactsDocument {
	return &metrics.FactsDocument{
		CIK:        320193,
		EntityName: "Acme Corp",
		Facts: map[string]map[string]metrics.Concept{
			"us-gaap": {
				"Revenues":                     annualUSD(1_000_000, "2023-01-01", "2023-12-31"),
				"NetIncomeLoss":                annualUSD(100_000, "2023-01-01", "2023-12-31"),
				"Assets":                       instantUSD(2_000_000, "2023-12-31"),
				"Liabilities":                  instantUSD(1_200_000, "2023-12-31"),
				"StockholdersEquity":           instantUSD(800_000, "2023-12-31"),
				"CostOfGoodsAndServicesSold":   annualUSD(600_000, "2023-01-01", "2023-12-31"),
				"CommonStockSharesOutstanding": instantShares(50_000, "2023-12-31"),
			},
		},
	}
}

func testProfile() *edgar.CompanyProfile {
	return &edgar.CompanyProfile{
		CIK:            "0000320193",
		Name:           "Acme Corp",
		SIC:            "3571",
		SICDescription: "Electronic Computers",
		FiscalYearEnd:  "1231",
	}
}

func testService(filings FilingData, quoter MarketQuoter, miner OccupancyMiner) *Service {
	log := logger.New(&config.Config{LogLevel: "error", LogFormat: "console"})
	return NewService(filings, quoter, miner, time.Hour, log)
}

func floatPtr(v float64) *float64 { return &v }

func TestFundamentals_FullReport(t *testing.T) {
	filings := &fakeFilings{cik: "0000320193", profile: testProfile(), facts: testFactsDocument()}
	quoter := &fakeQuoter{data: &yahoo.MarketData{
		SharePrice: floatPtr(20),
		Currency:   "USD",
		Source:     "YahooFinance",
		FetchedAt:  "2024-01-15T10:00:00Z",
	}}
	svc := testService(filings, quoter, nil)

	r, err := svc.Fundamentals(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, "ACME", r.Ticker)
	assert.Equal(t, "Acme Corp", r.CompanyName)
	assert.Equal(t, "Technology", r.Industry)
	assert.Equal(t, "12-31", r.FiscalYearEnd)
	assert.Equal(t, "SEC EDGAR (Annual 10-K Data)", r.DataSource)

	require.NotNil(t, r.IncomeStatement.Revenue)
	assert.Equal(t, 1_000_000.0, *r.IncomeStatement.Revenue)
	require.NotNil(t, r.IncomeStatement.GrossProfit)
	assert.Equal(t, 400_000.0, *r.IncomeStatement.GrossProfit)
	require.NotNil(t, r.BalanceSheet.Assets.TotalAssets)
	assert.Equal(t, 2_000_000.0, *r.BalanceSheet.Assets.TotalAssets)

	require.NotNil(t, r.ProfitabilityRatios.GrossMarginPct)
	assert.Equal(t, 40.0, *r.ProfitabilityRatios.GrossMarginPct)
	require.NotNil(t, r.PerShareMetrics.EPSCalculated)
	assert.Equal(t, 2.0, *r.PerShareMetrics.EPSCalculated)

	// Market cap derived from price and shares: 20 * 50000.
	require.NotNil(t, r.MarketData.MarketCap)
	assert.Equal(t, 1_000_000.0, *r.MarketData.MarketCap)
	require.NotNil(t, r.MarketData.PERatio)
	assert.Equal(t, 10.0, *r.MarketData.PERatio)
	require.NotNil(t, r.MarketData.EnterpriseValue)
	assert.Equal(t, 1_000_000.0, *r.MarketData.EnterpriseValue)

	assert.True(t, r.DataQuality.DataComplete)
	assert.True(t, r.DataQuality.ProvenanceConfirmedAnnual)
	assert.Equal(t, "2023-12-31", r.DataQuality.ReportEndDate)
	assert.True(t, r.DataQuality.MarketDataProvided)

	assert.Nil(t, r.BankingMetrics)
	assert.Nil(t, r.REITMetrics)
}

func TestFundamentals_SharePriceDerivedFromMarketCap(t *testing.T) {
	filings := &fakeFilings{cik: "0000320193", profile: testProfile(), facts: testFactsDocument()}
	quoter := &fakeQuoter{data: &yahoo.MarketData{MarketCap: floatPtr(1_500_000)}}
	svc := testService(filings, quoter, nil)

	r, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)
	require.NotNil(t, r.MarketData.SharePrice)
	assert.Equal(t, 30.0, *r.MarketData.SharePrice)
}

func TestFundamentals_QuoteFailureDegrades(t *testing.T) {
	filings := &fakeFilings{cik: "0000320193", profile: testProfile(), facts: testFactsDocument()}
	quoter := &fakeQuoter{err: errors.New("quote host unreachable")}
	svc := testService(filings, quoter, nil)

	r, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Nil(t, r.MarketData.MarketCap)
	assert.Nil(t, r.MarketData.SharePrice)
	assert.Nil(t, r.MarketData.PERatio)
	assert.False(t, r.DataQuality.MarketDataProvided)
}

func TestFundamentals_REITRunsOccupancyMiner(t *testing.T) {
	profile := testProfile()
	profile.SIC = "6798"
	profile.SICDescription = "Real Estate Investment Trusts"
	filings := &fakeFilings{cik: "0000726728", profile: profile, facts: testFactsDocument()}
	miner := &fakeMiner{result: &occupancy.Result{
		Ticker:        "O",
		OccupancyRate: 98.2,
		Source:        occupancy.SourceStructuredTag,
		Context:       "Occupancy of 98.2%",
		FilingURL:     "https://example.com/filing.htm",
	}}
	svc := testService(filings, nil, miner)

	r, err := svc.Fundamentals(context.Background(), "O")
	require.NoError(t, err)
	assert.Equal(t, "REIT", r.Industry)
	require.NotNil(t, r.REITMetrics)
	require.NotNil(t, r.REITMetrics.Occupancy)
	assert.Equal(t, 98.2, r.REITMetrics.Occupancy.OccupancyRatePct)
	assert.Equal(t, occupancy.SourceStructuredTag, r.REITMetrics.Occupancy.Source)
	assert.Equal(t, 1, miner.calls)
}

func TestFundamentals_OccupancyFailureDegrades(t *testing.T) {
	profile := testProfile()
	profile.SIC = "6798"
	filings := &fakeFilings{cik: "0000726728", profile: profile, facts: testFactsDocument()}
	miner := &fakeMiner{err: occupancy.ErrNoReliableRate}
	svc := testService(filings, nil, miner)

	r, err := svc.Fundamentals(context.Background(), "O")
	require.NoError(t, err)
	require.NotNil(t, r.REITMetrics)
	assert.Nil(t, r.REITMetrics.Occupancy)
}

func TestFundamentals_MinerNotRunForNonREIT(t *testing.T) {
	filings := &fakeFilings{cik: "0000320193", profile: testProfile(), facts: testFactsDocument()}
	miner := &fakeMiner{}
	svc := testService(filings, nil, miner)

	_, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, 0, miner.calls)
}

func TestFundamentals_CacheHit(t *testing.T) {
	filings := &fakeFilings{cik: "0000320193", profile: testProfile(), facts: testFactsDocument()}
	svc := testService(filings, nil, nil)

	first, err := svc.Fundamentals(context.Background(), "acme")
	require.NoError(t, err)

	filings.factsErr = errors.New("edgar down")
	second, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestFundamentals_FactsFailureDegrades(t *testing.T) {
	filings := &fakeFilings{
		cik:      "0000320193",
		profile:  testProfile(),
		factsErr: errors.New("facts endpoint unavailable"),
	}
	svc := testService(filings, nil, nil)

	r, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)

	assert.Equal(t, "ACME", r.Ticker)
	assert.Equal(t, "Acme Corp", r.CompanyName)
	assert.Nil(t, r.IncomeStatement.Revenue)
	assert.Nil(t, r.PerShareMetrics.SharesOutstanding)

	// Reconciliation still runs: Assets is rebuilt from the (empty)
	// liabilities and equity rather than left missing.
	require.NotNil(t, r.BalanceSheet.Assets.TotalAssets)
	assert.Equal(t, 0.0, *r.BalanceSheet.Assets.TotalAssets)

	assert.False(t, r.DataQuality.DataComplete)
	assert.False(t, r.DataQuality.ProvenanceConfirmedAnnual)
	assert.Empty(t, r.DataQuality.ReportEndDate)
	require.NotEmpty(t, r.DataQuality.ValidationIssues)
	assert.Contains(t, r.DataQuality.ValidationIssues[0], "Missing critical items")
}

func TestFundamentals_ProfileFailureDegrades(t *testing.T) {
	filings := &fakeFilings{
		cik:        "0000320193",
		profileErr: errors.New("submissions endpoint unavailable"),
		facts:      testFactsDocument(),
	}
	svc := testService(filings, nil, nil)

	r, err := svc.Fundamentals(context.Background(), "ACME")
	require.NoError(t, err)

	assert.Empty(t, r.CompanyName)
	assert.Equal(t, "General", r.Industry)
	require.NotNil(t, r.IncomeStatement.Revenue)
	assert.Equal(t, 1_000_000.0, *r.IncomeStatement.Revenue)
	assert.True(t, r.DataQuality.ProvenanceConfirmedAnnual)
}

func TestFundamentals_UnknownTicker(t *testing.T) {
	filings := &fakeFilings{cikErr: edgar.ErrTickerNotFound}
	svc := testService(filings, nil, nil)

	_, err := svc.Fundamentals(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, edgar.ErrTickerNotFound)
}

func TestFundamentals_EmptyTicker(t *testing.T) {
	svc := testService(&fakeFilings{}, nil, nil)
	_, err := svc.Fundamentals(context.Background(), "  ")
	require.Error(t, err)
}

func TestFormatFiscalYearEnd(t *testing.T) {
	assert.Equal(t, "09-26", formatFiscalYearEnd("0926"))
	assert.Equal(t, "12-31", formatFiscalYearEnd("1231"))
	assert.Equal(t, "", formatFiscalYearEnd(""))
	assert.Equal(t, "13-1", formatFiscalYearEnd("13-1"))
}

func TestReportCache_Expiry(t *testing.T) {
	c := newReportCache(10 * time.Millisecond)
	c.set("acme", &Report{Ticker: "ACME"})

	got, ok := c.get("ACME")
	require.True(t, ok)
	assert.Equal(t, "ACME", got.Ticker)

	time.Sleep(15 * time.Millisecond)
	_, ok = c.get("ACME")
	assert.False(t, ok)
}
