package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func factSet(values map[Metric]float64) FactSet {
	fs := FactSet{Values: make(map[Metric]float64, len(values)), ReportEndDate: "2023-12-31"}
	for k, v := range values {
		fs.Values[k] = v
	}
	return fs
}

func TestReconcile_ZeroFillsAbsentItems(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue: 1000,
	})

	fs = Reconcile(fs)

	assert.True(t, fs.Has(Goodwill))
	assert.Equal(t, 0.0, fs.Get(Goodwill))
	assert.True(t, fs.Has(InterestExpense))
	assert.True(t, fs.Has(DividendsPaid))
}

func TestReconcile_ZeroFillKeepsReportedValues(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Goodwill: 500,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 500.0, fs.Get(Goodwill))
}

func TestReconcile_WorkingCapitalFromComponents(t *testing.T) {
	fs := factSet(map[Metric]float64{
		ChangeInAR:        -10,
		ChangeInAP:        25,
		ChangeInInventory: -5,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 10.0, fs.Get(ChangeInWorkingCapital))
}

func TestReconcile_WorkingCapitalReportedNonzeroKept(t *testing.T) {
	fs := factSet(map[Metric]float64{
		ChangeInWorkingCapital: 99,
		ChangeInAR:             -10,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 99.0, fs.Get(ChangeInWorkingCapital))
}

func TestReconcile_BalanceSheetIdentityOverwritesMismatch(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Assets:             1000,
		Liabilities:        600,
		StockholdersEquity: 380,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 980.0, fs.Get(Assets))
}

func TestReconcile_BalanceSheetIdentityKeepsExactMatch(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Assets:             1000,
		Liabilities:        600,
		StockholdersEquity: 400,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 1000.0, fs.Get(Assets))
}

func TestReconcile_BalanceSheetIdentityFillsMissingAssets(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Liabilities:        600,
		StockholdersEquity: 400,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 1000.0, fs.Get(Assets))
}

func TestReconcile_FinancingCashFlowRebuilt(t *testing.T) {
	fs := factSet(map[Metric]float64{
		FinancingCashFlow:         -1, // reported aggregate is discarded
		DebtIssuance:              500,
		DebtRepayment:             200,
		DividendsPaid:             100,
		StockRepurchase:           50,
		ProceedsFromStockIssuance: 25,
	})

	fs = Reconcile(fs)
	assert.Equal(t, 175.0, fs.Get(FinancingCashFlow))
}

func TestReconcile_InvestingCashFlowRebuiltSignSafe(t *testing.T) {
	// Capex filed positive, purchases filed negative: both must subtract.
	fs := factSet(map[Metric]float64{
		CapitalExpenditures:   300,
		PurchaseOfInvestments: -150,
		SaleOfInvestments:     100,
	})

	fs = Reconcile(fs)
	assert.Equal(t, -350.0, fs.Get(InvestingCashFlow))
}

func TestReconcile_InputUnchanged(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Liabilities:        600,
		StockholdersEquity: 400,
	})

	out := Reconcile(fs)

	assert.Equal(t, 1000.0, out.Get(Assets))
	assert.False(t, fs.Has(Assets))
	assert.False(t, fs.Has(Goodwill))
}
