package metrics

import "math"

// zeroFillMetrics are commonly-absent line items treated as zero when the
// filer does not report them. Filling them keeps downstream arithmetic free
// of missing-value special cases.
var zeroFillMetrics = []Metric{
	DeferredTaxAssetsNoncurrent, EquityMethodInvestments, Goodwill, IntangibleAssets,
	PrepaidExpenses, RestrictedCash, NoncontrollingInterest, PreferredStock,
	AccruedCompensation, AccruedLiabilities, DeferredTaxLiabilities, PensionLiabilities,
	InterestExpense, InterestIncome, AcquisitionsCash, ProceedsFromAssetSales,
	CommonStock, AdditionalPaidInCapital, TreasuryStock,
	Amortization, ChangeInAccruedLiabilities, DeferredIncomeTaxes, ChangeInWorkingCapital,
	ProceedsFromStockIssuance, NetIncomeAvailableToCommon, GainLossOnInvestments,
	ImpairmentCharges, RestructuringCharges,
}

// financingFillMetrics are the financing cash flow components, defaulted to
// zero so the financing reconstruction never works from missing values.
var financingFillMetrics = []Metric{
	DebtIssuance, DebtRepayment, DividendsPaid, StockRepurchase, ProceedsFromStockIssuance,
}

// Reconcile returns a repaired copy of fs; the input is never modified.
// Repairs run in a fixed order:
//
//  1. zero-fill commonly-absent line items
//  2. rebuild change in working capital from its components
//  3. enforce Assets = Liabilities + StockholdersEquity
//  4. rebuild financing cash flow from its components
//  5. rebuild investing cash flow from its components
//
// Steps 4 and 5 overwrite any reported aggregate: the components are the
// source of truth.
func Reconcile(fs FactSet) FactSet {
	out := fs.Clone()

	for _, m := range zeroFillMetrics {
		if !out.Has(m) {
			out.Set(m, 0)
		}
	}
	for _, m := range financingFillMetrics {
		if !out.Has(m) {
			out.Set(m, 0)
		}
	}

	reconcileWorkingCapital(out)
	reconcileBalanceSheet(out)
	reconcileFinancingCashFlow(out)
	reconcileInvestingCashFlow(out)
	return out
}

// reconcileWorkingCapital replaces a missing or suspiciously-zero aggregate
// with the sum of the reported component deltas.
func reconcileWorkingCapital(fs FactSet) {
	componentsPresent := fs.Get(ChangeInAR) != 0 ||
		fs.Get(ChangeInAP) != 0 ||
		fs.Get(ChangeInInventory) != 0 ||
		fs.Get(ChangeInAccruedLiabilities) != 0

	if !fs.Has(ChangeInWorkingCapital) || (fs.Get(ChangeInWorkingCapital) == 0 && componentsPresent) {
		fs.Set(ChangeInWorkingCapital,
			fs.Get(ChangeInAR)+fs.Get(ChangeInAP)+fs.Get(ChangeInInventory)+fs.Get(ChangeInAccruedLiabilities))
	}
}

// reconcileBalanceSheet enforces the accounting identity with zero
// tolerance: any mismatch between reported Assets and Liabilities + Equity
// is resolved in favor of the right-hand side.
func reconcileBalanceSheet(fs FactSet) {
	sum := fs.Get(Liabilities) + fs.Get(StockholdersEquity)
	if !fs.Has(Assets) || fs.Get(Assets) != sum {
		fs.Set(Assets, sum)
	}
}

func reconcileFinancingCashFlow(fs FactSet) {
	fs.Set(FinancingCashFlow,
		fs.Get(DebtIssuance)-
			fs.Get(DebtRepayment)-
			fs.Get(DividendsPaid)-
			fs.Get(StockRepurchase)+
			fs.Get(ProceedsFromStockIssuance))
}

// reconcileInvestingCashFlow rebuilds the aggregate assuming outflows may be
// filed with either sign: capex and investment purchases always subtract.
func reconcileInvestingCashFlow(fs FactSet) {
	fs.Set(InvestingCashFlow,
		-math.Abs(fs.Get(CapitalExpenditures))-
			math.Abs(fs.Get(PurchaseOfInvestments))+
			fs.Get(SaleOfInvestments))
}
