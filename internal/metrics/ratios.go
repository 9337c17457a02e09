package metrics

import "math"

// Ratio identifies a derived financial figure.
type Ratio string

const (
	RatioTotalDebt    Ratio = "Total_Debt"
	RatioEBITDA       Ratio = "EBITDA"
	RatioEBIT         Ratio = "EBIT"
	RatioGrossMargin  Ratio = "Gross_Margin"
	RatioOperMargin   Ratio = "Operating_Margin"
	RatioNetMargin    Ratio = "Net_Margin"
	RatioEBITDAMargin Ratio = "EBITDA_Margin"
	RatioPretaxMargin Ratio = "Pretax_Margin"

	RatioEPSCalculated    Ratio = "EPS_Calculated"
	RatioBookValuePerShr  Ratio = "Book_Value_Per_Share"
	RatioRevenuePerShare  Ratio = "Revenue_Per_Share"
	RatioCashFlowPerShare Ratio = "Cash_Flow_Per_Share"

	RatioROE Ratio = "ROE"
	RatioROA Ratio = "ROA"

	RatioDebtToEquity     Ratio = "Debt_to_Equity"
	RatioDebtToEBITDA     Ratio = "Debt_to_EBITDA"
	RatioDebtToAssets     Ratio = "Debt_to_Assets"
	RatioInterestCoverage Ratio = "Interest_Coverage"

	RatioCurrentRatio   Ratio = "Current_Ratio"
	RatioQuickRatio     Ratio = "Quick_Ratio"
	RatioCashRatio      Ratio = "Cash_Ratio"
	RatioWorkingCapital Ratio = "Working_Capital"

	RatioAssetTurnover       Ratio = "Asset_Turnover"
	RatioReceivablesTurnover Ratio = "Receivables_Turnover"
	RatioDSO                 Ratio = "Days_Sales_Outstanding"
	RatioInventoryTurnover   Ratio = "Inventory_Turnover"
	RatioDIO                 Ratio = "Days_Inventory_Outstanding"
	RatioPayablesTurnover    Ratio = "Payables_Turnover"
	RatioDPO                 Ratio = "Days_Payable_Outstanding"
	RatioCCC                 Ratio = "Cash_Conversion_Cycle"

	RatioFreeCashFlow   Ratio = "Free_Cash_Flow"
	RatioFCFMargin      Ratio = "FCF_Margin"
	RatioFCFToNetIncome Ratio = "FCF_to_Net_Income"
	RatioOCFMargin      Ratio = "Operating_Cash_Flow_Margin"

	RatioEffectiveTaxRate Ratio = "Effective_Tax_Rate"
	RatioDividendPayout   Ratio = "Dividend_Payout_Ratio"
	RatioDividendPerShare Ratio = "Dividend_Per_Share"

	RatioNetInterestMargin Ratio = "Net_Interest_Margin"
	RatioLoanToDeposit     Ratio = "Loan_to_Deposit"
	RatioEquityToAssets    Ratio = "Equity_to_Assets"

	RatioFFOPerShare      Ratio = "FFO_Per_Share"
	RatioAFFOPerShare     Ratio = "AFFO_Per_Share"
	RatioDebtToRealEstate Ratio = "Debt_to_Real_Estate"

	RatioLossRatio Ratio = "Loss_Ratio"
)

// interestCoverageNote explains an absent interest coverage figure.
const interestCoverageNote = "Interest expense is zero or missing; coverage undefined"

// RatioSet holds computed ratios. A ratio absent from Values was either not
// computable or failed its plausibility guard; Notes carries explanations
// for deliberately-omitted entries.
type RatioSet struct {
	Values map[Ratio]float64
	Notes  map[Ratio]string
}

// Get returns the ratio's value and whether it was computed.
func (rs RatioSet) Get(r Ratio) (float64, bool) {
	v, ok := rs.Values[r]
	return v, ok
}

// Ptr returns a pointer to the ratio's value, nil when absent. Convenient
// for optional JSON fields.
func (rs RatioSet) Ptr(r Ratio) *float64 {
	if v, ok := rs.Values[r]; ok {
		return &v
	}
	return nil
}

// CalculateRatios derives the full ratio set from reconciled facts.
// Percentages are rounded to 2 decimals; the conversion-cycle day counts
// keep higher precision (DSO 5, DIO 3, DPO 4) and the cash conversion cycle
// is composed from the already-rounded components. Margins and returns are
// dropped rather than reported when they fail plausibility bounds.
func CalculateRatios(fs FactSet, industry Industry) RatioSet {
	rs := RatioSet{
		Values: make(map[Ratio]float64),
		Notes:  make(map[Ratio]string),
	}

	totalDebt := fs.TotalDebt()
	if totalDebt > 0 {
		rs.Values[RatioTotalDebt] = totalDebt
	}

	var ebitda float64
	ebitdaOK := false
	switch {
	case fs.Nonzero(OperatingIncome) && fs.Nonzero(DepreciationAmortization):
		ebitda = fs.Get(OperatingIncome) + fs.Get(DepreciationAmortization)
		ebitdaOK = true
	case fs.Nonzero(OperatingIncome):
		ebitda = fs.Get(OperatingIncome) + fs.Get(Amortization)
		ebitdaOK = true
	}
	if ebitdaOK && ebitda != 0 {
		rs.Values[RatioEBITDA] = ebitda
	}
	if fs.Nonzero(OperatingIncome) {
		rs.Values[RatioEBIT] = fs.Get(OperatingIncome)
	}

	revenue := fs.Get(Revenue)
	if revenue > 0 {
		if gp := fs.Get(GrossProfit); fs.Has(GrossProfit) && gp <= revenue {
			rs.Values[RatioGrossMargin] = round2(gp / revenue * 100)
		}
		if oi := fs.Get(OperatingIncome); fs.Has(OperatingIncome) && oi <= revenue {
			rs.Values[RatioOperMargin] = round2(oi / revenue * 100)
		}
		if ni := fs.Get(NetIncome); fs.Has(NetIncome) && math.Abs(ni) <= revenue*2 {
			rs.Values[RatioNetMargin] = round2(ni / revenue * 100)
		}
		if ebitdaOK && ebitda <= revenue*1.5 {
			rs.Values[RatioEBITDAMargin] = round2(ebitda / revenue * 100)
		}
		if pti := fs.Get(PreTaxIncome); fs.Has(PreTaxIncome) && math.Abs(pti) <= revenue*2 {
			rs.Values[RatioPretaxMargin] = round2(pti / revenue * 100)
		}
	}

	shares := fs.Shares()
	if shares > 0 {
		if fs.Has(NetIncome) {
			rs.Values[RatioEPSCalculated] = roundTo(fs.Get(NetIncome)/shares, 5)
		}
		if fs.Has(StockholdersEquity) {
			rs.Values[RatioBookValuePerShr] = fs.Get(StockholdersEquity) / shares
		}
		if fs.Has(Revenue) {
			rs.Values[RatioRevenuePerShare] = revenue / shares
		}
		if fs.Has(OperatingCashFlow) {
			rs.Values[RatioCashFlowPerShare] = fs.Get(OperatingCashFlow) / shares
		}
	}

	if fs.Has(NetIncome) {
		ni := fs.Get(NetIncome)
		if eq := fs.Get(StockholdersEquity); eq > 0 {
			roe := ni / eq * 100
			if roe > -200 && roe < 200 {
				rs.Values[RatioROE] = round2(roe)
			}
		}
		if assets := fs.Get(Assets); assets > 0 {
			roa := ni / assets * 100
			if roa > -100 && roa < 100 {
				rs.Values[RatioROA] = round2(roa)
			}
		}
	}

	if totalDebt > 0 {
		if eq := fs.Get(StockholdersEquity); eq > 0 {
			rs.Values[RatioDebtToEquity] = totalDebt / eq
		}
		if ebitdaOK && ebitda > 0 {
			rs.Values[RatioDebtToEBITDA] = totalDebt / ebitda
		}
		if assets := fs.Get(Assets); assets > 0 {
			rs.Values[RatioDebtToAssets] = totalDebt / assets
		}
	}

	if fs.Has(OperatingIncome) {
		if ie := fs.Get(InterestExpense); ie > 0 {
			rs.Values[RatioInterestCoverage] = fs.Get(OperatingIncome) / ie
		} else {
			rs.Notes[RatioInterestCoverage] = interestCoverageNote
		}
	}

	if cl := fs.Get(CurrentLiabilities); fs.Nonzero(CurrentAssets) && cl > 0 {
		rs.Values[RatioCurrentRatio] = fs.Get(CurrentAssets) / cl
		quick := fs.Get(Cash) + fs.Get(ShortTermInvestments) + fs.Get(AccountsReceivable)
		rs.Values[RatioQuickRatio] = quick / cl
	}
	if cl := fs.Get(CurrentLiabilities); fs.Nonzero(Cash) && cl > 0 {
		rs.Values[RatioCashRatio] = fs.Get(Cash) / cl
	}
	if fs.Has(CurrentAssets) && fs.Has(CurrentLiabilities) {
		rs.Values[RatioWorkingCapital] = fs.Get(CurrentAssets) - fs.Get(CurrentLiabilities)
	}

	if revenue > 0 {
		if assets := fs.Get(Assets); assets > 0 {
			rs.Values[RatioAssetTurnover] = revenue / assets
		}
		if ar := fs.Get(AccountsReceivable); ar > 0 {
			turnover := revenue / ar
			rs.Values[RatioReceivablesTurnover] = turnover
			rs.Values[RatioDSO] = roundTo(365/turnover, 5)
		}

		if cogs := fs.Get(CostOfRevenue); cogs > 0 {
			if inv := fs.Get(Inventory); inv > 0 {
				turnover := cogs / inv
				rs.Values[RatioInventoryTurnover] = turnover
				rs.Values[RatioDIO] = roundTo(365/turnover, 3)
			}
			if ap := fs.Get(AccountsPayable); ap > 0 {
				turnover := cogs / ap
				rs.Values[RatioPayablesTurnover] = turnover
				rs.Values[RatioDPO] = roundTo(365/turnover, 4)
			}
		}
	}

	// Compose from the rounded day counts so the cycle always reconciles
	// with the published components.
	if dso, okS := rs.Get(RatioDSO); okS {
		if dio, okI := rs.Get(RatioDIO); okI {
			if dpo, okP := rs.Get(RatioDPO); okP {
				rs.Values[RatioCCC] = roundTo(dio+dso-dpo, 5)
			}
		}
	}

	if fs.Has(OperatingCashFlow) && fs.Has(CapitalExpenditures) {
		fcf := fs.Get(OperatingCashFlow) - math.Abs(fs.Get(CapitalExpenditures))
		rs.Values[RatioFreeCashFlow] = fcf
		if revenue > 0 {
			rs.Values[RatioFCFMargin] = round2(fcf / revenue * 100)
		}
		if fs.Nonzero(NetIncome) {
			rs.Values[RatioFCFToNetIncome] = fcf / fs.Get(NetIncome)
		}
	}
	if fs.Has(OperatingCashFlow) && revenue > 0 {
		rs.Values[RatioOCFMargin] = round2(fs.Get(OperatingCashFlow) / revenue * 100)
	}

	if fs.Has(TaxExpense) && fs.Get(PreTaxIncome) > 0 {
		effTax := fs.Get(TaxExpense) / fs.Get(PreTaxIncome) * 100
		if effTax >= 0 && effTax <= 100 {
			rs.Values[RatioEffectiveTaxRate] = round2(effTax)
		}
	}

	if fs.Nonzero(DividendsPaid) {
		divPaid := math.Abs(fs.Get(DividendsPaid))
		if fs.Get(NetIncome) > 0 {
			payout := divPaid / fs.Get(NetIncome) * 100
			if payout >= 0 && payout <= 200 {
				rs.Values[RatioDividendPayout] = round2(payout)
			}
		}
		if shares > 0 {
			rs.Values[RatioDividendPerShare] = divPaid / shares
		}
	}

	switch industry {
	case IndustryBank:
		if assets := fs.Get(Assets); fs.Nonzero(NetInterestIncome) && assets > 0 {
			rs.Values[RatioNetInterestMargin] = fs.Get(NetInterestIncome) / assets * 100
		}
		if deposits := fs.Get(Deposits); fs.Nonzero(Loans) && deposits > 0 {
			rs.Values[RatioLoanToDeposit] = fs.Get(Loans) / deposits * 100
		}
		if assets := fs.Get(Assets); fs.Nonzero(StockholdersEquity) && assets > 0 {
			rs.Values[RatioEquityToAssets] = fs.Get(StockholdersEquity) / assets * 100
		}
	case IndustryREIT:
		if fs.Nonzero(FFO) && shares > 0 {
			rs.Values[RatioFFOPerShare] = fs.Get(FFO) / shares
		}
		if fs.Nonzero(AFFO) && shares > 0 {
			rs.Values[RatioAFFOPerShare] = fs.Get(AFFO) / shares
		}
		if re := fs.Get(RealEstateInvestments); totalDebt > 0 && re > 0 {
			rs.Values[RatioDebtToRealEstate] = totalDebt / re
		}
	case IndustryInsurance:
		if premiums := fs.Get(PremiumsEarned); fs.Nonzero(PolicyholderBenefits) && premiums > 0 {
			rs.Values[RatioLossRatio] = fs.Get(PolicyholderBenefits) / premiums * 100
		}
	}

	return rs
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}
