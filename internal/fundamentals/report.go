package fundamentals

import (
	"github.com/agarcia/secfund/internal/metrics"
	"github.com/agarcia/secfund/internal/occupancy"
)

// dataSource labels the provenance of every report.
const dataSource = "SEC EDGAR (Annual 10-K Data)"

// Report is the full fundamentals response for one company. Numeric fields
// are pointers so a metric the filer never reported serializes as null
// rather than a fabricated zero; the conditional industry blocks are present
// only for the matching industry.
type Report struct {
	Ticker         string `json:"ticker"`
	CompanyName    string `json:"company_name"`
	Industry       string `json:"industry"`
	SICCode        string `json:"sic_code"`
	SICDescription string `json:"sic_description"`
	FiscalYearEnd  string `json:"fiscal_year_end"`
	LastUpdated    string `json:"last_updated"`
	DataSource     string `json:"data_source"`

	MarketData          MarketBlock         `json:"market_data"`
	BalanceSheet        BalanceSheet        `json:"balance_sheet"`
	IncomeStatement     IncomeStatement     `json:"income_statement"`
	CashFlow            CashFlowStatement   `json:"cash_flow"`
	ProfitabilityRatios ProfitabilityRatios `json:"profitability_ratios"`
	LeverageRatios      LeverageRatios      `json:"leverage_ratios"`
	LiquidityRatios     LiquidityRatios     `json:"liquidity_ratios"`
	EfficiencyRatios    EfficiencyRatios    `json:"efficiency_ratios"`
	PerShareMetrics     PerShareMetrics     `json:"per_share_metrics"`
	CashFlowMetrics     CashFlowMetrics     `json:"cash_flow_metrics"`
	DataQuality         DataQuality         `json:"data_quality"`

	BankingMetrics   *BankingMetrics   `json:"banking_metrics,omitempty"`
	REITMetrics      *REITMetrics      `json:"reit_metrics,omitempty"`
	InsuranceMetrics *InsuranceMetrics `json:"insurance_metrics,omitempty"`
	UtilityMetrics   *UtilityMetrics   `json:"utility_metrics,omitempty"`
	EnergyMetrics    *EnergyMetrics    `json:"energy_metrics,omitempty"`
}

// MarketBlock carries the market-derived figures. All fields degrade to
// null/empty when the quote fetch fails.
type MarketBlock struct {
	SharePrice      *float64 `json:"share_price"`
	MarketCap       *float64 `json:"market_cap"`
	Currency        string   `json:"currency,omitempty"`
	PERatio         *float64 `json:"pe_ratio"`
	EnterpriseValue *float64 `json:"enterprise_value"`
	EVToEBITDA      *float64 `json:"ev_to_ebitda"`
	Source          string   `json:"source,omitempty"`
	FetchedAt       string   `json:"fetched_at,omitempty"`
}

type BalanceSheet struct {
	Assets      BalanceSheetAssets      `json:"assets"`
	Liabilities BalanceSheetLiabilities `json:"liabilities"`
	Equity      BalanceSheetEquity      `json:"equity"`
}

type BalanceSheetAssets struct {
	TotalAssets               *float64 `json:"total_assets"`
	CurrentAssets             *float64 `json:"current_assets"`
	CashAndEquivalents        *float64 `json:"cash_and_equivalents"`
	RestrictedCash            *float64 `json:"restricted_cash"`
	ShortTermInvestments      *float64 `json:"short_term_investments"`
	AccountsReceivable        *float64 `json:"accounts_receivable"`
	Inventory                 *float64 `json:"inventory"`
	PrepaidExpenses           *float64 `json:"prepaid_expenses"`
	OtherCurrentAssets        *float64 `json:"other_current_assets"`
	PropertyPlantEquipmentNet *float64 `json:"property_plant_equipment_net"`
	PropertyPlantEquipGross   *float64 `json:"property_plant_equipment_gross"`
	AccumulatedDepreciation   *float64 `json:"accumulated_depreciation_ppe"`
	Goodwill                  *float64 `json:"goodwill"`
	IntangibleAssets          *float64 `json:"intangible_assets"`
	LongTermInvestments       *float64 `json:"long_term_investments"`
	EquityMethodInvestments   *float64 `json:"equity_method_investments"`
	DeferredTaxAssets         *float64 `json:"deferred_tax_assets"`
	OtherNoncurrentAssets     *float64 `json:"other_noncurrent_assets"`
}

type BalanceSheetLiabilities struct {
	TotalLiabilities           *float64 `json:"total_liabilities"`
	CurrentLiabilities         *float64 `json:"current_liabilities"`
	AccountsPayable            *float64 `json:"accounts_payable"`
	AccruedLiabilities         *float64 `json:"accrued_liabilities"`
	AccruedCompensation        *float64 `json:"accrued_compensation"`
	ShortTermDebt              *float64 `json:"short_term_debt"`
	CurrentPortionLongTermDebt *float64 `json:"current_portion_long_term_debt"`
	LongTermDebt               *float64 `json:"long_term_debt"`
	TotalDebt                  *float64 `json:"total_debt"`
	DeferredRevenue            *float64 `json:"deferred_revenue"`
	DeferredTaxLiabilities     *float64 `json:"deferred_tax_liabilities"`
	PensionLiabilities         *float64 `json:"pension_liabilities"`
	OperatingLeaseLiability    *float64 `json:"operating_lease_liability"`
	FinanceLeaseLiability      *float64 `json:"finance_lease_liability"`
	OtherNoncurrentLiabilities *float64 `json:"other_noncurrent_liabilities"`
}

type BalanceSheetEquity struct {
	StockholdersEquity      *float64 `json:"stockholders_equity"`
	CommonStock             *float64 `json:"common_stock"`
	PreferredStock          *float64 `json:"preferred_stock"`
	AdditionalPaidInCapital *float64 `json:"additional_paid_in_capital"`
	RetainedEarnings        *float64 `json:"retained_earnings"`
	TreasuryStock           *float64 `json:"treasury_stock"`
	AccumulatedOCI          *float64 `json:"accumulated_oci"`
	NoncontrollingInterest  *float64 `json:"noncontrolling_interest"`
}

type IncomeStatement struct {
	Revenue                  *float64 `json:"revenue"`
	CostOfRevenue            *float64 `json:"cost_of_revenue"`
	GrossProfit              *float64 `json:"gross_profit"`
	OperatingExpenses        *float64 `json:"operating_expenses"`
	ResearchDevelopment      *float64 `json:"research_development"`
	SellingGeneralAdmin      *float64 `json:"selling_general_admin"`
	MarketingExpense         *float64 `json:"marketing_expense"`
	GeneralAdminExpense      *float64 `json:"general_admin_expense"`
	RestructuringCharges     *float64 `json:"restructuring_charges"`
	ImpairmentCharges        *float64 `json:"impairment_charges"`
	OperatingIncome          *float64 `json:"operating_income"`
	EBIT                     *float64 `json:"ebit"`
	EBITDA                   *float64 `json:"ebitda"`
	InterestExpense          *float64 `json:"interest_expense"`
	InterestIncome           *float64 `json:"interest_income"`
	OtherIncomeExpense       *float64 `json:"other_income_expense"`
	GainLossOnInvestments    *float64 `json:"gain_loss_on_investments"`
	PretaxIncome             *float64 `json:"pretax_income"`
	TaxExpense               *float64 `json:"tax_expense"`
	EffectiveTaxRatePct      *float64 `json:"effective_tax_rate_pct"`
	NetIncome                *float64 `json:"net_income"`
	NetIncomeAvailableCommon *float64 `json:"net_income_available_to_common"`
	ComprehensiveIncome      *float64 `json:"comprehensive_income"`
	EPSDiluted               *float64 `json:"eps_diluted"`
	EPSBasic                 *float64 `json:"eps_basic"`
}

type CashFlowStatement struct {
	OperatingActivities OperatingActivities `json:"operating_activities"`
	InvestingActivities InvestingActivities `json:"investing_activities"`
	FinancingActivities FinancingActivities `json:"financing_activities"`
	FreeCashFlow        *float64            `json:"free_cash_flow"`
}

type OperatingActivities struct {
	OperatingCashFlow          *float64 `json:"operating_cash_flow"`
	DepreciationAmortization   *float64 `json:"depreciation_amortization"`
	Amortization               *float64 `json:"amortization"`
	StockBasedCompensation     *float64 `json:"stock_based_compensation"`
	DeferredIncomeTaxes        *float64 `json:"deferred_income_taxes"`
	ChangeInWorkingCapital     *float64 `json:"change_in_working_capital"`
	ChangeInAccountsReceivable *float64 `json:"change_in_accounts_receivable"`
	ChangeInInventory          *float64 `json:"change_in_inventory"`
	ChangeInAccountsPayable    *float64 `json:"change_in_accounts_payable"`
	ChangeInAccruedLiabilities *float64 `json:"change_in_accrued_liabilities"`
}

type InvestingActivities struct {
	CapitalExpenditures    *float64 `json:"capital_expenditures"`
	Acquisitions           *float64 `json:"acquisitions"`
	ProceedsFromAssetSales *float64 `json:"proceeds_from_asset_sales"`
	PurchaseOfInvestments  *float64 `json:"purchase_of_investments"`
	SaleOfInvestments      *float64 `json:"sale_of_investments"`
	InvestingCashFlow      *float64 `json:"investing_cash_flow"`
}

type FinancingActivities struct {
	DividendsPaid             *float64 `json:"dividends_paid"`
	StockRepurchase           *float64 `json:"stock_repurchase"`
	ProceedsFromStockIssuance *float64 `json:"proceeds_from_stock_issuance"`
	DebtIssuance              *float64 `json:"debt_issuance"`
	DebtRepayment             *float64 `json:"debt_repayment"`
	FinancingCashFlow         *float64 `json:"financing_cash_flow"`
}

type ProfitabilityRatios struct {
	GrossMarginPct     *float64 `json:"gross_margin_pct"`
	OperatingMarginPct *float64 `json:"operating_margin_pct"`
	EBITDAMarginPct    *float64 `json:"ebitda_margin_pct"`
	PretaxMarginPct    *float64 `json:"pretax_margin_pct"`
	NetMarginPct       *float64 `json:"net_margin_pct"`
	ROEPct             *float64 `json:"roe_pct"`
	ROAPct             *float64 `json:"roa_pct"`
	FCFMarginPct       *float64 `json:"fcf_margin_pct"`
	OCFMarginPct       *float64 `json:"operating_cash_flow_margin_pct"`
}

type LeverageRatios struct {
	DebtToEquity         *float64 `json:"debt_to_equity"`
	DebtToEBITDA         *float64 `json:"debt_to_ebitda"`
	DebtToAssets         *float64 `json:"debt_to_assets"`
	InterestCoverage     *float64 `json:"interest_coverage"`
	InterestCoverageNote string   `json:"interest_coverage_note,omitempty"`
}

type LiquidityRatios struct {
	CurrentRatio   *float64 `json:"current_ratio"`
	QuickRatio     *float64 `json:"quick_ratio"`
	CashRatio      *float64 `json:"cash_ratio"`
	WorkingCapital *float64 `json:"working_capital"`
}

type EfficiencyRatios struct {
	AssetTurnover            *float64 `json:"asset_turnover"`
	ReceivablesTurnover      *float64 `json:"receivables_turnover"`
	DaysSalesOutstanding     *float64 `json:"days_sales_outstanding"`
	InventoryTurnover        *float64 `json:"inventory_turnover"`
	DaysInventoryOutstanding *float64 `json:"days_inventory_outstanding"`
	PayablesTurnover         *float64 `json:"payables_turnover"`
	DaysPayableOutstanding   *float64 `json:"days_payable_outstanding"`
	CashConversionCycle      *float64 `json:"cash_conversion_cycle"`
}

type PerShareMetrics struct {
	SharesOutstanding *float64 `json:"shares_outstanding"`
	EPSDiluted        *float64 `json:"eps_diluted"`
	EPSBasic          *float64 `json:"eps_basic"`
	EPSCalculated     *float64 `json:"eps_calculated"`
	BookValuePerShare *float64 `json:"book_value_per_share"`
	RevenuePerShare   *float64 `json:"revenue_per_share"`
	CashFlowPerShare  *float64 `json:"cash_flow_per_share"`
	DividendPerShare  *float64 `json:"dividend_per_share"`
}

type CashFlowMetrics struct {
	FCFToNetIncome         *float64 `json:"fcf_to_net_income"`
	DividendPayoutRatioPct *float64 `json:"dividend_payout_ratio_pct"`
}

// DataQuality summarizes provenance and completeness of the underlying data.
type DataQuality struct {
	ValidationIssues          []string `json:"validation_issues"`
	OneOffFlags               []string `json:"one_off_flags"`
	DataComplete              bool     `json:"data_complete"`
	ProvenanceConfirmedAnnual bool     `json:"provenance_confirmed_annual_10k"`
	ReportEndDate             string   `json:"report_end_date,omitempty"`
	MarketDataProvided        bool     `json:"market_data_provided"`
}

type BankingMetrics struct {
	InterestIncome       *float64 `json:"interest_income"`
	InterestExpense      *float64 `json:"interest_expense"`
	NetInterestIncome    *float64 `json:"net_interest_income"`
	ProvisionLoanLosses  *float64 `json:"provision_loan_losses"`
	NonInterestIncome    *float64 `json:"non_interest_income"`
	LoansGross           *float64 `json:"loans_gross"`
	LoansNet             *float64 `json:"loans_net"`
	Deposits             *float64 `json:"deposits"`
	AllowanceLoanLosses  *float64 `json:"allowance_loan_losses"`
	NetInterestMarginPct *float64 `json:"net_interest_margin_pct"`
	LoanToDepositPct     *float64 `json:"loan_to_deposit_pct"`
	EquityToAssetsPct    *float64 `json:"equity_to_assets_pct"`
}

type REITMetrics struct {
	RealEstateInvestmentsNet *float64         `json:"real_estate_investments_net"`
	RealEstateAtCost         *float64         `json:"real_estate_at_cost"`
	AccumulatedDepreciation  *float64         `json:"accumulated_depreciation"`
	RentalIncome             *float64         `json:"rental_income"`
	PropertyOperatingExpense *float64         `json:"property_operating_expense"`
	NOI                      *float64         `json:"noi"`
	FundsFromOperations      *float64         `json:"funds_from_operations"`
	AdjustedFFO              *float64         `json:"adjusted_ffo"`
	NumberOfProperties       *float64         `json:"number_of_properties"`
	SquareFootage            *float64         `json:"square_footage"`
	FFOPerShare              *float64         `json:"ffo_per_share"`
	AFFOPerShare             *float64         `json:"affo_per_share"`
	DebtToRealEstate         *float64         `json:"debt_to_real_estate"`
	Occupancy                *OccupancyRecord `json:"occupancy"`
}

// OccupancyRecord embeds the miner's best extraction in a REIT report.
type OccupancyRecord struct {
	OccupancyRatePct float64 `json:"occupancy_rate_pct"`
	Source           string  `json:"source"`
	Context          string  `json:"context"`
	FilingURL        string  `json:"filing_url"`
}

type InsuranceMetrics struct {
	PremiumsEarned          *float64 `json:"premiums_earned"`
	PremiumsWritten         *float64 `json:"premiums_written"`
	LossesClaims            *float64 `json:"losses_claims"`
	PolicyholderBenefits    *float64 `json:"policyholder_benefits"`
	InvestmentIncome        *float64 `json:"investment_income"`
	ReinsuranceRecoverables *float64 `json:"reinsurance_recoverables"`
	LossRatioPct            *float64 `json:"loss_ratio_pct"`
}

type UtilityMetrics struct {
	RegulatedRevenue      *float64 `json:"regulated_revenue"`
	RegulatoryAssets      *float64 `json:"regulatory_assets"`
	RegulatoryLiabilities *float64 `json:"regulatory_liabilities"`
}

type EnergyMetrics struct {
	ProvedReserves     *float64 `json:"proved_reserves"`
	ExplorationExpense *float64 `json:"exploration_expense"`
}

// buildReport assembles the statement and ratio sections from the reconciled
// fact set and computed ratios. Market data, data quality and the industry
// block are filled in by the service.
func buildReport(fs metrics.FactSet, rs metrics.RatioSet) *Report {
	return &Report{
		DataSource: dataSource,
		BalanceSheet: BalanceSheet{
			Assets: BalanceSheetAssets{
				TotalAssets:               fs.Ptr(metrics.Assets),
				CurrentAssets:             fs.Ptr(metrics.CurrentAssets),
				CashAndEquivalents:        fs.Ptr(metrics.Cash),
				RestrictedCash:            fs.Ptr(metrics.RestrictedCash),
				ShortTermInvestments:      fs.Ptr(metrics.ShortTermInvestments),
				AccountsReceivable:        fs.Ptr(metrics.AccountsReceivable),
				Inventory:                 fs.Ptr(metrics.Inventory),
				PrepaidExpenses:           fs.Ptr(metrics.PrepaidExpenses),
				OtherCurrentAssets:        fs.Ptr(metrics.OtherCurrentAssets),
				PropertyPlantEquipmentNet: fs.Ptr(metrics.PropertyPlantEquipment),
				PropertyPlantEquipGross:   fs.Ptr(metrics.PropertyPlantEquipmentGross),
				AccumulatedDepreciation:   fs.Ptr(metrics.AccumulatedDepreciationPPE),
				Goodwill:                  fs.Ptr(metrics.Goodwill),
				IntangibleAssets:          fs.Ptr(metrics.IntangibleAssets),
				LongTermInvestments:       fs.Ptr(metrics.LongTermInvestments),
				EquityMethodInvestments:   fs.Ptr(metrics.EquityMethodInvestments),
				DeferredTaxAssets:         fs.Ptr(metrics.DeferredTaxAssetsNoncurrent),
				OtherNoncurrentAssets:     fs.Ptr(metrics.OtherNoncurrentAssets),
			},
			Liabilities: BalanceSheetLiabilities{
				TotalLiabilities:           fs.Ptr(metrics.Liabilities),
				CurrentLiabilities:         fs.Ptr(metrics.CurrentLiabilities),
				AccountsPayable:            fs.Ptr(metrics.AccountsPayable),
				AccruedLiabilities:         fs.Ptr(metrics.AccruedLiabilities),
				AccruedCompensation:        fs.Ptr(metrics.AccruedCompensation),
				ShortTermDebt:              fs.Ptr(metrics.ShortTermDebt),
				CurrentPortionLongTermDebt: fs.Ptr(metrics.CurrentPortionLongTermDebt),
				LongTermDebt:               fs.Ptr(metrics.LongTermDebt),
				TotalDebt:                  rs.Ptr(metrics.RatioTotalDebt),
				DeferredRevenue:            fs.Ptr(metrics.DeferredRevenue),
				DeferredTaxLiabilities:     fs.Ptr(metrics.DeferredTaxLiabilities),
				PensionLiabilities:         fs.Ptr(metrics.PensionLiabilities),
				OperatingLeaseLiability:    fs.Ptr(metrics.OperatingLeaseLiability),
				FinanceLeaseLiability:      fs.Ptr(metrics.FinanceLeaseLiability),
				OtherNoncurrentLiabilities: fs.Ptr(metrics.OtherNoncurrentLiabilities),
			},
			Equity: BalanceSheetEquity{
				StockholdersEquity:      fs.Ptr(metrics.StockholdersEquity),
				CommonStock:             fs.Ptr(metrics.CommonStock),
				PreferredStock:          fs.Ptr(metrics.PreferredStock),
				AdditionalPaidInCapital: fs.Ptr(metrics.AdditionalPaidInCapital),
				RetainedEarnings:        fs.Ptr(metrics.RetainedEarnings),
				TreasuryStock:           fs.Ptr(metrics.TreasuryStock),
				AccumulatedOCI:          fs.Ptr(metrics.AccumulatedOCI),
				NoncontrollingInterest:  fs.Ptr(metrics.NoncontrollingInterest),
			},
		},
		IncomeStatement: IncomeStatement{
			Revenue:                  fs.Ptr(metrics.Revenue),
			CostOfRevenue:            fs.Ptr(metrics.CostOfRevenue),
			GrossProfit:              fs.Ptr(metrics.GrossProfit),
			OperatingExpenses:        fs.Ptr(metrics.OperatingExpenses),
			ResearchDevelopment:      fs.Ptr(metrics.ResearchDevelopment),
			SellingGeneralAdmin:      fs.Ptr(metrics.SellingGeneralAdmin),
			MarketingExpense:         fs.Ptr(metrics.MarketingExpense),
			GeneralAdminExpense:      fs.Ptr(metrics.GeneralAdminExpense),
			RestructuringCharges:     fs.Ptr(metrics.RestructuringCharges),
			ImpairmentCharges:        fs.Ptr(metrics.ImpairmentCharges),
			OperatingIncome:          fs.Ptr(metrics.OperatingIncome),
			EBIT:                     rs.Ptr(metrics.RatioEBIT),
			EBITDA:                   rs.Ptr(metrics.RatioEBITDA),
			InterestExpense:          fs.Ptr(metrics.InterestExpense),
			InterestIncome:           fs.Ptr(metrics.InterestIncome),
			OtherIncomeExpense:       fs.Ptr(metrics.OtherIncome),
			GainLossOnInvestments:    fs.Ptr(metrics.GainLossOnInvestments),
			PretaxIncome:             fs.Ptr(metrics.PreTaxIncome),
			TaxExpense:               fs.Ptr(metrics.TaxExpense),
			EffectiveTaxRatePct:      effectiveTaxRate(fs, rs),
			NetIncome:                fs.Ptr(metrics.NetIncome),
			NetIncomeAvailableCommon: fs.Ptr(metrics.NetIncomeAvailableToCommon),
			ComprehensiveIncome:      fs.Ptr(metrics.ComprehensiveIncome),
			EPSDiluted:               fs.Ptr(metrics.EPS),
			EPSBasic:                 fs.Ptr(metrics.EPSBasic),
		},
		CashFlow: CashFlowStatement{
			OperatingActivities: OperatingActivities{
				OperatingCashFlow:          fs.Ptr(metrics.OperatingCashFlow),
				DepreciationAmortization:   fs.Ptr(metrics.DepreciationAmortization),
				Amortization:               fs.Ptr(metrics.Amortization),
				StockBasedCompensation:     fs.Ptr(metrics.StockBasedComp),
				DeferredIncomeTaxes:        fs.Ptr(metrics.DeferredIncomeTaxes),
				ChangeInWorkingCapital:     fs.Ptr(metrics.ChangeInWorkingCapital),
				ChangeInAccountsReceivable: fs.Ptr(metrics.ChangeInAR),
				ChangeInInventory:          fs.Ptr(metrics.ChangeInInventory),
				ChangeInAccountsPayable:    fs.Ptr(metrics.ChangeInAP),
				ChangeInAccruedLiabilities: fs.Ptr(metrics.ChangeInAccruedLiabilities),
			},
			InvestingActivities: InvestingActivities{
				CapitalExpenditures:    fs.Ptr(metrics.CapitalExpenditures),
				Acquisitions:           fs.Ptr(metrics.AcquisitionsCash),
				ProceedsFromAssetSales: fs.Ptr(metrics.ProceedsFromAssetSales),
				PurchaseOfInvestments:  fs.Ptr(metrics.PurchaseOfInvestments),
				SaleOfInvestments:      fs.Ptr(metrics.SaleOfInvestments),
				InvestingCashFlow:      fs.Ptr(metrics.InvestingCashFlow),
			},
			FinancingActivities: FinancingActivities{
				DividendsPaid:             fs.Ptr(metrics.DividendsPaid),
				StockRepurchase:           fs.Ptr(metrics.StockRepurchase),
				ProceedsFromStockIssuance: fs.Ptr(metrics.ProceedsFromStockIssuance),
				DebtIssuance:              fs.Ptr(metrics.DebtIssuance),
				DebtRepayment:             fs.Ptr(metrics.DebtRepayment),
				FinancingCashFlow:         fs.Ptr(metrics.FinancingCashFlow),
			},
			FreeCashFlow: rs.Ptr(metrics.RatioFreeCashFlow),
		},
		ProfitabilityRatios: ProfitabilityRatios{
			GrossMarginPct:     rs.Ptr(metrics.RatioGrossMargin),
			OperatingMarginPct: rs.Ptr(metrics.RatioOperMargin),
			EBITDAMarginPct:    rs.Ptr(metrics.RatioEBITDAMargin),
			PretaxMarginPct:    rs.Ptr(metrics.RatioPretaxMargin),
			NetMarginPct:       rs.Ptr(metrics.RatioNetMargin),
			ROEPct:             rs.Ptr(metrics.RatioROE),
			ROAPct:             rs.Ptr(metrics.RatioROA),
			FCFMarginPct:       rs.Ptr(metrics.RatioFCFMargin),
			OCFMarginPct:       rs.Ptr(metrics.RatioOCFMargin),
		},
		LeverageRatios: LeverageRatios{
			DebtToEquity:         rs.Ptr(metrics.RatioDebtToEquity),
			DebtToEBITDA:         rs.Ptr(metrics.RatioDebtToEBITDA),
			DebtToAssets:         rs.Ptr(metrics.RatioDebtToAssets),
			InterestCoverage:     rs.Ptr(metrics.RatioInterestCoverage),
			InterestCoverageNote: rs.Notes[metrics.RatioInterestCoverage],
		},
		LiquidityRatios: LiquidityRatios{
			CurrentRatio:   rs.Ptr(metrics.RatioCurrentRatio),
			QuickRatio:     rs.Ptr(metrics.RatioQuickRatio),
			CashRatio:      rs.Ptr(metrics.RatioCashRatio),
			WorkingCapital: rs.Ptr(metrics.RatioWorkingCapital),
		},
		EfficiencyRatios: EfficiencyRatios{
			AssetTurnover:            rs.Ptr(metrics.RatioAssetTurnover),
			ReceivablesTurnover:      rs.Ptr(metrics.RatioReceivablesTurnover),
			DaysSalesOutstanding:     rs.Ptr(metrics.RatioDSO),
			InventoryTurnover:        rs.Ptr(metrics.RatioInventoryTurnover),
			DaysInventoryOutstanding: rs.Ptr(metrics.RatioDIO),
			PayablesTurnover:         rs.Ptr(metrics.RatioPayablesTurnover),
			DaysPayableOutstanding:   rs.Ptr(metrics.RatioDPO),
			CashConversionCycle:      rs.Ptr(metrics.RatioCCC),
		},
		PerShareMetrics: PerShareMetrics{
			SharesOutstanding: sharesPtr(fs),
			EPSDiluted:        fs.Ptr(metrics.EPS),
			EPSBasic:          fs.Ptr(metrics.EPSBasic),
			EPSCalculated:     rs.Ptr(metrics.RatioEPSCalculated),
			BookValuePerShare: rs.Ptr(metrics.RatioBookValuePerShr),
			RevenuePerShare:   rs.Ptr(metrics.RatioRevenuePerShare),
			CashFlowPerShare:  rs.Ptr(metrics.RatioCashFlowPerShare),
			DividendPerShare:  rs.Ptr(metrics.RatioDividendPerShare),
		},
		CashFlowMetrics: CashFlowMetrics{
			FCFToNetIncome:         rs.Ptr(metrics.RatioFCFToNetIncome),
			DividendPayoutRatioPct: rs.Ptr(metrics.RatioDividendPayout),
		},
	}
}

// effectiveTaxRate prefers the filer's reported rate over the derived one.
func effectiveTaxRate(fs metrics.FactSet, rs metrics.RatioSet) *float64 {
	if fs.Nonzero(metrics.EffectiveTaxRate) {
		return fs.Ptr(metrics.EffectiveTaxRate)
	}
	return rs.Ptr(metrics.RatioEffectiveTaxRate)
}

func sharesPtr(fs metrics.FactSet) *float64 {
	if s := fs.Shares(); s != 0 {
		return &s
	}
	return nil
}

func industryBlock(r *Report, industry metrics.Industry, fs metrics.FactSet, rs metrics.RatioSet, occ *occupancy.Result) {
	switch industry {
	case metrics.IndustryBank:
		r.BankingMetrics = &BankingMetrics{
			InterestIncome:       fs.Ptr(metrics.InterestIncomeBank),
			InterestExpense:      fs.Ptr(metrics.InterestExpenseBank),
			NetInterestIncome:    fs.Ptr(metrics.NetInterestIncome),
			ProvisionLoanLosses:  fs.Ptr(metrics.ProvisionLoanLosses),
			NonInterestIncome:    fs.Ptr(metrics.NonInterestIncome),
			LoansGross:           fs.Ptr(metrics.LoansGross),
			LoansNet:             fs.Ptr(metrics.Loans),
			Deposits:             fs.Ptr(metrics.Deposits),
			AllowanceLoanLosses:  fs.Ptr(metrics.AllowanceLoanLosses),
			NetInterestMarginPct: rs.Ptr(metrics.RatioNetInterestMargin),
			LoanToDepositPct:     rs.Ptr(metrics.RatioLoanToDeposit),
			EquityToAssetsPct:    rs.Ptr(metrics.RatioEquityToAssets),
		}
	case metrics.IndustryREIT:
		rm := &REITMetrics{
			RealEstateInvestmentsNet: fs.Ptr(metrics.RealEstateInvestments),
			RealEstateAtCost:         fs.Ptr(metrics.RealEstateAtCost),
			AccumulatedDepreciation:  fs.Ptr(metrics.AccumulatedDepreciationRE),
			RentalIncome:             fs.Ptr(metrics.RentalIncome),
			PropertyOperatingExpense: fs.Ptr(metrics.PropertyOperatingExpense),
			NOI:                      fs.Ptr(metrics.NOI),
			FundsFromOperations:      fs.Ptr(metrics.FFO),
			AdjustedFFO:              fs.Ptr(metrics.AFFO),
			NumberOfProperties:       fs.Ptr(metrics.NumberOfProperties),
			SquareFootage:            fs.Ptr(metrics.SquareFootage),
			FFOPerShare:              rs.Ptr(metrics.RatioFFOPerShare),
			AFFOPerShare:             rs.Ptr(metrics.RatioAFFOPerShare),
			DebtToRealEstate:         rs.Ptr(metrics.RatioDebtToRealEstate),
		}
		if occ != nil {
			rm.Occupancy = &OccupancyRecord{
				OccupancyRatePct: occ.OccupancyRate,
				Source:           occ.Source,
				Context:          occ.Context,
				FilingURL:        occ.FilingURL,
			}
		}
		r.REITMetrics = rm
	case metrics.IndustryInsurance:
		r.InsuranceMetrics = &InsuranceMetrics{
			PremiumsEarned:          fs.Ptr(metrics.PremiumsEarned),
			PremiumsWritten:         fs.Ptr(metrics.PremiumsWritten),
			LossesClaims:            fs.Ptr(metrics.LossesClaims),
			PolicyholderBenefits:    fs.Ptr(metrics.PolicyholderBenefits),
			InvestmentIncome:        fs.Ptr(metrics.InvestmentIncomeInsurance),
			ReinsuranceRecoverables: fs.Ptr(metrics.ReinsuranceRecoverables),
			LossRatioPct:            rs.Ptr(metrics.RatioLossRatio),
		}
	case metrics.IndustryUtility:
		r.UtilityMetrics = &UtilityMetrics{
			RegulatedRevenue:      fs.Ptr(metrics.RegulatedRevenue),
			RegulatoryAssets:      fs.Ptr(metrics.RegulatoryAssets),
			RegulatoryLiabilities: fs.Ptr(metrics.RegulatoryLiabilities),
		}
	case metrics.IndustryEnergy:
		r.EnergyMetrics = &EnergyMetrics{
			ProvedReserves:     fs.Ptr(metrics.ProvedReserves),
			ExplorationExpense: fs.Ptr(metrics.ExplorationExpense),
		}
	}
}
