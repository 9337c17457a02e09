// Package metrics normalizes raw SEC company facts into a single consistent
// annual snapshot and derives financial ratios from it. Everything in this
// package is a pure computation: missing data degrades to absent values,
// never to errors.
package metrics

// Metric is a canonical financial line item. The set is closed: every value
// the engine produces is keyed by one of the constants below, eliminating
// stringly-typed metric names downstream.
type Metric string

// Balance sheet
const (
	Assets                      Metric = "Assets"
	CurrentAssets               Metric = "CurrentAssets"
	Cash                        Metric = "Cash"
	ShortTermInvestments        Metric = "ShortTermInvestments"
	AccountsReceivable          Metric = "AccountsReceivable"
	Inventory                   Metric = "Inventory"
	PrepaidExpenses             Metric = "PrepaidExpenses"
	OtherCurrentAssets          Metric = "OtherCurrentAssets"
	PropertyPlantEquipment      Metric = "PropertyPlantEquipment"
	PropertyPlantEquipmentGross Metric = "PropertyPlantEquipmentGross"
	AccumulatedDepreciationPPE  Metric = "AccumulatedDepreciationPPE"
	Goodwill                    Metric = "Goodwill"
	IntangibleAssets            Metric = "IntangibleAssets"
	LongTermInvestments         Metric = "LongTermInvestments"
	DeferredTaxAssetsNoncurrent Metric = "DeferredTaxAssetsNoncurrent"
	OtherNoncurrentAssets       Metric = "OtherNoncurrentAssets"
	RestrictedCash              Metric = "RestrictedCash"
	EquityMethodInvestments     Metric = "EquityMethodInvestments"
	Liabilities                 Metric = "Liabilities"
	CurrentLiabilities          Metric = "CurrentLiabilities"
	AccountsPayable             Metric = "AccountsPayable"
	AccruedLiabilities          Metric = "AccruedLiabilities"
	AccruedCompensation         Metric = "AccruedCompensation"
	ShortTermDebt               Metric = "ShortTermDebt"
	CurrentPortionLongTermDebt  Metric = "CurrentPortionLongTermDebt"
	LongTermDebt                Metric = "LongTermDebt"
	DeferredRevenue             Metric = "DeferredRevenue"
	DeferredTaxLiabilities      Metric = "DeferredTaxLiabilities"
	PensionLiabilities          Metric = "PensionLiabilities"
	OtherNoncurrentLiabilities  Metric = "OtherNoncurrentLiabilities"
	OperatingLeaseLiability     Metric = "OperatingLeaseLiability"
	FinanceLeaseLiability       Metric = "FinanceLeaseLiability"
	StockholdersEquity          Metric = "StockholdersEquity"
	CommonStock                 Metric = "CommonStock"
	PreferredStock              Metric = "PreferredStock"
	AdditionalPaidInCapital     Metric = "AdditionalPaidInCapital"
	RetainedEarnings            Metric = "RetainedEarnings"
	TreasuryStock               Metric = "TreasuryStock"
	AccumulatedOCI              Metric = "AccumulatedOCI"
	NoncontrollingInterest      Metric = "NoncontrollingInterest"
)

// Income statement
const (
	Revenue                    Metric = "Revenue"
	CostOfRevenue              Metric = "CostOfRevenue"
	GrossProfit                Metric = "GrossProfit"
	OperatingExpenses          Metric = "OperatingExpenses"
	ResearchDevelopment        Metric = "ResearchDevelopment"
	SellingGeneralAdmin        Metric = "SellingGeneralAdmin"
	MarketingExpense           Metric = "MarketingExpense"
	GeneralAdminExpense        Metric = "GeneralAdminExpense"
	RestructuringCharges       Metric = "RestructuringCharges"
	ImpairmentCharges          Metric = "ImpairmentCharges"
	OperatingIncome            Metric = "OperatingIncome"
	InterestExpense            Metric = "InterestExpense"
	InterestIncome             Metric = "InterestIncome"
	OtherIncome                Metric = "OtherIncome"
	GainLossOnInvestments      Metric = "GainLossOnInvestments"
	PreTaxIncome               Metric = "PreTaxIncome"
	TaxExpense                 Metric = "TaxExpense"
	EffectiveTaxRate           Metric = "EffectiveTaxRate"
	NetIncome                  Metric = "NetIncome"
	NetIncomeAvailableToCommon Metric = "NetIncomeAvailableToCommon"
	EPS                        Metric = "EPS"
	EPSBasic                   Metric = "EPSBasic"
	SharesOutstanding          Metric = "SharesOutstanding"
	SharesOutstandingDiluted   Metric = "SharesOutstandingDiluted"
	SharesOutstandingBasic     Metric = "SharesOutstandingBasic"
	ComprehensiveIncome        Metric = "ComprehensiveIncome"
)

// Cash flow
const (
	OperatingCashFlow          Metric = "OperatingCashFlow"
	CapitalExpenditures        Metric = "CapitalExpenditures"
	InvestingCashFlow          Metric = "InvestingCashFlow"
	FinancingCashFlow          Metric = "FinancingCashFlow"
	DividendsPaid              Metric = "DividendsPaid"
	StockRepurchase            Metric = "StockRepurchase"
	DebtIssuance               Metric = "DebtIssuance"
	DebtRepayment              Metric = "DebtRepayment"
	DepreciationAmortization   Metric = "DepreciationAmortization"
	Amortization               Metric = "Amortization"
	StockBasedComp             Metric = "StockBasedComp"
	ChangeInWorkingCapital     Metric = "ChangeInWorkingCapital"
	ChangeInAR                 Metric = "ChangeInAR"
	ChangeInInventory          Metric = "ChangeInInventory"
	ChangeInAP                 Metric = "ChangeInAP"
	ChangeInAccruedLiabilities Metric = "ChangeInAccruedLiabilities"
	DeferredIncomeTaxes        Metric = "DeferredIncomeTaxes"
	ProceedsFromStockIssuance  Metric = "ProceedsFromStockIssuance"
	AcquisitionsCash           Metric = "AcquisitionsCash"
	ProceedsFromAssetSales     Metric = "ProceedsFromAssetSales"
	PurchaseOfInvestments      Metric = "PurchaseOfInvestments"
	SaleOfInvestments          Metric = "SaleOfInvestments"
)

// Banking
const (
	InterestIncomeBank         Metric = "InterestIncomeBank"
	InterestExpenseBank        Metric = "InterestExpenseBank"
	NetInterestIncome          Metric = "NetInterestIncome"
	ProvisionLoanLosses        Metric = "ProvisionLoanLosses"
	NonInterestIncome          Metric = "NonInterestIncome"
	Loans                      Metric = "Loans"
	LoansGross                 Metric = "LoansGross"
	Deposits                   Metric = "Deposits"
	AllowanceLoanLosses        Metric = "AllowanceLoanLosses"
	TradingAssets              Metric = "TradingAssets"
	SecuritiesAvailableForSale Metric = "SecuritiesAvailableForSale"
	FederalFundsSold           Metric = "FederalFundsSold"
	NonPerformingLoans         Metric = "NonPerformingLoans"
	NetChargeOffs              Metric = "NetChargeOffs"
)

// Real estate
const (
	RealEstateInvestments     Metric = "RealEstateInvestments"
	RealEstateAtCost          Metric = "RealEstateAtCost"
	AccumulatedDepreciationRE Metric = "AccumulatedDepreciationRE"
	RentalIncome              Metric = "RentalIncome"
	PropertyOperatingExpense  Metric = "PropertyOperatingExpense"
	FFO                       Metric = "FFO"
	AFFO                      Metric = "AFFO"
	NOI                       Metric = "NOI"
	RealEstateAcquisitions    Metric = "RealEstateAcquisitions"
	RealEstateDispositions    Metric = "RealEstateDispositions"
	NumberOfProperties        Metric = "NumberOfProperties"
	SquareFootage             Metric = "SquareFootage"
)

// Insurance
const (
	PremiumsEarned            Metric = "PremiumsEarned"
	PremiumsWritten           Metric = "PremiumsWritten"
	LossesClaims              Metric = "LossesClaims"
	PolicyholderBenefits      Metric = "PolicyholderBenefits"
	InvestmentIncomeInsurance Metric = "InvestmentIncomeInsurance"
	LossRatioReported         Metric = "LossRatio"
	ExpenseRatioReported      Metric = "ExpenseRatio"
	CombinedRatioReported     Metric = "CombinedRatio"
	ReinsuranceRecoverables   Metric = "ReinsuranceRecoverables"
)

// Utility and energy
const (
	RegulatedRevenue      Metric = "RegulatedRevenue"
	RegulatoryAssets      Metric = "RegulatoryAssets"
	RegulatoryLiabilities Metric = "RegulatoryLiabilities"
	ProvedReserves        Metric = "ProvedReserves"
	ExplorationExpense    Metric = "ExplorationExpense"
)
