package metrics

// tagEntry binds a canonical metric to its ordered us-gaap/dei tag fallback
// list. First tag present in the facts document wins. The slice order is the
// resolution order: in fallback mode (no consolidated end date) the first
// metric resolved fixes the report end date for everything after it, so the
// table must be walked deterministically.
type tagEntry struct {
	metric Metric
	tags   []string
}

// tagTable is configuration data, loaded once. Do not mutate.
var tagTable = []tagEntry{
	{Assets, []string{"Assets"}},
	{CurrentAssets, []string{"AssetsCurrent"}},
	{Cash, []string{"CashAndCashEquivalentsAtCarryingValue", "Cash", "CashCashEquivalentsAndShortTermInvestments"}},
	{ShortTermInvestments, []string{"MarketableSecuritiesCurrent", "ShortTermInvestments", "AvailableForSaleSecuritiesCurrent"}},
	{AccountsReceivable, []string{"AccountsReceivableNetCurrent", "AccountsReceivableNet"}},
	{Inventory, []string{"InventoryNet", "Inventory"}},
	{PrepaidExpenses, []string{"PrepaidExpenseAndOtherAssetsCurrent", "PrepaidExpenses"}},
	{OtherCurrentAssets, []string{"OtherAssetsCurrent"}},
	{PropertyPlantEquipment, []string{"PropertyPlantAndEquipmentNet"}},
	{PropertyPlantEquipmentGross, []string{"PropertyPlantAndEquipmentGross"}},
	{AccumulatedDepreciationPPE, []string{"AccumulatedDepreciationDepletionAndAmortizationPropertyPlantAndEquipment"}},
	{Goodwill, []string{"Goodwill"}},
	{IntangibleAssets, []string{"IntangibleAssetsNetExcludingGoodwill", "FiniteLivedIntangibleAssetsNet"}},
	{LongTermInvestments, []string{"LongTermInvestments", "MarketableSecuritiesNoncurrent", "AvailableForSaleSecuritiesNoncurrent"}},
	{DeferredTaxAssetsNoncurrent, []string{"DeferredTaxAssetsNetNoncurrent"}},
	{OtherNoncurrentAssets, []string{"OtherAssetsNoncurrent"}},
	{RestrictedCash, []string{"RestrictedCashAndCashEquivalentsNoncurrent", "RestrictedCash"}},
	{EquityMethodInvestments, []string{"EquityMethodInvestments"}},
	{Liabilities, []string{"Liabilities"}},
	{CurrentLiabilities, []string{"LiabilitiesCurrent"}},
	{AccountsPayable, []string{"AccountsPayableCurrent", "AccountsPayable"}},
	{AccruedLiabilities, []string{"AccruedLiabilitiesCurrent", "AccruedLiabilitiesAndOtherLiabilities"}},
	{AccruedCompensation, []string{"EmployeeRelatedLiabilitiesCurrent"}},
	{ShortTermDebt, []string{"ShortTermBorrowings", "CommercialPaper", "DebtCurrent", "ShortTermDebt"}},
	{CurrentPortionLongTermDebt, []string{"LongTermDebtCurrent"}},
	{LongTermDebt, []string{"LongTermDebtNoncurrent", "LongTermDebt", "LongTermDebtAndCapitalLeaseObligations"}},
	{DeferredRevenue, []string{"DeferredRevenue", "ContractWithCustomerLiability", "DeferredRevenueNoncurrent", "ContractWithCustomerLiabilityCurrent"}},
	{DeferredTaxLiabilities, []string{"DeferredTaxLiabilitiesNoncurrent", "DeferredTaxLiabilities"}},
	{PensionLiabilities, []string{"PensionAndOtherPostretirementDefinedBenefitPlansLiabilitiesNoncurrent"}},
	{OtherNoncurrentLiabilities, []string{"OtherLiabilitiesNoncurrent"}},
	{OperatingLeaseLiability, []string{"OperatingLeaseLiabilityNoncurrent", "OperatingLeaseLiability"}},
	{FinanceLeaseLiability, []string{"FinanceLeaseLiabilityNoncurrent", "FinanceLeaseLiability"}},
	{StockholdersEquity, []string{"StockholdersEquity", "StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest"}},
	{CommonStock, []string{"CommonStockValue"}},
	{PreferredStock, []string{"PreferredStockValue"}},
	{AdditionalPaidInCapital, []string{"AdditionalPaidInCapitalCommonStock", "AdditionalPaidInCapital"}},
	{RetainedEarnings, []string{"RetainedEarningsAccumulatedDeficit"}},
	{TreasuryStock, []string{"TreasuryStockValue"}},
	{AccumulatedOCI, []string{"AccumulatedOtherComprehensiveIncomeLossNetOfTax"}},
	{NoncontrollingInterest, []string{"MinorityInterest", "NoncontrollingInterest"}},
	{Revenue, []string{"RevenueFromContractWithCustomerExcludingAssessedTax", "Revenues", "SalesRevenueNet", "RevenueFromContractWithCustomerIncludingAssessedTax"}},
	{CostOfRevenue, []string{"CostOfGoodsAndServicesSold", "CostOfRevenue", "CostOfGoodsSold"}},
	{GrossProfit, []string{"GrossProfit"}},
	{OperatingExpenses, []string{"OperatingExpenses"}},
	{ResearchDevelopment, []string{"ResearchAndDevelopmentExpense"}},
	{SellingGeneralAdmin, []string{"SellingGeneralAndAdministrativeExpense"}},
	{MarketingExpense, []string{"SellingAndMarketingExpense"}},
	{GeneralAdminExpense, []string{"GeneralAndAdministrativeExpense"}},
	{RestructuringCharges, []string{"RestructuringCharges"}},
	{ImpairmentCharges, []string{"AssetImpairmentCharges"}},
	{OperatingIncome, []string{"OperatingIncomeLoss"}},
	{InterestExpense, []string{"InterestExpense", "InterestExpenseDebt"}},
	{InterestIncome, []string{"InterestIncomeOther", "InvestmentIncomeInterest", "InterestAndOtherIncome"}},
	{OtherIncome, []string{"OtherNonoperatingIncomeExpense", "NonoperatingIncomeExpense"}},
	{GainLossOnInvestments, []string{"GainLossOnInvestments"}},
	{PreTaxIncome, []string{"IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest", "IncomeLossFromContinuingOperationsBeforeIncomeTaxes"}},
	{TaxExpense, []string{"IncomeTaxExpenseBenefit"}},
	{EffectiveTaxRate, []string{"EffectiveIncomeTaxRateContinuingOperations"}},
	{NetIncome, []string{"NetIncomeLoss", "ProfitLoss"}},
	{NetIncomeAvailableToCommon, []string{"NetIncomeLossAvailableToCommonStockholdersBasic"}},
	{EPS, []string{"EarningsPerShareDiluted"}},
	{EPSBasic, []string{"EarningsPerShareBasic"}},
	{SharesOutstanding, []string{"CommonStockSharesOutstanding", "CommonStockSharesIssued"}},
	{SharesOutstandingDiluted, []string{"WeightedAverageNumberOfDilutedSharesOutstanding"}},
	{SharesOutstandingBasic, []string{"WeightedAverageNumberOfSharesOutstandingBasic"}},
	{ComprehensiveIncome, []string{"ComprehensiveIncomeNetOfTax"}},
	{OperatingCashFlow, []string{"NetCashProvidedByUsedInOperatingActivities"}},
	{CapitalExpenditures, []string{"PaymentsToAcquirePropertyPlantAndEquipment"}},
	{InvestingCashFlow, []string{"NetCashProvidedByUsedInInvestingActivities"}},
	{FinancingCashFlow, []string{"NetCashProvidedByUsedInFinancingActivities"}},
	{DividendsPaid, []string{"PaymentsOfDividends", "PaymentsOfDividendsCommonStock"}},
	{StockRepurchase, []string{"PaymentsForRepurchaseOfCommonStock"}},
	{DebtIssuance, []string{"ProceedsFromIssuanceOfLongTermDebt"}},
	{DebtRepayment, []string{"RepaymentsOfLongTermDebt"}},
	{DepreciationAmortization, []string{"DepreciationDepletionAndAmortization", "Depreciation"}},
	{Amortization, []string{"AmortizationOfIntangibleAssets"}},
	{StockBasedComp, []string{"ShareBasedCompensation", "AllocatedShareBasedCompensationExpense"}},
	{ChangeInWorkingCapital, []string{"IncreaseDecreaseInOperatingCapital"}},
	{ChangeInAR, []string{"IncreaseDecreaseInAccountsReceivable"}},
	{ChangeInInventory, []string{"IncreaseDecreaseInInventories"}},
	{ChangeInAP, []string{"IncreaseDecreaseInAccountsPayable"}},
	{ChangeInAccruedLiabilities, []string{"IncreaseDecreaseInAccruedLiabilities"}},
	{DeferredIncomeTaxes, []string{"DeferredIncomeTaxExpenseBenefit"}},
	{ProceedsFromStockIssuance, []string{"ProceedsFromIssuanceOfCommonStock"}},
	{AcquisitionsCash, []string{"PaymentsToAcquireBusinessesNetOfCashAcquired"}},
	{ProceedsFromAssetSales, []string{"ProceedsFromSaleOfPropertyPlantAndEquipment"}},
	{PurchaseOfInvestments, []string{"PaymentsToAcquireInvestments", "PaymentsToAcquireAvailableForSaleSecuritiesDebt"}},
	{SaleOfInvestments, []string{"ProceedsFromSaleOfAvailableForSaleSecuritiesDebt", "ProceedsFromSaleOfAvailableForSaleSecurities"}},
	{InterestIncomeBank, []string{"InterestAndDividendIncomeOperating", "InterestIncomeOperating"}},
	{InterestExpenseBank, []string{"InterestExpenseDeposits"}},
	{NetInterestIncome, []string{"InterestIncomeExpenseAfterProvisionForLoanLoss", "InterestIncomeExpenseNet"}},
	{ProvisionLoanLosses, []string{"ProvisionForLoanLossesExpensed", "ProvisionForLoanLeaseAndOtherLosses"}},
	{NonInterestIncome, []string{"NoninterestIncome"}},
	{Loans, []string{"LoansAndLeasesReceivableNetOfDeferredIncome", "LoansAndLeasesReceivableNetReportedAmount"}},
	{LoansGross, []string{"LoansAndLeasesReceivableGrossCarryingAmount"}},
	{Deposits, []string{"Deposits"}},
	{AllowanceLoanLosses, []string{"FinancingReceivableAllowanceForCreditLosses"}},
	{TradingAssets, []string{"TradingSecurities"}},
	{SecuritiesAvailableForSale, []string{"AvailableForSaleSecuritiesDebtSecurities"}},
	{FederalFundsSold, []string{"FederalFundsSoldAndSecuritiesPurchasedUnderAgreementsToResell"}},
	{NonPerformingLoans, []string{"FinancingReceivableNonaccrualNoAllowance"}},
	{NetChargeOffs, []string{"FinancingReceivableAllowanceForCreditLossWriteOffs"}},
	{RealEstateInvestments, []string{"RealEstateInvestmentPropertyNet"}},
	{RealEstateAtCost, []string{"RealEstateInvestmentPropertyAtCost"}},
	{AccumulatedDepreciationRE, []string{"RealEstateInvestmentPropertyAccumulatedDepreciation"}},
	{RentalIncome, []string{"OperatingLeaseLeaseIncome"}},
	{PropertyOperatingExpense, []string{"DirectCostsOfLeasedAndRentedPropertyOrEquipment"}},
	{FFO, []string{"FundsFromOperations"}},
	{AFFO, []string{"AdjustedFundsFromOperations"}},
	{NOI, []string{"NetOperatingIncome"}},
	{RealEstateAcquisitions, []string{"PaymentsToAcquireRealEstate"}},
	{RealEstateDispositions, []string{"ProceedsFromSaleOfRealEstateHeldforinvestment"}},
	{NumberOfProperties, []string{"NumberOfRealEstateProperties"}},
	{SquareFootage, []string{"AreaOfRealEstateProperty"}},
	{PremiumsEarned, []string{"PremiumsEarnedNet"}},
	{PremiumsWritten, []string{"PremiumsWrittenNet"}},
	{LossesClaims, []string{"LiabilityForClaimsAndClaimsAdjustmentExpense"}},
	{PolicyholderBenefits, []string{"PolicyholderBenefitsAndClaimsIncurredNet"}},
	{InvestmentIncomeInsurance, []string{"NetInvestmentIncome"}},
	{LossRatioReported, []string{"PropertyCasualtyInsuranceLossRatio"}},
	{ExpenseRatioReported, []string{"PropertyCasualtyInsuranceExpenseRatio"}},
	{CombinedRatioReported, []string{"PropertyCasualtyInsuranceCombinedRatio"}},
	{ReinsuranceRecoverables, []string{"ReinsuranceRecoverablesOnPaidAndUnpaidLosses"}},
	{RegulatedRevenue, []string{"RegulatedOperatingRevenue"}},
	{RegulatoryAssets, []string{"RegulatoryAssets"}},
	{RegulatoryLiabilities, []string{"RegulatoryLiabilities"}},
	{ProvedReserves, []string{"ProvedDevelopedAndUndevelopedReserves"}},
	{ExplorationExpense, []string{"ExplorationExpense"}},
}

// revenuePeriodTags are the revenue tags used to pin the consolidated annual
// reporting period. A deliberate subset of the Revenue fallback list: the
// including-assessed-tax variant is not trusted to anchor the period.
var revenuePeriodTags = []string{
	"RevenueFromContractWithCustomerExcludingAssessedTax",
	"Revenues",
	"SalesRevenueNet",
}

// instantMetrics classifies balance-sheet-style metrics measured at a point
// in time. Everything else is a duration (flow) metric and must come from a
// ~annual period.
var instantMetrics = map[Metric]bool{
	Assets: true, CurrentAssets: true, Cash: true, ShortTermInvestments: true,
	AccountsReceivable: true, Inventory: true, PrepaidExpenses: true,
	OtherCurrentAssets: true, PropertyPlantEquipment: true,
	PropertyPlantEquipmentGross: true, AccumulatedDepreciationPPE: true,
	Goodwill: true, IntangibleAssets: true, LongTermInvestments: true,
	DeferredTaxAssetsNoncurrent: true, OtherNoncurrentAssets: true,
	RestrictedCash: true, EquityMethodInvestments: true, Liabilities: true,
	CurrentLiabilities: true, AccountsPayable: true, AccruedLiabilities: true,
	AccruedCompensation: true, ShortTermDebt: true, CurrentPortionLongTermDebt: true,
	LongTermDebt: true, DeferredRevenue: true, DeferredTaxLiabilities: true,
	PensionLiabilities: true, OtherNoncurrentLiabilities: true,
	OperatingLeaseLiability: true, FinanceLeaseLiability: true,
	StockholdersEquity: true, CommonStock: true, PreferredStock: true,
	AdditionalPaidInCapital: true, RetainedEarnings: true, TreasuryStock: true,
	AccumulatedOCI: true, NoncontrollingInterest: true, SharesOutstanding: true,
	Loans: true, LoansGross: true, Deposits: true, AllowanceLoanLosses: true,
	TradingAssets: true, SecuritiesAvailableForSale: true, FederalFundsSold: true,
	NonPerformingLoans: true, RealEstateInvestments: true, RealEstateAtCost: true,
	AccumulatedDepreciationRE: true, NumberOfProperties: true, SquareFootage: true,
	LossesClaims: true, ReinsuranceRecoverables: true, RegulatoryAssets: true,
	RegulatoryLiabilities: true, ProvedReserves: true,
}

// IsInstant reports whether m is a point-in-time (balance sheet) metric.
func IsInstant(m Metric) bool {
	return instantMetrics[m]
}
