package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// mixedPeriodIssue is reported when no single annual period could anchor the
// extraction, meaning values may come from different fiscal periods.
const mixedPeriodIssue = "No consolidated annual 10-K end date detected; possible mixed-period data"

// criticalMetrics must be present for a report to be considered complete.
var criticalMetrics = []Metric{Revenue, NetIncome, Assets, SharesOutstanding}

// Validate runs sanity checks over reconciled facts and returns a list of
// human-readable issues. An empty list means the data passed.
//
// Income subtotals may legitimately exceed revenue by small amounts from
// rounding or non-operating income, so the comparisons allow 5% headroom
// before flagging.
func Validate(fs FactSet) []string {
	var issues []string

	revenue := fs.Get(Revenue)
	if revenue != 0 {
		if gp := fs.Get(GrossProfit); gp != 0 && gp > revenue*1.05 {
			issues = append(issues, fmt.Sprintf("Gross Profit (%s) > Revenue (%s)",
				groupThousands(gp), groupThousands(revenue)))
		}
		if oi := fs.Get(OperatingIncome); oi != 0 && oi > revenue*1.05 {
			issues = append(issues, fmt.Sprintf("Operating Income (%s) > Revenue (%s)",
				groupThousands(oi), groupThousands(revenue)))
		}
		if ni := fs.Get(NetIncome); ni != 0 && ni > revenue*1.05 {
			issues = append(issues, fmt.Sprintf("Net Income (%s) > Revenue (%s)",
				groupThousands(ni), groupThousands(revenue)))
		}
	}

	var missing []string
	for _, m := range criticalMetrics {
		if !fs.Has(m) {
			missing = append(missing, string(m))
		}
	}
	if len(missing) > 0 {
		issues = append(issues, "Missing critical items: "+strings.Join(missing, ", "))
	}

	if fs.ReportEndDate == "" {
		issues = append(issues, mixedPeriodIssue)
	}

	return issues
}

// FlagOneOffs detects items that can distort a single year's metrics:
// outsized investment gains, restructuring charges, asset sale proceeds and
// tax swings. Flags are advisory, not validation failures. The 1e6 floors
// keep immaterial amounts from tripping the relative thresholds.
func FlagOneOffs(fs FactSet) []string {
	var flags []string

	ni := fs.Get(NetIncome)
	oi := fs.Get(OperatingIncome)
	rev := fs.Get(Revenue)

	if gainLoss := fs.Get(GainLossOnInvestments); ni != 0 &&
		math.Abs(gainLoss) > math.Abs(ni)*0.2 && math.Abs(gainLoss) > 1e6 {
		flags = append(flags, fmt.Sprintf(
			"Large Gain/Loss on Investments (%s) relative to Net Income (%s)",
			formatAmount(gainLoss), formatAmount(ni)))
	}

	restructuring := fs.Get(RestructuringCharges)
	switch {
	case oi != 0 && restructuring > math.Abs(oi) && restructuring > 1e6:
		flags = append(flags, fmt.Sprintf(
			"Large Restructuring Charges (%s) relative to Operating Income (%s)",
			formatAmount(restructuring), formatAmount(oi)))
	case rev != 0 && restructuring > rev*0.05 && restructuring > 1e6:
		flags = append(flags, fmt.Sprintf(
			"Significant restructuring charges (%s) relative to Revenue (%s)",
			formatAmount(restructuring), formatAmount(rev)))
	}

	if proceeds := fs.Get(ProceedsFromAssetSales); rev != 0 &&
		math.Abs(proceeds) > rev*0.05 && math.Abs(proceeds) > 1e6 {
		flags = append(flags, fmt.Sprintf(
			"Material proceeds from asset sales (%s) relative to Revenue (%s)",
			formatAmount(proceeds), formatAmount(rev)))
	}

	if tax := fs.Get(TaxExpense); tax != 0 && ni != 0 && math.Abs(tax) > math.Abs(ni)*0.5 {
		flags = append(flags, "Unusually large tax expense/benefit relative to net income")
	}

	return flags
}

// formatAmount renders a monetary value without exponent notation.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupThousands formats a value with comma thousands separators and no
// decimals, for validation messages.
func groupThousands(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
