package metrics

import (
	"strconv"
	"strings"
)

// metricAliases maps alternate key spellings seen in upstream payloads to
// the canonical metric names the rest of the engine expects.
var metricAliases = map[string]Metric{
	"minorityInterest":                    NoncontrollingInterest,
	"minority_interest":                   NoncontrollingInterest,
	"restrictedCash":                      RestrictedCash,
	"restricted_cash":                     RestrictedCash,
	"prepaid_expenses":                    PrepaidExpenses,
	"intangible_assets":                   IntangibleAssets,
	"goodwill":                            Goodwill,
	"deferred_revenue_current":            DeferredRevenue,
	"deferred_revenue":                    DeferredRevenue,
	"deferred_tax_liabilities":            DeferredTaxLiabilities,
	"deferred_tax_liabilities_noncurrent": DeferredTaxLiabilities,
	"shares_outstanding":                  SharesOutstanding,
	"shares_outstanding_basic":            SharesOutstandingBasic,
	"shares_outstanding_diluted":          SharesOutstandingDiluted,
	"net_income":                          NetIncome,
	"net_income_available_to_common":      NetIncomeAvailableToCommon,
}

// Normalize returns a copy of raw with alias keys mapped onto canonical
// names and numeric-looking strings coerced to numbers. Alias keys are kept
// alongside the canonical copies. The pass is idempotent: normalizing an
// already-normalized map changes nothing.
func Normalize(raw RawFacts) RawFacts {
	if raw == nil {
		return nil
	}

	out := make(RawFacts, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for alt, canon := range metricAliases {
		if v, ok := out[alt]; ok {
			if _, exists := out[string(canon)]; !exists {
				out[string(canon)] = v
			}
		}
	}

	for k, v := range out {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if num, ok := coerceNumeric(s); ok {
			out[k] = num
		}
	}

	return out
}

// coerceNumeric parses accounting-style numeric strings: thousands
// separators are dropped, parenthesized values are negative, and plain
// digit runs become integers. Anything else (including signed strings like
// "-123") is left untouched for the caller to reject.
func coerceNumeric(s string) (interface{}, bool) {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if v == "" {
		return nil, false
	}

	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		inner := strings.Trim(v, "()")
		f, err := strconv.ParseFloat(inner, 64)
		if err != nil {
			return nil, false
		}
		return -f, true
	}

	if strings.Contains(v, ".") {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}

	if isDigits(v) {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			// too large for int64; keep full precision as float
			f, ferr := strconv.ParseFloat(v, 64)
			if ferr != nil {
				return nil, false
			}
			return f, true
		}
		return n, true
	}

	return nil, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
