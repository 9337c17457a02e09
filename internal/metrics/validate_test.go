package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanData(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:           1000,
		GrossProfit:       400,
		OperatingIncome:   250,
		NetIncome:         150,
		Assets:            3000,
		SharesOutstanding: 100,
	})

	assert.Empty(t, Validate(fs))
}

func TestValidate_SubtotalsExceedingRevenue(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:           1000000,
		GrossProfit:       1200000,
		NetIncome:         1100000,
		Assets:            1,
		SharesOutstanding: 1,
	})

	issues := Validate(fs)
	require.Len(t, issues, 2)
	assert.Equal(t, "Gross Profit (1,200,000) > Revenue (1,000,000)", issues[0])
	assert.Equal(t, "Net Income (1,100,000) > Revenue (1,000,000)", issues[1])
}

func TestValidate_FivePercentHeadroom(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:           1000,
		NetIncome:         1040, // within the 5% allowance
		Assets:            1,
		SharesOutstanding: 1,
	})

	assert.Empty(t, Validate(fs))
}

func TestValidate_MissingCriticalItems(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue: 1000,
		Assets:  3000,
	})

	issues := Validate(fs)
	require.Len(t, issues, 1)
	assert.Equal(t, "Missing critical items: NetIncome, SharesOutstanding", issues[0])
}

func TestValidate_MixedPeriodData(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:           1000,
		NetIncome:         150,
		Assets:            3000,
		SharesOutstanding: 100,
	})
	fs.ReportEndDate = ""

	issues := Validate(fs)
	require.Len(t, issues, 1)
	assert.Equal(t,
		"No consolidated annual 10-K end date detected; possible mixed-period data",
		issues[0])
}

func TestFlagOneOffs_LargeInvestmentGain(t *testing.T) {
	fs := factSet(map[Metric]float64{
		NetIncome:             10000000,
		GainLossOnInvestments: 5000000,
	})

	flags := FlagOneOffs(fs)
	require.Len(t, flags, 1)
	assert.Equal(t,
		"Large Gain/Loss on Investments (5000000) relative to Net Income (10000000)",
		flags[0])
}

func TestFlagOneOffs_ImmaterialAmountsIgnored(t *testing.T) {
	// Relative threshold exceeded but below the 1e6 materiality floor.
	fs := factSet(map[Metric]float64{
		NetIncome:             1000,
		GainLossOnInvestments: 900,
	})

	assert.Empty(t, FlagOneOffs(fs))
}

func TestFlagOneOffs_Restructuring(t *testing.T) {
	fs := factSet(map[Metric]float64{
		OperatingIncome:      2000000,
		RestructuringCharges: 3000000,
	})

	flags := FlagOneOffs(fs)
	require.Len(t, flags, 1)
	assert.Contains(t, flags[0], "Large Restructuring Charges")
}

func TestFlagOneOffs_RestructuringRelativeToRevenue(t *testing.T) {
	// No operating income reported; falls back to the revenue comparison.
	fs := factSet(map[Metric]float64{
		Revenue:              20000000,
		RestructuringCharges: 2000000,
	})

	flags := FlagOneOffs(fs)
	require.Len(t, flags, 1)
	assert.Contains(t, flags[0], "Significant restructuring charges")
}

func TestFlagOneOffs_AssetSales(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:                20000000,
		ProceedsFromAssetSales: 1500000,
	})

	flags := FlagOneOffs(fs)
	require.Len(t, flags, 1)
	assert.Contains(t, flags[0], "Material proceeds from asset sales")
}

func TestFlagOneOffs_TaxSwing(t *testing.T) {
	fs := factSet(map[Metric]float64{
		NetIncome:  1000000,
		TaxExpense: 600000,
	})

	flags := FlagOneOffs(fs)
	require.Len(t, flags, 1)
	assert.Equal(t, "Unusually large tax expense/benefit relative to net income", flags[0])
}

func TestFlagOneOffs_CleanData(t *testing.T) {
	fs := factSet(map[Metric]float64{
		Revenue:   1000000000,
		NetIncome: 100000000,
	})

	assert.Empty(t, FlagOneOffs(fs))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,234,567", groupThousands(1234567))
	assert.Equal(t, "-1,234,567", groupThousands(-1234567))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000.4))
}
