package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name string
		sic  string
		desc string
		want Industry
	}{
		{"empty sic", "", "anything", IndustryGeneral},
		{"national bank", "6021", "National Commercial Banks", IndustryBank},
		{"bank by description", "9999", "Savings Bank Holding", IndustryBank},
		{"reit sic", "6798", "Real Estate Investment Trusts", IndustryREIT},
		{"reit by description", "6500", "Diversified REIT", IndustryREIT},
		{"insurance carrier", "6311", "Life Insurance", IndustryInsurance},
		{"insurance agent", "6411", "Insurance Agents", IndustryInsurance},
		{"electric utility", "4911", "Electric Services", IndustryUtility},
		{"oil and gas", "1311", "Crude Petroleum and Natural Gas", IndustryEnergy},
		{"refining", "2911", "Petroleum Refining", IndustryEnergy},
		{"software services", "7372", "Prepackaged Software", IndustryTechnology},
		{"electronics", "3674", "Semiconductors", IndustryTechnology},
		{"pharma", "2834", "Pharmaceutical Preparations", IndustryHealthcare},
		{"hospitals", "8062", "General Medical Hospitals", IndustryHealthcare},
		{"grocery", "5411", "Grocery Stores", IndustryRetail},
		{"apparel retail", "5651", "Family Clothing Stores", IndustryRetail},
		{"food manufacturing", "2000", "Food and Kindred Products", IndustryManufacturing},
		{"autos", "3711", "Motor Vehicles", IndustryManufacturing},
		{"unclassified", "9995", "Non-Classifiable", IndustryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIndustry(tt.sic, tt.desc))
		})
	}
}

func TestDetectIndustry_BankBeatsREITDescription(t *testing.T) {
	// SIC 60xx wins even when the description mentions real estate.
	assert.Equal(t, IndustryBank, DetectIndustry("6022", "Real Estate Investment Bank"))
}
