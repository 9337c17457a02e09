package metrics

import "strings"

// Industry is a coarse sector classification used to select
// industry-specific metrics and ratios.
type Industry string

const (
	IndustryGeneral       Industry = "General"
	IndustryBank          Industry = "Bank"
	IndustryREIT          Industry = "REIT"
	IndustryInsurance     Industry = "Insurance"
	IndustryUtility       Industry = "Utility"
	IndustryEnergy        Industry = "Energy"
	IndustryTechnology    Industry = "Technology"
	IndustryHealthcare    Industry = "Healthcare"
	IndustryRetail        Industry = "Retail"
	IndustryManufacturing Industry = "Manufacturing"
)

// DetectIndustry classifies a company from its SIC code and description.
// Rules are checked in priority order; the description only assists, the
// SIC prefix dominates. An empty SIC is always General.
func DetectIndustry(sic, sicDescription string) Industry {
	if sic == "" {
		return IndustryGeneral
	}
	desc := strings.ToLower(sicDescription)

	switch {
	case strings.HasPrefix(sic, "60") || strings.Contains(desc, "bank"):
		return IndustryBank
	case sic == "6798" || strings.Contains(desc, "reit") || strings.Contains(desc, "real estate investment"):
		return IndustryREIT
	case strings.HasPrefix(sic, "63") || strings.HasPrefix(sic, "64") || strings.Contains(desc, "insurance"):
		return IndustryInsurance
	case strings.HasPrefix(sic, "49") || strings.Contains(desc, "utility") || strings.Contains(desc, "electric"):
		return IndustryUtility
	case strings.HasPrefix(sic, "13") || strings.HasPrefix(sic, "29") ||
		strings.Contains(desc, "oil") || strings.Contains(desc, "gas"):
		return IndustryEnergy
	case strings.HasPrefix(sic, "35") || strings.HasPrefix(sic, "36") ||
		strings.HasPrefix(sic, "73") || strings.Contains(desc, "software"):
		return IndustryTechnology
	case strings.HasPrefix(sic, "28") || strings.HasPrefix(sic, "80") ||
		strings.Contains(desc, "pharmaceutical") || strings.Contains(desc, "health"):
		return IndustryHealthcare
	case strings.HasPrefix(sic, "52") || strings.HasPrefix(sic, "53") ||
		strings.HasPrefix(sic, "54") || strings.HasPrefix(sic, "56") ||
		strings.HasPrefix(sic, "59"):
		return IndustryRetail
	case strings.HasPrefix(sic, "20") || strings.HasPrefix(sic, "30") ||
		strings.HasPrefix(sic, "34") || strings.HasPrefix(sic, "37"):
		return IndustryManufacturing
	}
	return IndustryGeneral
}
