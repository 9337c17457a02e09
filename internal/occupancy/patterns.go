package occupancy

import "regexp"

// Narrative extraction bounds. Rates outside this band are almost always
// something other than portfolio occupancy (interest rates, ownership
// percentages, coverage ratios).
const (
	narrativeMinRate = 50
	narrativeMaxRate = 100
)

// Table extraction is stricter: portfolio summary tables report healthy
// REIT portfolios, so anything under 90 is likely a different column.
const (
	tableMinRate = 90
	tableMaxRate = 100
)

// xbrlKeywords qualify an inline XBRL figure as occupancy-related based on
// its surrounding text.
var xbrlKeywords = []string{
	"occupancy", "leased", "percent leased", "portfolio", "properties leased",
}

// xbrlNumberPattern accepts plain decimal figures once separators are gone.
var xbrlNumberPattern = regexp.MustCompile(`^\d+\.?\d*$`)

// collapseWhitespace and the decimal repairs undo HTML rendering artifacts:
// filings frequently split "94.3%" across elements as "94 . 3 %".
var (
	collapseWhitespace  = regexp.MustCompile(`\s+`)
	splitDecimalPercent = regexp.MustCompile(`(\d+)\s*\.\s*(\d+)\s*(%)`)
	splitDecimal        = regexp.MustCompile(`(\d+)\s*\.\s*(\d+)`)
)

// tablePattern matches "percent leased" columns in portfolio summary tables.
var tablePattern = regexp.MustCompile(`(?i)(?:percent|percentage)\s+leased.*?(\d+\.?\d*)\s*(%|percent)`)

// narrativePatterns capture occupancy figures from prose, most specific
// first. Each pattern's first capture group is the rate.
var narrativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)decreased\s+(?:approximately\s+)?\d+\.?\d*%\s+to\s+(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)increased\s+(?:approximately\s+)?\d+\.?\d*%\s+to\s+(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)percent\s+leased\s*(?:was|is|remained|stood)?\s*[:\-]?\s*(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)percentage\s+leased\s*(?:was|is|remained|stood)?\s*[:\-]?\s*(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)properties.*?leased.*?(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)leased\s*(?:was|is|stood)?\s*[:\-]?\s*(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)occupancy\s*(?:was|is|stood|remained)?\s*[:\-]?\s*(\d+\.?\d*)%`),
	regexp.MustCompile(`(?i)portfolio\s+(?:was|is)\s+(\d+\.?\d*)%\s+(?:leased|occupied)`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)%\s+(?:leased|occupied)`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)%\s+of\s+our\s+(?:properties|portfolio)`),
	regexp.MustCompile(`(?i)same\s*store[^.?!]{0,1000}(\d+\.?\d*)%`),
}

// disqualifiers mark sentences that quote a percentage in a definitional or
// financial context rather than reporting actual occupancy.
var disqualifiers = []string{
	"definition", "means", "defined as", "earlier of", "achieving",
	"stabilization", "threshold", "minimum", "target", "expense", "rent", "cash basis",
}

// sentenceSplit separates narrative context into sentences.
var sentenceSplit = regexp.MustCompile(`[.?!]`)
