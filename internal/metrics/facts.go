package metrics

import (
	"time"
)

// unitPriority is the order units are consulted within a concept. SEC files
// monetary facts under USD, share counts under shares, ratios under pure and
// per-share figures under USD/shares.
var unitPriority = []string{"USD", "shares", "pure", "USD/shares"}

const (
	annualSpanMinDays = 350
	annualSpanMaxDays = 380
)

// FactsDocument is the shape of an EDGAR companyfacts response:
// namespace -> tag -> concept.
type FactsDocument struct {
	CIK        int64                         `json:"cik"`
	EntityName string                        `json:"entityName"`
	Facts      map[string]map[string]Concept `json:"facts"`
}

// Namespace returns the concepts filed under ns ("us-gaap", "dei"), or nil.
func (d *FactsDocument) Namespace(ns string) map[string]Concept {
	if d == nil {
		return nil
	}
	return d.Facts[ns]
}

// Concept is one XBRL tag's reported history, keyed by unit.
type Concept struct {
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Units       map[string][]ConceptFact `json:"units"`
}

// ConceptFact is a single reported value. Start is empty for instant
// (point-in-time) facts. Val is left untyped because EDGAR occasionally
// files strings where numbers are expected.
type ConceptFact struct {
	Start string      `json:"start,omitempty"`
	End   string      `json:"end"`
	Val   interface{} `json:"val"`
	Accn  string      `json:"accn,omitempty"`
	FY    int         `json:"fy,omitempty"`
	FP    string      `json:"fp,omitempty"`
	Form  string      `json:"form,omitempty"`
	Filed string      `json:"filed,omitempty"`
}

// isAnnualForm reports whether the fact came from an annual report.
func (f ConceptFact) isAnnualForm() bool {
	return f.Form == "10-K" || f.Form == "10-K/A"
}

// isAnnualSpan reports whether the fact covers roughly one fiscal year.
// Facts without both dates, or with unparseable dates, are not annual spans.
func (f ConceptFact) isAnnualSpan() bool {
	if f.Start == "" || f.End == "" {
		return false
	}
	start, err := time.Parse("2006-01-02", f.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", f.End)
	if err != nil {
		return false
	}
	days := int(end.Sub(start).Hours() / 24)
	return days >= annualSpanMinDays && days <= annualSpanMaxDays
}

// latestByEnd returns the fact with the lexicographically greatest end date.
// ISO dates sort correctly as strings. The first of equal end dates wins.
func latestByEnd(facts []ConceptFact) (ConceptFact, bool) {
	if len(facts) == 0 {
		return ConceptFact{}, false
	}
	best := facts[0]
	for _, f := range facts[1:] {
		if f.End > best.End {
			best = f
		}
	}
	return best, true
}

// latestAnnualFact picks the most recent annual value from a concept,
// preferring 10-K/10-K/A filings and, for flow metrics, ~annual spans.
// Both filters degrade gracefully when nothing survives them. Returns the
// value and its period end date.
func latestAnnualFact(c Concept, instant bool) (interface{}, string, bool) {
	for _, unit := range unitPriority {
		facts, ok := c.Units[unit]
		if !ok {
			continue
		}

		valid := make([]ConceptFact, 0, len(facts))
		for _, f := range facts {
			if f.isAnnualForm() {
				valid = append(valid, f)
			}
		}
		if len(valid) == 0 {
			valid = facts
		}

		if !instant {
			annual := make([]ConceptFact, 0, len(valid))
			for _, f := range valid {
				if f.isAnnualSpan() {
					annual = append(annual, f)
				}
			}
			if len(annual) > 0 {
				valid = annual
			}
		}

		if best, ok := latestByEnd(valid); ok {
			return best.Val, best.End, true
		}
	}
	return nil, "", false
}

// factForPeriod picks the concept's value at a known period end date.
// Instants match on end date alone, preferring annual forms; the last match
// wins because amended values are filed after originals. Flows additionally
// require a ~annual span, again preferring annual forms.
func factForPeriod(c Concept, endDate string, instant bool) (interface{}, bool) {
	for _, unit := range unitPriority {
		facts, ok := c.Units[unit]
		if !ok {
			continue
		}

		if instant {
			var matching []ConceptFact
			for _, f := range facts {
				if f.End == endDate && f.isAnnualForm() {
					matching = append(matching, f)
				}
			}
			if len(matching) == 0 {
				for _, f := range facts {
					if f.End == endDate {
						matching = append(matching, f)
					}
				}
			}
			if len(matching) > 0 {
				return matching[len(matching)-1].Val, true
			}
			continue
		}

		for _, f := range facts {
			if f.End == endDate && f.isAnnualForm() && f.isAnnualSpan() {
				return f.Val, true
			}
		}
		for _, f := range facts {
			if f.End == endDate && f.isAnnualSpan() {
				return f.Val, true
			}
		}
	}
	return nil, false
}
