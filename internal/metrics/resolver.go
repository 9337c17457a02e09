package metrics

// RawFacts is metric-name-keyed extracted data before normalization. Values
// are whatever EDGAR filed (usually float64 from JSON decoding, occasionally
// strings). The normalizer and FactSet constructor handle coercion.
type RawFacts map[string]interface{}

// Resolution is the output of a resolver pass over a companyfacts document.
type Resolution struct {
	Facts RawFacts

	// ReportEndDate is the consolidated annual period end ("YYYY-MM-DD")
	// every value was drawn from, empty if no annual anchor was found.
	ReportEndDate string
}

// Resolve extracts one value per canonical metric from a companyfacts
// document, holding every metric to a single fiscal period.
//
// The period is pinned up front from the revenue concepts: the most recent
// 10-K annual-span revenue fact fixes both Revenue and the report end date.
// When no revenue anchor exists the resolver falls back to each metric's own
// latest annual fact, adopting the first resolved end date retroactively so
// later metrics still land on one period. The tag table is walked in a fixed
// order, which makes the fallback deterministic.
func Resolve(doc *FactsDocument) Resolution {
	usGAAP := doc.Namespace("us-gaap")
	dei := doc.Namespace("dei")

	res := Resolution{Facts: make(RawFacts, len(tagTable))}

	if val, end, ok := pinReportPeriod(usGAAP); ok {
		res.Facts[string(Revenue)] = val
		res.ReportEndDate = end
	}

	for _, entry := range tagTable {
		if entry.metric == Revenue {
			if _, ok := res.Facts[string(Revenue)]; ok {
				continue
			}
		}
		instant := instantMetrics[entry.metric]

		for _, tag := range entry.tags {
			concept, ok := lookupConcept(usGAAP, dei, tag)
			if !ok {
				continue
			}

			if res.ReportEndDate != "" {
				if val, ok := factForPeriod(concept, res.ReportEndDate, instant); ok && val != nil {
					res.Facts[string(entry.metric)] = val
					break
				}
			} else {
				if val, end, ok := latestAnnualFact(concept, instant); ok && val != nil {
					res.Facts[string(entry.metric)] = val
					if end != "" {
						res.ReportEndDate = end
					}
					break
				}
			}
		}
	}

	deriveMissing(res.Facts)
	return res
}

// pinReportPeriod finds the most recent 10-K annual-span revenue fact and
// returns its value and end date. Only USD facts qualify.
func pinReportPeriod(usGAAP map[string]Concept) (interface{}, string, bool) {
	for _, tag := range revenuePeriodTags {
		concept, ok := usGAAP[tag]
		if !ok {
			continue
		}
		facts, ok := concept.Units["USD"]
		if !ok {
			continue
		}

		var annual []ConceptFact
		for _, f := range facts {
			if f.isAnnualForm() && f.isAnnualSpan() {
				annual = append(annual, f)
			}
		}
		if latest, ok := latestByEnd(annual); ok {
			return latest.Val, latest.End, true
		}
	}
	return nil, "", false
}

func lookupConcept(usGAAP, dei map[string]Concept, tag string) (Concept, bool) {
	if c, ok := usGAAP[tag]; ok {
		return c, true
	}
	if c, ok := dei[tag]; ok {
		return c, true
	}
	return Concept{}, false
}

// deriveMissing backfills GrossProfit and OperatingIncome when the filer
// reports the inputs but not the subtotal.
func deriveMissing(facts RawFacts) {
	if !truthy(facts[string(GrossProfit)]) {
		rev, okR := asFloat(facts[string(Revenue)])
		cost, okC := asFloat(facts[string(CostOfRevenue)])
		if okR && okC && rev != 0 && cost != 0 {
			facts[string(GrossProfit)] = rev - cost
		}
	}

	if !truthy(facts[string(OperatingIncome)]) {
		gross, okG := asFloat(facts[string(GrossProfit)])
		if okG && gross != 0 {
			rd, _ := asFloat(facts[string(ResearchDevelopment)])
			sga, _ := asFloat(facts[string(SellingGeneralAdmin)])
			if rd+sga > 0 {
				facts[string(OperatingIncome)] = gross - (rd + sga)
			}
		}
	}
}

// truthy mirrors loose presence checks on raw fact values: missing, nil,
// zero and empty string all count as absent.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case string:
		return x != ""
	case bool:
		return x
	default:
		return true
	}
}

// asFloat extracts a numeric value from a raw fact.
func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
