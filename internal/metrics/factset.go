package metrics

// FactSet is the typed, numeric view of resolved facts. Map presence
// distinguishes a reported zero from a missing metric, which the
// reconciliation zero-fill step depends on.
type FactSet struct {
	Values map[Metric]float64

	// ReportEndDate is the consolidated annual period ("YYYY-MM-DD") the
	// values were drawn from, empty if none was detected.
	ReportEndDate string
}

// NewFactSet builds a FactSet from normalized raw facts. Non-numeric values
// are dropped: a string that survived normalization is unusable downstream
// and is treated as missing.
func NewFactSet(raw RawFacts, reportEndDate string) FactSet {
	fs := FactSet{
		Values:        make(map[Metric]float64, len(raw)),
		ReportEndDate: reportEndDate,
	}
	for k, v := range raw {
		if f, ok := asFloat(v); ok {
			fs.Values[Metric(k)] = f
		}
	}
	return fs
}

// Get returns the metric's value, or zero when absent.
func (fs FactSet) Get(m Metric) float64 {
	return fs.Values[m]
}

// Has reports whether the metric was resolved at all.
func (fs FactSet) Has(m Metric) bool {
	_, ok := fs.Values[m]
	return ok
}

// Nonzero reports whether the metric is present with a nonzero value.
func (fs FactSet) Nonzero(m Metric) bool {
	return fs.Values[m] != 0
}

// Set stores a value for the metric.
func (fs FactSet) Set(m Metric, v float64) {
	fs.Values[m] = v
}

// Ptr returns a pointer to the metric's value, or nil when absent. Report
// assembly uses it to keep missing data distinguishable from zero in JSON.
func (fs FactSet) Ptr(m Metric) *float64 {
	if v, ok := fs.Values[m]; ok {
		return &v
	}
	return nil
}

// Clone returns a deep copy.
func (fs FactSet) Clone() FactSet {
	out := FactSet{
		Values:        make(map[Metric]float64, len(fs.Values)),
		ReportEndDate: fs.ReportEndDate,
	}
	for k, v := range fs.Values {
		out.Values[k] = v
	}
	return out
}

// Shares returns the share count used for per-share figures: outstanding,
// then weighted-average basic, then diluted. Zero when none is usable.
func (fs FactSet) Shares() float64 {
	for _, m := range []Metric{SharesOutstanding, SharesOutstandingBasic, SharesOutstandingDiluted} {
		if v := fs.Values[m]; v != 0 {
			return v
		}
	}
	return 0
}

// TotalDebt sums long-term debt, short-term debt and the current portion of
// long-term debt.
func (fs FactSet) TotalDebt() float64 {
	return fs.Get(LongTermDebt) + fs.Get(ShortTermDebt) + fs.Get(CurrentPortionLongTermDebt)
}
