package analysis

// Field is one labeled value in a verdict's detail listing. Fields
// are rendered in declaration order; no reflective dumping happens
// anywhere downstream.
type Field struct {
	Label string
	Value string
}

// Verdict is the computed outcome for one category. A nil *Verdict
// means the category produced no data and is excluded from tallies,
// insights, and the exit status.
type Verdict struct {
	// Category is the validation dimension this verdict belongs to.
	Category Category
	// Passed indicates whether the derived value met the category's
	// fixed performance target.
	Passed bool
	// Fields is the ordered detail listing for the report.
	Fields []Field
	// Headline is the single key metric shown in summary tables,
	// e.g. "80.0% efficiency" or "999ns".
	Headline string
	// Analysis is descriptive context. It never appears in the field
	// dump; it is carried into the JUnit failure body.
	Analysis string
	// Data holds the typed per-category payload consumed by the
	// insight generator.
	Data any
}

// Status returns "PASS" or "FAIL".
func (v *Verdict) Status() string {
	if v.Passed {
		return "PASS"
	}
	return "FAIL"
}

// Set maps categories to their verdicts. Categories without data are
// simply absent.
type Set map[Category]*Verdict

// Total counts categories that produced data.
func (s Set) Total() int {
	return len(s)
}

// PassedCount counts categories that produced data and passed.
func (s Set) PassedCount() int {
	n := 0
	for _, v := range s {
		if v.Passed {
			n++
		}
	}
	return n
}

// Failures counts categories that produced data and failed. This is
// the exit-status rule: categories without data never count as
// failures, so an all-missing run reports success.
func (s Set) Failures() int {
	n := 0
	for _, v := range s {
		if !v.Passed {
			n++
		}
	}
	return n
}
