// Package shared contains domain types used by both extraction domains.
package shared

// ValidationReport is the outcome of validating an assembled extraction.
// Any error makes the record invalid; warnings are advisory completeness
// gaps and never affect validity.
type ValidationReport struct {
	IsValid      bool     `json:"isValid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	Completeness int      `json:"completeness"`
}

// RubricItem is one weighted predicate of the completeness rubric.
type RubricItem struct {
	Name   string
	Weight int
	Met    bool
}

// Score computes the 0-100 completeness score: matched weight over total
// weight, rounded to the nearest integer percent.
func Score(items []RubricItem) int {
	var matched, total int
	for _, it := range items {
		total += it.Weight
		if it.Met {
			matched += it.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return (matched*100 + total/2) / total
}

// NewReport assembles a validation report from errors, warnings, and the
// completeness rubric. IsValid is derived: any error fails validation.
func NewReport(errors, warnings []string, rubric []RubricItem) ValidationReport {
	return ValidationReport{
		IsValid:      len(errors) == 0,
		Errors:       errors,
		Warnings:     warnings,
		Completeness: Score(rubric),
	}
}
