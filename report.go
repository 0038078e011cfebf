package gocompsel

import "github.com/albertocavalcante/go-compsel/coordinates"

// EvaluationReport contains the outcome of evaluating a batch of candidate
// versions against the registry.
type EvaluationReport struct {
	// Outcomes lists one entry per candidate, in input order.
	Outcomes []CandidateOutcome `json:"outcomes"`

	// Summary provides aggregate statistics about the evaluation.
	Summary EvaluationSummary `json:"summary"`
}

// CandidateOutcome records what the rules decided for one candidate version.
type CandidateOutcome struct {
	// Group is the candidate's group component.
	Group string `json:"group"`

	// Name is the candidate's name component.
	Name string `json:"name"`

	// Version is the candidate's concrete version.
	Version string `json:"version"`

	// Rejected indicates a rule vetoed the candidate.
	Rejected bool `json:"rejected"`

	// RejectionReason explains why the candidate was rejected.
	// Empty if accepted.
	RejectionReason string `json:"rejection_reason,omitempty"`

	// RuleIndex is the registration-order index of the rejecting rule,
	// or -1 if the candidate was accepted.
	RuleIndex int `json:"rule_index"`
}

// EvaluationSummary provides statistics about a batch evaluation.
type EvaluationSummary struct {
	// TotalCandidates is the number of candidates evaluated.
	TotalCandidates int `json:"total_candidates"`

	// Accepted is the count of candidates no rule rejected.
	Accepted int `json:"accepted"`

	// Rejected is the count of candidates a rule rejected.
	Rejected int `json:"rejected"`
}

// EvaluateAll runs every candidate through the registry in input order and
// collects the outcomes. Candidates are evaluated independently: one
// candidate's rejection never affects another's evaluation.
func (r *SelectionRules) EvaluateAll(candidates []coordinates.ModuleVersionIdentifier) *EvaluationReport {
	report := &EvaluationReport{
		Outcomes: make([]CandidateOutcome, 0, len(candidates)),
	}
	for _, candidate := range candidates {
		selection := NewComponentSelection(candidate)
		ruleIndex := r.applyRules(selection)

		report.Outcomes = append(report.Outcomes, CandidateOutcome{
			Group:           candidate.Group(),
			Name:            candidate.Name(),
			Version:         candidate.Version(),
			Rejected:        selection.IsRejected(),
			RejectionReason: selection.RejectionReason(),
			RuleIndex:       ruleIndex,
		})
		report.Summary.TotalCandidates++
		if selection.IsRejected() {
			report.Summary.Rejected++
		} else {
			report.Summary.Accepted++
		}
	}
	return report
}
