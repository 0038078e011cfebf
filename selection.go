package gocompsel

import "github.com/albertocavalcante/go-compsel/coordinates"

// ComponentSelection carries a single candidate component version through
// rule evaluation and records the outcome. Rule bodies inspect the candidate
// and call Reject to veto it; a candidate no rule rejects stays accepted.
//
// This is a Go port of Gradle's ComponentSelection:
// https://github.com/gradle/gradle/blob/master/platforms/software/dependency-management/src/main/java/org/gradle/api/artifacts/ComponentSelection.java
type ComponentSelection struct {
	candidate coordinates.ModuleVersionIdentifier
	rejected  bool
	reason    string
}

// NewComponentSelection creates a selection for the given candidate with no
// rejection recorded.
func NewComponentSelection(candidate coordinates.ModuleVersionIdentifier) *ComponentSelection {
	return &ComponentSelection{candidate: candidate}
}

// Candidate returns the component version under evaluation.
func (s *ComponentSelection) Candidate() coordinates.ModuleVersionIdentifier {
	return s.candidate
}

// Reject vetoes the candidate with a human-readable reason. The first
// rejection wins: once a candidate is rejected, later calls are no-ops.
func (s *ComponentSelection) Reject(reason string) {
	if s.rejected {
		return
	}
	s.rejected = true
	s.reason = reason
}

// IsRejected returns true if a rule rejected the candidate.
func (s *ComponentSelection) IsRejected() bool {
	return s.rejected
}

// RejectionReason returns the reason passed to Reject, or the empty string
// if the candidate has not been rejected.
func (s *ComponentSelection) RejectionReason() string {
	return s.reason
}
