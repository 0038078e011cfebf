package gocompsel

import "github.com/albertocavalcante/go-compsel/coordinates"

// Spec decides whether a selection rule applies to a candidate. It is the
// matching half of a rule; the rule's action runs only when IsSatisfiedBy
// returns true.
type Spec interface {
	IsSatisfiedBy(selection *ComponentSelection) bool
}

// SpecFunc adapts a plain predicate function to the Spec interface.
type SpecFunc func(selection *ComponentSelection) bool

// IsSatisfiedBy calls f(selection).
func (f SpecFunc) IsSatisfiedBy(selection *ComponentSelection) bool {
	return f(selection)
}

// AllComponents returns the Spec that matches every candidate. Rules
// registered through [SelectionRules.All] carry it.
func AllComponents() Spec {
	return allComponentsSpec{}
}

type allComponentsSpec struct{}

func (allComponentsSpec) IsSatisfiedBy(*ComponentSelection) bool { return true }

// ModuleMatchingSpec matches candidates belonging to a single module: the
// candidate's group and name must both equal the target's. The candidate
// version is never consulted, so one module-scoped rule sees every version
// of its module.
//
// This is a Go port of the ComponentSelectionMatchingSpec nested in Gradle's
// DefaultComponentSelectionRules:
// https://github.com/gradle/gradle/blob/master/platforms/software/dependency-management/src/main/java/org/gradle/api/internal/artifacts/DefaultComponentSelectionRules.java
type ModuleMatchingSpec struct {
	target coordinates.ModuleIdentifier
}

// NewModuleMatchingSpec creates a spec matching candidates of the given module.
func NewModuleMatchingSpec(target coordinates.ModuleIdentifier) ModuleMatchingSpec {
	return ModuleMatchingSpec{target: target}
}

// Target returns the module the spec matches against.
func (m ModuleMatchingSpec) Target() coordinates.ModuleIdentifier {
	return m.target
}

// IsSatisfiedBy reports whether the candidate's module equals the target.
func (m ModuleMatchingSpec) IsSatisfiedBy(selection *ComponentSelection) bool {
	return selection.Candidate().Module() == m.target
}

// Compile-time interface checks.
var (
	_ Spec = SpecFunc(nil)
	_ Spec = allComponentsSpec{}
	_ Spec = ModuleMatchingSpec{}
)
