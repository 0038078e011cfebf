// Package gocompsel provides a Go library for Gradle-style component
// selection rules: ordered, user-registered predicates and actions that
// accept or reject candidate component versions during dependency
// resolution.
//
// This library is a Go port of Gradle's ComponentSelectionRules container
// (https://github.com/gradle/gradle/blob/master/platforms/software/dependency-management/src/main/java/org/gradle/api/artifacts/ComponentSelectionRules.java)
// and its internal registry
// (https://github.com/gradle/gradle/blob/master/platforms/software/dependency-management/src/main/java/org/gradle/api/internal/artifacts/DefaultComponentSelectionRules.java).
//
// # Overview
//
// The package provides three main components:
//
//   - SelectionRules: An ordered registry of (spec, action) rule pairs
//   - ComponentSelection: The mutable evaluation state for one candidate version
//   - RuleAction: The normalized form rule bodies are reduced to at registration time
//
// # Quick Start
//
// Register rules, then evaluate candidates against them:
//
//	rules := gocompsel.NewSelectionRules()
//
//	// Rule applied to every candidate
//	err := rules.All(func(s *gocompsel.ComponentSelection) {
//	    if s.Candidate().Version() == "1.1" {
//	        s.Reject("known bad release")
//	    }
//	})
//
//	// Rule applied only to candidates of one module
//	err = rules.Module("org.gradle:api", gocompsel.ActionFunc(func(s *gocompsel.ComponentSelection) {
//	    s.Reject("use the BOM instead")
//	}))
//
//	selection := gocompsel.NewComponentSelection(candidate)
//	rules.Apply(selection)
//	if selection.IsRejected() {
//	    fmt.Println(selection.RejectionReason())
//	}
//
// # Rule Bodies
//
// Every registration accepts either a strongly-typed [Action] (including
// [ActionFunc] and func(*ComponentSelection)) or an untyped function taking
// exactly one parameter a *ComponentSelection can be assigned to, such as
// func(any). Both shapes are normalized into a [RuleAction] at registration
// time and unsupported shapes fail registration immediately.
//
// # Thread Safety
//
// A SelectionRules registry follows a configure-then-read lifecycle: perform
// all registrations from a single goroutine first, then share the registry
// freely for concurrent evaluation. Registration itself is not synchronized.
package gocompsel

import (
	"log/slog"

	"github.com/albertocavalcante/go-compsel/coordinates"
)

// SelectionRule pairs the spec deciding whether a rule applies with the
// normalized action to run when it does.
type SelectionRule struct {
	spec   Spec
	action RuleAction
}

// Spec returns the rule's matching predicate.
func (r SelectionRule) Spec() Spec {
	return r.spec
}

// Action returns the rule's normalized body.
func (r SelectionRule) Action() RuleAction {
	return r.action
}

// Matches reports whether the rule applies to the selection.
func (r SelectionRule) Matches(selection *ComponentSelection) bool {
	return r.spec.IsSatisfiedBy(selection)
}

// Apply runs the rule body against the selection.
func (r SelectionRule) Apply(selection *ComponentSelection) {
	r.action.Execute(selection)
}

// SelectionRules is an ordered registry of component selection rules.
// Rules are evaluated in registration order and each registration either
// appends exactly one rule or fails leaving the registry unchanged.
type SelectionRules struct {
	rules  []SelectionRule
	logger *slog.Logger
}

// NewSelectionRules creates an empty registry.
func NewSelectionRules(opts ...Option) *SelectionRules {
	r := &SelectionRules{
		logger: slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// All registers a rule applied to every candidate. The body may be any
// shape adaptAction accepts; unsupported shapes fail with the adapter's
// error unchanged.
func (r *SelectionRules) All(body any) error {
	action, err := adaptAction(body)
	if err != nil {
		return err
	}
	r.append(allComponentsSpec{}, action, "all")
	return nil
}

// Module registers a rule applied only to candidates of the module named by
// the "group:name" notation text.
//
// The body is normalized before the notation is parsed, so an invalid body
// fails with the adapter's error even when the notation is also bad. A
// notation failure is wrapped in a *RuleRegistrationError whose cause is
// the *coordinates.UnsupportedNotationError.
func (r *SelectionRules) Module(notation string, body any) error {
	action, err := adaptAction(body)
	if err != nil {
		return err
	}
	target, err := coordinates.ParseModule(notation)
	if err != nil {
		return &RuleRegistrationError{Notation: notation, Err: err}
	}
	r.append(ModuleMatchingSpec{target: target}, action, target.String())
	return nil
}

// AddRule registers a rule with a caller-supplied spec. It is the extension
// point for matching strategies beyond all-components and single-module.
func (r *SelectionRules) AddRule(spec Spec, body any) error {
	if spec == nil {
		return ErrNilSpec
	}
	action, err := adaptAction(body)
	if err != nil {
		return err
	}
	r.append(spec, action, "custom")
	return nil
}

func (r *SelectionRules) append(spec Spec, action RuleAction, scope string) {
	r.rules = append(r.rules, SelectionRule{spec: spec, action: action})
	r.logger.Debug("registered component selection rule",
		"index", len(r.rules)-1,
		"scope", scope)
}

// Rules returns the registered rules in registration order. The returned
// slice is a copy; mutating it does not affect the registry.
func (r *SelectionRules) Rules() []SelectionRule {
	out := make([]SelectionRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of registered rules.
func (r *SelectionRules) Len() int {
	return len(r.rules)
}

// Apply evaluates the selection against every rule in registration order.
// Rules whose spec does not match are skipped. Evaluation stops at the
// first rule that rejects the candidate; a nil selection is a no-op.
func (r *SelectionRules) Apply(selection *ComponentSelection) {
	r.applyRules(selection)
}

// applyRules runs the evaluation loop and returns the index of the rule
// that rejected the candidate, or -1 if every matching rule accepted it.
func (r *SelectionRules) applyRules(selection *ComponentSelection) int {
	if selection == nil {
		return -1
	}
	for i, rule := range r.rules {
		if !rule.Matches(selection) {
			continue
		}
		rule.Apply(selection)
		if selection.IsRejected() {
			r.logger.Debug("candidate rejected by component selection rule",
				"candidate", selection.Candidate().String(),
				"rule", i,
				"reason", selection.RejectionReason())
			return i
		}
	}
	return -1
}
