package gocompsel

import (
	"errors"
	"testing"

	"github.com/albertocavalcante/go-compsel/coordinates"
)

func TestNewSelectionRulesEmpty(t *testing.T) {
	rules := NewSelectionRules()
	if rules.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rules.Len())
	}
	if len(rules.Rules()) != 0 {
		t.Errorf("Rules() has %d entries, want 0", len(rules.Rules()))
	}
}

func TestAllAppendsOneRule(t *testing.T) {
	rules := NewSelectionRules()

	if err := rules.All(ActionFunc(func(*ComponentSelection) {})); err != nil {
		t.Fatalf("All with typed action: %v", err)
	}
	if rules.Len() != 1 {
		t.Fatalf("Len() = %d after one registration, want 1", rules.Len())
	}

	if err := rules.All(func(s any) {}); err != nil {
		t.Fatalf("All with untyped block: %v", err)
	}
	if rules.Len() != 2 {
		t.Fatalf("Len() = %d after two registrations, want 2", rules.Len())
	}

	if _, ok := rules.Rules()[0].Spec().(allComponentsSpec); !ok {
		t.Errorf("All should register an all-components spec, got %T", rules.Rules()[0].Spec())
	}
}

func TestModuleAppendsScopedRule(t *testing.T) {
	rules := NewSelectionRules()

	if err := rules.Module("org.gradle:api", ActionFunc(func(*ComponentSelection) {})); err != nil {
		t.Fatalf("Module: %v", err)
	}
	if rules.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rules.Len())
	}

	spec, ok := rules.Rules()[0].Spec().(ModuleMatchingSpec)
	if !ok {
		t.Fatalf("Module should register a ModuleMatchingSpec, got %T", rules.Rules()[0].Spec())
	}
	want := coordinates.MustModuleIdentifier("org.gradle", "api")
	if spec.Target() != want {
		t.Errorf("spec target = %v, want %v", spec.Target(), want)
	}
}

func TestModuleRejectsVersionedNotation(t *testing.T) {
	rules := NewSelectionRules()

	err := rules.Module("org.gradle:api:1.0", ActionFunc(func(*ComponentSelection) {}))
	if err == nil {
		t.Fatal("Module with group:name:version notation should fail")
	}

	wantMsg := "Could not add a component selection rule for module 'org.gradle:api:1.0'."
	if err.Error() != wantMsg {
		t.Errorf("error message = %q, want %q", err.Error(), wantMsg)
	}

	var regErr *RuleRegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("error = %T, want *RuleRegistrationError", err)
	}
	if regErr.Notation != "org.gradle:api:1.0" {
		t.Errorf("Notation = %q, want 'org.gradle:api:1.0'", regErr.Notation)
	}

	var notationErr *coordinates.UnsupportedNotationError
	if !errors.As(err, &notationErr) {
		t.Fatal("cause should be a *coordinates.UnsupportedNotationError")
	}
	if notationErr.Notation != "org.gradle:api:1.0" {
		t.Errorf("cause Notation = %q, want 'org.gradle:api:1.0'", notationErr.Notation)
	}

	if rules.Len() != 0 {
		t.Errorf("Len() = %d after failed registration, want 0", rules.Len())
	}
}

func TestModuleInvalidNotationTable(t *testing.T) {
	tests := []struct {
		name     string
		notation string
	}{
		{"three parts", "org.gradle:api:1.0"},
		{"single part", "org.gradle"},
		{"empty", ""},
		{"empty group", ":api"},
		{"empty name", "org.gradle:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewSelectionRules()
			err := rules.Module(tt.notation, ActionFunc(func(*ComponentSelection) {}))
			if err == nil {
				t.Fatalf("Module(%q) expected error, got nil", tt.notation)
			}
			var regErr *RuleRegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("Module(%q) error = %T, want *RuleRegistrationError", tt.notation, err)
			}
			wantMsg := "Could not add a component selection rule for module '" + tt.notation + "'."
			if err.Error() != wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), wantMsg)
			}
			if rules.Len() != 0 {
				t.Errorf("Len() = %d after failed registration, want 0", rules.Len())
			}
		})
	}
}

func TestRegistrationSurfacesAdapterErrorUnchanged(t *testing.T) {
	rules := NewSelectionRules()

	// The body error must come back as-is, not wrapped in a registration error.
	err := rules.All(func(a, b string) {})
	var sigErr *BlockSignatureError
	if !errors.As(err, &sigErr) {
		t.Fatalf("All error = %T, want *BlockSignatureError", err)
	}
	var regErr *RuleRegistrationError
	if errors.As(err, &regErr) {
		t.Error("adapter error should not be wrapped in a RuleRegistrationError")
	}

	err = rules.Module("org.gradle:api", "not a body")
	if !errors.As(err, &sigErr) {
		t.Fatalf("Module error = %T, want *BlockSignatureError", err)
	}

	if rules.Len() != 0 {
		t.Errorf("Len() = %d after failed registrations, want 0", rules.Len())
	}
}

func TestModuleBadBodyAndBadNotation(t *testing.T) {
	rules := NewSelectionRules()

	// The body is normalized before the notation is parsed, so the adapter
	// error wins when both are invalid.
	err := rules.Module("org.gradle:api:1.0", "not a body")
	var sigErr *BlockSignatureError
	if !errors.As(err, &sigErr) {
		t.Fatalf("error = %T, want *BlockSignatureError", err)
	}
	if rules.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rules.Len())
	}
}

func TestAddRule(t *testing.T) {
	rules := NewSelectionRules()

	spec := SpecFunc(func(s *ComponentSelection) bool {
		return s.Candidate().Group() == "org.gradle"
	})
	if err := rules.AddRule(spec, ActionFunc(func(s *ComponentSelection) { s.Reject("gradle modules are pinned") })); err != nil {
		t.Fatalf("AddRule: %v", err)
	}

	selection := NewComponentSelection(coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0"))
	rules.Apply(selection)
	if !selection.IsRejected() {
		t.Error("custom spec rule should reject matching candidate")
	}

	other := NewComponentSelection(coordinates.MustModuleVersionIdentifier("com.example", "lib", "1.0"))
	rules.Apply(other)
	if other.IsRejected() {
		t.Error("custom spec rule should not reject non-matching candidate")
	}
}

func TestAddRuleNilSpec(t *testing.T) {
	rules := NewSelectionRules()

	err := rules.AddRule(nil, ActionFunc(func(*ComponentSelection) {}))
	if !errors.Is(err, ErrNilSpec) {
		t.Errorf("AddRule(nil, ...) error = %v, want ErrNilSpec", err)
	}
	if rules.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rules.Len())
	}
}

func TestApplyModuleScoping(t *testing.T) {
	rules := NewSelectionRules()
	target := &recordingAction{}
	if err := rules.Module("org.gradle:api", target); err != nil {
		t.Fatalf("Module: %v", err)
	}

	tests := []struct {
		name      string
		candidate coordinates.ModuleVersionIdentifier
		wantCalls int
	}{
		{"matching module v1", coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0"), 1},
		{"matching module v2", coordinates.MustModuleVersionIdentifier("org.gradle", "api", "2.0-beta1"), 1},
		{"same group different name", coordinates.MustModuleVersionIdentifier("org.gradle", "lib", "1.0"), 0},
		{"different group same name", coordinates.MustModuleVersionIdentifier("com.gradle", "api", "1.0"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target.calls = 0
			rules.Apply(NewComponentSelection(tt.candidate))
			if target.calls != tt.wantCalls {
				t.Errorf("action invoked %d times for %s, want %d", target.calls, tt.candidate, tt.wantCalls)
			}
		})
	}
}

func TestApplyAllAndModuleScopesCombined(t *testing.T) {
	rules := NewSelectionRules()
	everyCandidate := &recordingAction{}
	gradleAPIOnly := &recordingAction{}
	if err := rules.All(everyCandidate); err != nil {
		t.Fatal(err)
	}
	if err := rules.Module("org.gradle:api", gradleAPIOnly); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name            string
		candidate       coordinates.ModuleVersionIdentifier
		wantAllCalls    int
		wantModuleCalls int
	}{
		{"target module", coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0"), 1, 1},
		{"same group different name", coordinates.MustModuleVersionIdentifier("org.gradle", "lib", "1.0"), 1, 0},
		{"different group same name", coordinates.MustModuleVersionIdentifier("com.gradle", "api", "1.0"), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			everyCandidate.calls = 0
			gradleAPIOnly.calls = 0
			rules.Apply(NewComponentSelection(tt.candidate))
			if everyCandidate.calls != tt.wantAllCalls {
				t.Errorf("all-components rule invoked %d times, want %d", everyCandidate.calls, tt.wantAllCalls)
			}
			if gradleAPIOnly.calls != tt.wantModuleCalls {
				t.Errorf("module-scoped rule invoked %d times, want %d", gradleAPIOnly.calls, tt.wantModuleCalls)
			}
		})
	}
}

func TestApplyRunsRulesInRegistrationOrder(t *testing.T) {
	rules := NewSelectionRules()

	var order []string
	if err := rules.All(func(*ComponentSelection) { order = append(order, "first") }); err != nil {
		t.Fatal(err)
	}
	if err := rules.Module("org.gradle:api", func(*ComponentSelection) { order = append(order, "second") }); err != nil {
		t.Fatal(err)
	}
	if err := rules.All(func(*ComponentSelection) { order = append(order, "third") }); err != nil {
		t.Fatal(err)
	}

	rules.Apply(NewComponentSelection(coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0")))

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("got %d invocations %v, want %v", len(order), order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("invocation order = %v, want %v", order, want)
		}
	}
}

func TestApplyStopsAtFirstRejection(t *testing.T) {
	rules := NewSelectionRules()

	if err := rules.All(func(s *ComponentSelection) { s.Reject("stop here") }); err != nil {
		t.Fatal(err)
	}
	after := &recordingAction{}
	if err := rules.All(after); err != nil {
		t.Fatal(err)
	}

	selection := NewComponentSelection(coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0"))
	rules.Apply(selection)

	if !selection.IsRejected() {
		t.Fatal("selection should be rejected")
	}
	if selection.RejectionReason() != "stop here" {
		t.Errorf("RejectionReason() = %q, want 'stop here'", selection.RejectionReason())
	}
	if after.calls != 0 {
		t.Errorf("rule after rejection invoked %d times, want 0", after.calls)
	}
}

func TestApplyNilSelection(t *testing.T) {
	rules := NewSelectionRules()
	if err := rules.All(ActionFunc(func(*ComponentSelection) {})); err != nil {
		t.Fatal(err)
	}

	// Must not panic.
	rules.Apply(nil)
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := NewSelectionRules()
	if err := rules.All(ActionFunc(func(*ComponentSelection) {})); err != nil {
		t.Fatal(err)
	}

	snapshot := rules.Rules()
	snapshot[0] = SelectionRule{}

	if rules.Rules()[0].Spec() == nil {
		t.Error("mutating the returned slice should not affect the registry")
	}
}

func TestRegistrationOrderPreservedAcrossFailures(t *testing.T) {
	rules := NewSelectionRules()

	if err := rules.All(func(s *ComponentSelection) { s.Reject("from first") }); err != nil {
		t.Fatal(err)
	}
	if err := rules.Module("bad notation", ActionFunc(func(*ComponentSelection) {})); err == nil {
		t.Fatal("expected notation failure")
	}
	if err := rules.Module("org.gradle:api", func(s *ComponentSelection) { s.Reject("from second") }); err != nil {
		t.Fatal(err)
	}

	if rules.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rules.Len())
	}

	selection := NewComponentSelection(coordinates.MustModuleVersionIdentifier("org.gradle", "api", "1.0"))
	rules.Apply(selection)
	if selection.RejectionReason() != "from first" {
		t.Errorf("RejectionReason() = %q, want 'from first'", selection.RejectionReason())
	}
}
