// Package celrule compiles CEL expressions into component selection specs
// and rule bodies.
//
// Expressions see a single variable, candidate, a string map with the keys
// "group", "name", "module" and "version":
//
//	candidate.group == "org.gradle"
//	candidate.version.matches("^2\\.")
//	candidate.module == "com.example:lib"
//
// Expressions must produce a boolean. A candidate the expression fails to
// evaluate against counts as not matched, so a broken expression can never
// widen a rule's scope.
package celrule

import (
	"fmt"

	"github.com/google/cel-go/cel"

	gocompsel "github.com/albertocavalcante/go-compsel"
)

// Evaluation guards applied to every compiled program.
const (
	interruptCheckFrequency = 100
	costLimit               = 10000
)

// CompileError indicates a CEL expression that could not be compiled into
// an Expression.
type CompileError struct {
	Source string // the expression text
	Err    error  // the underlying CEL issue
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile CEL expression %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying CEL error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Expression is a compiled candidate predicate. It is immutable and safe
// for concurrent use.
type Expression struct {
	source  string
	program cel.Program
}

// Compile builds an Expression from CEL source. Failures are returned as
// *CompileError.
func Compile(source string) (*Expression, error) {
	env, err := cel.NewEnv(
		cel.Variable("candidate", cel.MapType(cel.StringType, cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	ast, issues := env.Compile(source)
	if issues != nil && issues.Err() != nil {
		return nil, &CompileError{Source: source, Err: issues.Err()}
	}
	program, err := env.Program(ast,
		cel.InterruptCheckFrequency(interruptCheckFrequency),
		cel.CostLimit(costLimit),
	)
	if err != nil {
		return nil, &CompileError{Source: source, Err: err}
	}
	return &Expression{source: source, program: program}, nil
}

// MustCompile compiles an expression or panics. Use only for constants/tests.
func MustCompile(source string) *Expression {
	expr, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return expr
}

// Source returns the expression text.
func (e *Expression) Source() string {
	return e.source
}

// Eval runs the expression against the selection's candidate. The result
// must be a CEL bool; any other result type or evaluation failure is an
// error.
func (e *Expression) Eval(selection *gocompsel.ComponentSelection) (bool, error) {
	candidate := selection.Candidate()
	input := map[string]any{
		"candidate": map[string]string{
			"group":   candidate.Group(),
			"name":    candidate.Name(),
			"module":  candidate.Module().String(),
			"version": candidate.Version(),
		},
	}
	out, _, err := e.program.Eval(input)
	if err != nil {
		return false, fmt.Errorf("evaluate expression %q: %w", e.source, err)
	}
	val, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, want bool", e.source, out.Value())
	}
	return val, nil
}

// AsSpec adapts the expression to a Spec. Candidates the expression fails
// to evaluate against do not match.
func (e *Expression) AsSpec() gocompsel.Spec {
	return gocompsel.SpecFunc(func(selection *gocompsel.ComponentSelection) bool {
		ok, err := e.Eval(selection)
		return err == nil && ok
	})
}

// RejectMatching returns a typed rule body rejecting every candidate the
// expression matches. If reason is empty, a reason naming the expression is
// generated per candidate.
func RejectMatching(source, reason string) (gocompsel.ActionFunc, error) {
	expr, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return func(selection *gocompsel.ComponentSelection) {
		ok, err := expr.Eval(selection)
		if err != nil || !ok {
			return
		}
		if reason == "" {
			selection.Reject(fmt.Sprintf("candidate matches expression %q", expr.Source()))
			return
		}
		selection.Reject(reason)
	}, nil
}
