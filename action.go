package gocompsel

import (
	"fmt"
	"reflect"
)

// Action mutates a ComponentSelection, typically by rejecting its candidate.
// It is the strongly-typed shape for rule bodies.
type Action interface {
	Execute(selection *ComponentSelection)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(selection *ComponentSelection)

// Execute calls f(selection).
func (f ActionFunc) Execute(selection *ComponentSelection) {
	f(selection)
}

// RuleAction is the normalized form every registered rule body is reduced to
// at registration time, regardless of which shape the caller supplied.
// Evaluation code only ever sees RuleActions and never needs to know how a
// rule was written.
//
// Gradle reduces typed Action<ComponentSelection> instances and untyped
// closures to RuleAction the same way; see
// https://github.com/gradle/gradle/blob/master/platforms/software/dependency-management/src/main/java/org/gradle/api/internal/artifacts/DefaultComponentSelectionRules.java
type RuleAction struct {
	execute func(*ComponentSelection)
}

// Execute runs the rule body against the selection.
func (a RuleAction) Execute(selection *ComponentSelection) {
	a.execute(selection)
}

var selectionPtrType = reflect.TypeOf((*ComponentSelection)(nil))

// adaptAction normalizes a rule body into a RuleAction. Three shapes are
// accepted:
//
//   - an [Action] (which includes [ActionFunc])
//   - a func(*ComponentSelection)
//   - any other non-variadic function taking exactly one parameter that a
//     *ComponentSelection can be assigned to; declared return values are
//     ignored
//
// A nil body fails with ErrNilAction and any other unsupported shape with a
// *BlockSignatureError. Errors reach registration callers unchanged.
func adaptAction(body any) (RuleAction, error) {
	switch a := body.(type) {
	case nil:
		return RuleAction{}, ErrNilAction
	case Action:
		return adaptTypedAction(a)
	case func(*ComponentSelection):
		if a == nil {
			return RuleAction{}, ErrNilAction
		}
		return RuleAction{execute: a}, nil
	default:
		return adaptUntypedBlock(body)
	}
}

// adaptTypedAction wraps a strongly-typed action. A typed-nil implementation
// would panic at evaluation time, so it is rejected here instead.
func adaptTypedAction(action Action) (RuleAction, error) {
	v := reflect.ValueOf(action)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return RuleAction{}, ErrNilAction
		}
	}
	return RuleAction{execute: action.Execute}, nil
}

// adaptUntypedBlock wraps an arbitrary function through reflection after
// validating its shape.
func adaptUntypedBlock(block any) (RuleAction, error) {
	v := reflect.ValueOf(block)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return RuleAction{}, &BlockSignatureError{Type: t, Reason: "not a function"}
	}
	if v.IsNil() {
		return RuleAction{}, ErrNilAction
	}
	if t.IsVariadic() {
		return RuleAction{}, &BlockSignatureError{Type: t, Reason: "variadic functions are not supported"}
	}
	if t.NumIn() != 1 {
		return RuleAction{}, &BlockSignatureError{
			Type:   t,
			Reason: fmt.Sprintf("takes %d parameters, want exactly 1", t.NumIn()),
		}
	}
	if param := t.In(0); !selectionPtrType.AssignableTo(param) {
		return RuleAction{}, &BlockSignatureError{
			Type:   t,
			Reason: fmt.Sprintf("parameter type %s cannot receive a *ComponentSelection", param),
		}
	}
	return RuleAction{execute: func(selection *ComponentSelection) {
		v.Call([]reflect.Value{reflect.ValueOf(selection)})
	}}, nil
}

// Compile-time interface check.
var _ Action = ActionFunc(nil)
