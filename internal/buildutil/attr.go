// Package buildutil provides utilities for extracting attributes from
// buildtools AST nodes.
//
// It backs the rules-file parser (package rulesfile): call sites get the
// named attributes of a declaration plus whether each one was present, so
// missing and malformed attributes can be reported separately.
package buildutil

import (
	"github.com/bazelbuild/buildtools/build"
)

// String extracts a named string attribute from a function call.
// The second return value reports whether the attribute was present with a
// string value.
func String(call *build.CallExpr, name string) (string, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		if str, ok := assign.RHS.(*build.StringExpr); ok {
			return str.Value, true
		}
		return "", false
	}
	return "", false
}

// Strings extracts a named list-of-strings attribute from a function call.
// The second return value reports whether the attribute was present with a
// list value. Non-string elements in the list are silently skipped.
func Strings(call *build.CallExpr, name string) ([]string, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		list, ok := assign.RHS.(*build.ListExpr)
		if !ok {
			return nil, false
		}
		result := make([]string, 0, len(list.List))
		for _, elem := range list.List {
			if str, ok := elem.(*build.StringExpr); ok {
				result = append(result, str.Value)
			}
		}
		return result, true
	}
	return nil, false
}

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// Line returns the 1-based source line an expression starts on.
func Line(expr build.Expr) int {
	start, _ := expr.Span()
	return start.Line
}
