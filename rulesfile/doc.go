// Package rulesfile parses declarative component selection rules written in
// Starlark syntax and registers them on a SelectionRules registry.
//
// A rules file is a sequence of top-level declaration calls. Four
// declarations are understood:
//
//	# Reject every version of one module.
//	reject_module(
//	    module = "com.example:legacy-client",
//	    reason = "replaced by com.example:client",
//	)
//
//	# Reject every version of several modules at once.
//	reject_modules(
//	    modules = [
//	        "com.example:log4j-shim",
//	        "com.example:log4j-bridge",
//	    ],
//	    reason = "banned by security policy",
//	)
//
//	# Reject versions of one module matching a semver constraint.
//	reject_versions(
//	    module = "org.gradle:api",
//	    versions = ">= 1.1, < 1.2",
//	    reason = "1.1 line has a broken classpath",
//	)
//
//	# Reject any candidate matching a CEL expression.
//	reject_when(
//	    expr = 'candidate.version.matches("-SNAPSHOT$")',
//	    reason = "snapshots are not allowed in release builds",
//	)
//
// The "reason" attribute is optional everywhere; a reason naming the
// declaration is generated when it is omitted. Unknown top-level calls are
// ignored. All module notations, version constraints and expressions are
// validated at parse time and reported as *ParseError values carrying the
// file name and line of the failing declaration.
//
// # Usage
//
//	doc, err := rulesfile.ParseFile("selection.rules")
//	if err != nil {
//	    return err
//	}
//	rules := gocompsel.NewSelectionRules()
//	if err := doc.Register(rules); err != nil {
//	    return err
//	}
//
// Declarations become ordinary selection rules, registered in file order,
// so they compose with rules registered through All, Module and AddRule.
package rulesfile
