package rulesfile

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-compsel/celrule"
	"github.com/albertocavalcante/go-compsel/coordinates"
	"github.com/albertocavalcante/go-compsel/internal/buildutil"
)

// Document is a parsed rules file: the validated declarations in file order.
type Document struct {
	// Name is the source name used in error positions, typically the file path.
	Name string

	// Declarations holds the parsed declarations in file order.
	Declarations []Declaration
}

// Declaration is one rule declaration from a rules file.
type Declaration interface {
	isDeclaration()
}

// RejectModule rejects every version of one module.
type RejectModule struct {
	Module coordinates.ModuleIdentifier
	Reason string
	Line   int
}

func (d *RejectModule) isDeclaration() {}

// RejectModules rejects every version of several modules.
type RejectModules struct {
	Modules []coordinates.ModuleIdentifier
	Reason  string
	Line    int
}

func (d *RejectModules) isDeclaration() {}

// RejectVersions rejects versions of one module matching a semver
// constraint. Versions holds the constraint text, already validated.
type RejectVersions struct {
	Module   coordinates.ModuleIdentifier
	Versions string
	Reason   string
	Line     int
}

func (d *RejectVersions) isDeclaration() {}

// RejectWhen rejects any candidate matching a CEL expression. Expr holds
// the expression text, already validated.
type RejectWhen struct {
	Expr   string
	Reason string
	Line   int
}

func (d *RejectWhen) isDeclaration() {}

// ParseError reports a declaration that could not be parsed, with its
// position in the source file.
type ParseError struct {
	File string // source name as passed to Parse
	Line int    // 1-based line of the failing declaration
	Call string // the declaration name, e.g. "reject_versions"
	Err  error  // what was wrong with it
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid %s declaration: %v", e.File, e.Line, e.Call, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile reads and parses a rules file from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses rules file content. The name is used in error positions.
// Top-level statements that are not recognized declarations are ignored.
func Parse(name string, data []byte) (*Document, error) {
	f, err := build.ParseDefault(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	doc := &Document{Name: name}
	for _, stmt := range f.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			continue
		}

		var (
			decl     Declaration
			declName = buildutil.FuncName(call)
		)
		switch declName {
		case "reject_module":
			decl, err = parseRejectModule(name, call)
		case "reject_modules":
			decl, err = parseRejectModules(name, call)
		case "reject_versions":
			decl, err = parseRejectVersions(name, call)
		case "reject_when":
			decl, err = parseRejectWhen(name, call)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		doc.Declarations = append(doc.Declarations, decl)
	}
	return doc, nil
}

func parseRejectModule(file string, call *build.CallExpr) (*RejectModule, error) {
	notation, ok := buildutil.String(call, "module")
	if !ok {
		return nil, declError(file, call, missingAttr("module"))
	}
	module, err := coordinates.ParseModule(notation)
	if err != nil {
		return nil, declError(file, call, err)
	}
	reason, _ := buildutil.String(call, "reason")
	return &RejectModule{Module: module, Reason: reason, Line: buildutil.Line(call)}, nil
}

func parseRejectModules(file string, call *build.CallExpr) (*RejectModules, error) {
	notations, ok := buildutil.Strings(call, "modules")
	if !ok {
		return nil, declError(file, call, missingAttr("modules"))
	}
	if len(notations) == 0 {
		return nil, declError(file, call, fmt.Errorf("attribute \"modules\" must not be empty"))
	}
	modules := make([]coordinates.ModuleIdentifier, 0, len(notations))
	for _, notation := range notations {
		module, err := coordinates.ParseModule(notation)
		if err != nil {
			return nil, declError(file, call, err)
		}
		modules = append(modules, module)
	}
	reason, _ := buildutil.String(call, "reason")
	return &RejectModules{Modules: modules, Reason: reason, Line: buildutil.Line(call)}, nil
}

func parseRejectVersions(file string, call *build.CallExpr) (*RejectVersions, error) {
	notation, ok := buildutil.String(call, "module")
	if !ok {
		return nil, declError(file, call, missingAttr("module"))
	}
	module, err := coordinates.ParseModule(notation)
	if err != nil {
		return nil, declError(file, call, err)
	}
	versions, ok := buildutil.String(call, "versions")
	if !ok {
		return nil, declError(file, call, missingAttr("versions"))
	}
	if _, err := semver.NewConstraint(versions); err != nil {
		return nil, declError(file, call, fmt.Errorf("invalid version constraint %q: %w", versions, err))
	}
	reason, _ := buildutil.String(call, "reason")
	return &RejectVersions{Module: module, Versions: versions, Reason: reason, Line: buildutil.Line(call)}, nil
}

func parseRejectWhen(file string, call *build.CallExpr) (*RejectWhen, error) {
	expr, ok := buildutil.String(call, "expr")
	if !ok {
		return nil, declError(file, call, missingAttr("expr"))
	}
	if _, err := celrule.Compile(expr); err != nil {
		return nil, declError(file, call, err)
	}
	reason, _ := buildutil.String(call, "reason")
	return &RejectWhen{Expr: expr, Reason: reason, Line: buildutil.Line(call)}, nil
}

func declError(file string, call *build.CallExpr, err error) *ParseError {
	return &ParseError{
		File: file,
		Line: buildutil.Line(call),
		Call: buildutil.FuncName(call),
		Err:  err,
	}
}

func missingAttr(name string) error {
	return fmt.Errorf("missing required attribute %q", name)
}
