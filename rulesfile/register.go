package rulesfile

import (
	"fmt"

	gocompsel "github.com/albertocavalcante/go-compsel"
	"github.com/albertocavalcante/go-compsel/celrule"
	"github.com/albertocavalcante/go-compsel/versionspec"
)

// Register adds one selection rule per declaration to the registry, in file
// order. RejectModules declarations add one rule per listed module.
//
// Declarations were validated at parse time, so registration of a parsed
// Document does not normally fail.
func (d *Document) Register(rules *gocompsel.SelectionRules) error {
	for _, decl := range d.Declarations {
		if err := registerDeclaration(rules, decl); err != nil {
			return err
		}
	}
	return nil
}

func registerDeclaration(rules *gocompsel.SelectionRules, decl Declaration) error {
	switch t := decl.(type) {
	case *RejectModule:
		return rules.Module(t.Module.String(), rejectAction(t.Reason,
			fmt.Sprintf("module %s is rejected", t.Module)))

	case *RejectModules:
		for _, module := range t.Modules {
			err := rules.Module(module.String(), rejectAction(t.Reason,
				fmt.Sprintf("module %s is rejected", module)))
			if err != nil {
				return err
			}
		}
		return nil

	case *RejectVersions:
		body, err := versionspec.RejectMatching(t.Versions, t.Reason)
		if err != nil {
			return err
		}
		return rules.Module(t.Module.String(), body)

	case *RejectWhen:
		body, err := celrule.RejectMatching(t.Expr, t.Reason)
		if err != nil {
			return err
		}
		return rules.All(body)

	default:
		return fmt.Errorf("unknown declaration type %T", decl)
	}
}

// rejectAction builds a rule body that always rejects, using fallback when
// reason is empty.
func rejectAction(reason, fallback string) gocompsel.ActionFunc {
	if reason == "" {
		reason = fallback
	}
	return func(selection *gocompsel.ComponentSelection) {
		selection.Reject(reason)
	}
}
