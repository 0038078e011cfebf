// Package versionspec builds component selection rule bodies from semantic
// version constraints.
//
// Constraints use github.com/Masterminds/semver/v3 syntax, for example
// ">= 1.2, < 2.0", "~1.2.3" or "^2.0.0-rc1". Candidate versions that do not
// parse as semantic versions never satisfy a constraint, so rules built here
// leave such candidates untouched rather than rejecting them.
package versionspec

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	gocompsel "github.com/albertocavalcante/go-compsel"
)

// RejectMatching returns a typed rule body rejecting every candidate whose
// version satisfies the constraint. If reason is empty, a reason naming the
// version and constraint is generated per candidate.
func RejectMatching(constraint, reason string) (gocompsel.ActionFunc, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parse version constraint %q: %w", constraint, err)
	}
	return func(selection *gocompsel.ComponentSelection) {
		version := selection.Candidate().Version()
		if !Matches(c, version) {
			return
		}
		if reason == "" {
			selection.Reject(fmt.Sprintf("version %s matches rejection constraint %q", version, constraint))
			return
		}
		selection.Reject(reason)
	}, nil
}

// RejectOutside returns a typed rule body rejecting every candidate whose
// version parses but does not satisfy the constraint. Unparseable versions
// are left untouched. If reason is empty, a reason naming the version and
// constraint is generated per candidate.
func RejectOutside(constraint, reason string) (gocompsel.ActionFunc, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parse version constraint %q: %w", constraint, err)
	}
	return func(selection *gocompsel.ComponentSelection) {
		version := selection.Candidate().Version()
		v, err := semver.NewVersion(version)
		if err != nil {
			return
		}
		if c.Check(v) {
			return
		}
		if reason == "" {
			selection.Reject(fmt.Sprintf("version %s does not satisfy constraint %q", version, constraint))
			return
		}
		selection.Reject(reason)
	}, nil
}

// Matches reports whether version is a semantic version satisfying c.
// Versions that do not parse never match.
func Matches(c *semver.Constraints, version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}
