// Package coordinates provides strongly-typed, validated identifiers for
// components addressed by Maven-style "group:name" coordinates.
//
// All types in this package are immutable and validate their values at
// construction time. Zero values are generally invalid - use the constructor
// functions (NewModuleIdentifier, ParseModule, etc.) to create valid instances.
//
// # Types
//
// The main types are:
//   - [ModuleIdentifier]: A validated group/name pair (e.g., "org.gradle:gradle-core")
//   - [ModuleVersionIdentifier]: A module plus one concrete version (e.g., "org.gradle:gradle-core:1.0")
//
// # Notation
//
// [ParseModule] accepts the two-part "group:name" text form and
// [ParseModuleVersion] the three-part "group:name:version" form. Anything
// else fails with an [UnsupportedNotationError] carrying the offending text.
//
// # Validation Patterns
//
// Group and name components must match: [A-Za-z0-9_]([A-Za-z0-9._-]*[A-Za-z0-9_])?
// Versions must match: [A-Za-z0-9._+-]+ (concrete versions, never ranges)
package coordinates

import (
	"fmt"
	"regexp"
)

// ModuleIdentifier identifies a component by group and name, without regard
// to version. Both components are validated at construction, so two
// identifiers are equal exactly when their parts are - values compare
// directly with ==.
type ModuleIdentifier struct {
	group string
	name  string
}

var coordinatePartRegex = regexp.MustCompile(`^[A-Za-z0-9_]([A-Za-z0-9._-]*[A-Za-z0-9_])?$`)

// NewModuleIdentifier creates a validated ModuleIdentifier from group and name.
func NewModuleIdentifier(group, name string) (ModuleIdentifier, error) {
	if group == "" {
		return ModuleIdentifier{}, fmt.Errorf("module group cannot be empty")
	}
	if !coordinatePartRegex.MatchString(group) {
		return ModuleIdentifier{}, fmt.Errorf("invalid module group %q: must match pattern [A-Za-z0-9_]([A-Za-z0-9._-]*[A-Za-z0-9_])?", group)
	}
	if name == "" {
		return ModuleIdentifier{}, fmt.Errorf("module name cannot be empty")
	}
	if !coordinatePartRegex.MatchString(name) {
		return ModuleIdentifier{}, fmt.Errorf("invalid module name %q: must match pattern [A-Za-z0-9_]([A-Za-z0-9._-]*[A-Za-z0-9_])?", name)
	}
	return ModuleIdentifier{group: group, name: name}, nil
}

// MustModuleIdentifier creates a ModuleIdentifier or panics. Use only for constants/tests.
func MustModuleIdentifier(group, name string) ModuleIdentifier {
	id, err := NewModuleIdentifier(group, name)
	if err != nil {
		panic(err)
	}
	return id
}

// Group returns the group component.
func (id ModuleIdentifier) Group() string {
	return id.group
}

// Name returns the name component.
func (id ModuleIdentifier) Name() string {
	return id.name
}

// String returns the "group:name" notation form.
func (id ModuleIdentifier) String() string {
	return id.group + ":" + id.name
}

// IsEmpty returns true if this is a zero-value ModuleIdentifier.
func (id ModuleIdentifier) IsEmpty() bool {
	return id.group == "" && id.name == ""
}

// ModuleVersionIdentifier identifies one concrete version of a module.
// The version is an opaque validated string: this package never orders or
// compares versions, it only carries them.
type ModuleVersionIdentifier struct {
	module  ModuleIdentifier
	version string
}

var concreteVersionRegex = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

// NewModuleVersionIdentifier creates a validated ModuleVersionIdentifier.
func NewModuleVersionIdentifier(group, name, version string) (ModuleVersionIdentifier, error) {
	module, err := NewModuleIdentifier(group, name)
	if err != nil {
		return ModuleVersionIdentifier{}, err
	}
	if version == "" {
		return ModuleVersionIdentifier{}, fmt.Errorf("version cannot be empty")
	}
	if !concreteVersionRegex.MatchString(version) {
		return ModuleVersionIdentifier{}, fmt.Errorf("invalid version %q: must match pattern [A-Za-z0-9._+-]+", version)
	}
	return ModuleVersionIdentifier{module: module, version: version}, nil
}

// MustModuleVersionIdentifier creates a ModuleVersionIdentifier or panics.
// Use only for constants/tests.
func MustModuleVersionIdentifier(group, name, version string) ModuleVersionIdentifier {
	id, err := NewModuleVersionIdentifier(group, name, version)
	if err != nil {
		panic(err)
	}
	return id
}

// Module returns the versionless module component.
func (id ModuleVersionIdentifier) Module() ModuleIdentifier {
	return id.module
}

// Group returns the group component.
func (id ModuleVersionIdentifier) Group() string {
	return id.module.group
}

// Name returns the name component.
func (id ModuleVersionIdentifier) Name() string {
	return id.module.name
}

// Version returns the concrete version string.
func (id ModuleVersionIdentifier) Version() string {
	return id.version
}

// String returns the "group:name:version" notation form.
func (id ModuleVersionIdentifier) String() string {
	return id.module.String() + ":" + id.version
}

// IsEmpty returns true if this is a zero-value ModuleVersionIdentifier.
func (id ModuleVersionIdentifier) IsEmpty() bool {
	return id.module.IsEmpty() && id.version == ""
}
