package coordinates

import (
	"fmt"
	"strings"
)

// Human-readable descriptions of the accepted notation forms, embedded in
// UnsupportedNotationError messages.
const (
	moduleNotationForm        = `"group:name", for example "org.gradle:gradle-core"`
	moduleVersionNotationForm = `"group:name:version", for example "org.gradle:gradle-core:1.0"`
)

// UnsupportedNotationError reports notation text that cannot be converted to
// a module coordinate. Notation holds the offending text exactly as supplied
// by the caller.
type UnsupportedNotationError struct {
	Notation string // the input text that failed to convert
	Expected string // description of the accepted form
	Reason   string // what specifically was wrong with the input
}

func (e *UnsupportedNotationError) Error() string {
	return fmt.Sprintf("unsupported module notation %q: %s (expected %s)", e.Notation, e.Reason, e.Expected)
}

// ParseModule converts "group:name" notation text into a ModuleIdentifier.
//
// Exactly one ":" separator is accepted. Three-part "group:name:version"
// text fails rather than having its version silently discarded; callers
// holding versioned text must use ParseModuleVersion instead.
func ParseModule(notation string) (ModuleIdentifier, error) {
	parts := strings.Split(notation, ":")
	if len(parts) != 2 {
		return ModuleIdentifier{}, &UnsupportedNotationError{
			Notation: notation,
			Expected: moduleNotationForm,
			Reason:   fmt.Sprintf("found %d colon-separated parts, want 2", len(parts)),
		}
	}
	id, err := NewModuleIdentifier(parts[0], parts[1])
	if err != nil {
		return ModuleIdentifier{}, &UnsupportedNotationError{
			Notation: notation,
			Expected: moduleNotationForm,
			Reason:   err.Error(),
		}
	}
	return id, nil
}

// ParseModuleVersion converts "group:name:version" notation text into a
// ModuleVersionIdentifier.
func ParseModuleVersion(notation string) (ModuleVersionIdentifier, error) {
	parts := strings.Split(notation, ":")
	if len(parts) != 3 {
		return ModuleVersionIdentifier{}, &UnsupportedNotationError{
			Notation: notation,
			Expected: moduleVersionNotationForm,
			Reason:   fmt.Sprintf("found %d colon-separated parts, want 3", len(parts)),
		}
	}
	id, err := NewModuleVersionIdentifier(parts[0], parts[1], parts[2])
	if err != nil {
		return ModuleVersionIdentifier{}, &UnsupportedNotationError{
			Notation: notation,
			Expected: moduleVersionNotationForm,
			Reason:   err.Error(),
		}
	}
	return id, nil
}
