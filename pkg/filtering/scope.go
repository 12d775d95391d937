package filtering

import "fmt"

// Scope governs whether matching is restricted to direct children of the
// reference directory or to any descendant.
type Scope int

const (
	ScopeCurrentDir Scope = iota
	ScopeRecursive
)

func (s Scope) String() string {
	switch s {
	case ScopeCurrentDir:
		return "current-dir"
	case ScopeRecursive:
		return "recursive"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

func ParseScope(s string) (Scope, error) {
	switch s {
	case "current-dir", "":
		return ScopeCurrentDir, nil
	case "recursive":
		return ScopeRecursive, nil
	default:
		return ScopeCurrentDir, fmt.Errorf("unknown filter scope: %q", s)
	}
}
