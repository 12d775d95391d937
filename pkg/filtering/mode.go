package filtering

import "fmt"

// Mode governs how a request pattern is interpreted.
type Mode int

const (
	ModeGlob Mode = iota
	ModeSubstring
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeGlob:
		return "glob"
	case ModeSubstring:
		return "substring"
	case ModeRegex:
		return "regex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "glob", "":
		return ModeGlob, nil
	case "substring":
		return ModeSubstring, nil
	case "regex":
		return ModeRegex, nil
	default:
		return ModeGlob, fmt.Errorf("unknown filter mode: %q", s)
	}
}
