package filtering

import "fmt"

// Target restricts which item kinds pass regardless of pattern.
type Target int

const (
	TargetAll Target = iota
	TargetFiles
	TargetDirs
)

func (t Target) String() string {
	switch t {
	case TargetAll:
		return "all"
	case TargetFiles:
		return "files"
	case TargetDirs:
		return "dirs"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

func ParseTarget(s string) (Target, error) {
	switch s {
	case "all", "":
		return TargetAll, nil
	case "files":
		return TargetFiles, nil
	case "dirs":
		return TargetDirs, nil
	default:
		return TargetAll, fmt.Errorf("unknown filter target: %q", s)
	}
}
