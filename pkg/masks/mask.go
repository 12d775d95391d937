package masks

import (
	"fmt"

	"github.com/datatug/filtertug/pkg/filtering"
)

type PatternType string

const (
	Inclusive PatternType = "inclusive"
	Exclusive PatternType = "exclusive"
)

// Pattern is one rule of a mask. Mode is a filtering mode name ("glob",
// "substring", "regex"); empty means glob.
type Pattern struct {
	Type    PatternType `yaml:"type"`
	Pattern string      `yaml:"pattern"`
	Mode    string      `yaml:"mode,omitempty"`

	request filtering.Request
}

// compile builds the pattern's filter request once. Scope checking is
// disabled and hidden entries are allowed: those policies belong to the
// panel filter, not to masks.
func (p *Pattern) compile() error {
	mode, parseErr := filtering.ParseMode(p.Mode)
	p.request = filtering.NewRequest(p.Pattern, "",
		filtering.WithMode(mode),
		filtering.IncludeHidden(),
	)
	if parseErr != nil {
		return fmt.Errorf("pattern %q: %w", p.Pattern, parseErr)
	}
	return p.request.Err()
}

// Mask is a named set of patterns: exclusive patterns veto an entry,
// inclusive patterns grant it.
type Mask struct {
	Name     string    `yaml:"name"`
	Patterns []Pattern `yaml:"patterns"`
}

func (m *Mask) String() string {
	return fmt.Sprintf("Mask{Name: %q, Patterns: %d}", m.Name, len(m.Patterns))
}

// Matches reports whether the entry at path passes the mask. A mask with
// no patterns matches nothing.
func (m *Mask) Matches(path string, isDir bool) bool {
	var included bool
	for _, p := range m.Patterns {
		if !filtering.Matches(path, isDir, p.request) {
			continue
		}
		if p.Type == Exclusive {
			return false
		}
		included = true
	}
	return included
}

// Compile prepares all patterns of the mask. Patterns that fail to
// compile still work in degraded substring form; the first error is
// returned so the caller can report it.
func (m *Mask) Compile() error {
	var firstErr error
	for i := range m.Patterns {
		if err := m.Patterns[i].compile(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("mask %q: %w", m.Name, err)
		}
	}
	return firstErr
}
