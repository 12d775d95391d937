package state

import (
	"github.com/datatug/filtertug/pkg/filtering"
)

// StoredFilter is the serializable form of a filtering.Request, used for
// the "recent filters" list. The filtering core deliberately owns no wire
// format; this is the one place requests are mapped to plain data.
type StoredFilter struct {
	Pattern       string `json:"pattern"`
	Mode          string `json:"mode,omitempty"`
	Scope         string `json:"scope,omitempty"`
	Target        string `json:"target,omitempty"`
	ReferencePath string `json:"reference_path,omitempty"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
	IncludeHidden bool   `json:"include_hidden,omitempty"`
}

func FromRequest(r filtering.Request) StoredFilter {
	return StoredFilter{
		Pattern:       r.Pattern(),
		Mode:          r.Mode().String(),
		Scope:         r.Scope().String(),
		Target:        r.Target().String(),
		ReferencePath: r.ReferencePath(),
		CaseSensitive: r.CaseSensitive(),
		IncludeHidden: r.IncludeHidden(),
	}
}

// ToRequest rebuilds a request. Unknown enum names fall back to the
// defaults rather than failing: a stale state file must not break the
// explorer.
func (s StoredFilter) ToRequest() filtering.Request {
	mode, _ := filtering.ParseMode(s.Mode)
	scope, _ := filtering.ParseScope(s.Scope)
	target, _ := filtering.ParseTarget(s.Target)

	o := []filtering.Option{
		filtering.WithMode(mode),
		filtering.WithScope(scope),
		filtering.WithTarget(target),
	}
	if s.CaseSensitive {
		o = append(o, filtering.CaseSensitive())
	}
	if s.IncludeHidden {
		o = append(o, filtering.IncludeHidden())
	}
	return filtering.NewRequest(s.Pattern, s.ReferencePath, o...)
}
