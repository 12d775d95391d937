package filtering

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

type Option func(*Request)

func WithMode(m Mode) Option {
	return func(r *Request) { r.mode = m }
}

func WithScope(s Scope) Option {
	return func(r *Request) { r.scope = s }
}

func WithTarget(t Target) Option {
	return func(r *Request) { r.target = t }
}

func CaseSensitive() Option {
	return func(r *Request) { r.caseSensitive = true }
}

func IncludeHidden() Option {
	return func(r *Request) { r.includeHidden = true }
}

func Recursive() Option {
	return func(r *Request) { r.scope = ScopeRecursive }
}

// Request is an immutable description of a single filter: what to match,
// where, and against which item kinds. Changing criteria means constructing
// a new Request, so a value can be shared across goroutines freely.
type Request struct {
	pattern       string
	mode          Mode
	scope         Scope
	target        Target
	referencePath string
	caseSensitive bool
	includeHidden bool

	effectiveMode Mode
	needle        string
	glob          glob.Glob
	re            *regexp.Regexp
	compileErr    error
}

// NewRequest builds a Request and compiles its pattern once, so Matches
// does no per-call pattern parsing. referencePath is the directory the
// scope is evaluated against; an empty referencePath disables scope
// checking.
func NewRequest(pattern, referencePath string, o ...Option) Request {
	r := Request{
		pattern:       pattern,
		referencePath: cleanDirPath(referencePath),
	}
	for _, opt := range o {
		opt(&r)
	}
	r.compile()
	return r
}

func (r *Request) compile() {
	r.effectiveMode = r.mode
	if r.IsEmpty() {
		return
	}
	if r.effectiveMode == ModeGlob && !strings.ContainsAny(r.pattern, "*?[") {
		// A bare word like "readme" should substring-match,
		// not require exact glob equality.
		r.effectiveMode = ModeSubstring
	}
	switch r.effectiveMode {
	case ModeGlob:
		p := r.pattern
		if !r.caseSensitive {
			p = fold(p)
		}
		if g, err := glob.Compile(p); err != nil {
			r.compileErr = err
			r.effectiveMode = ModeSubstring
		} else {
			r.glob = g
		}
	case ModeRegex:
		p := r.pattern
		if !r.caseSensitive {
			p = "(?i)" + p
		}
		if re, err := regexp.Compile(p); err != nil {
			r.compileErr = err
			r.effectiveMode = ModeSubstring
		} else {
			r.re = re
		}
	}
	if r.effectiveMode == ModeSubstring {
		if r.caseSensitive {
			r.needle = r.pattern
		} else {
			r.needle = fold(r.pattern)
		}
	}
}

// IsEmpty reports whether the request matches everything: a blank pattern
// is the explicit "no filter" fast path.
func (r Request) IsEmpty() bool {
	return strings.TrimSpace(r.pattern) == ""
}

// Err returns the pattern compile error, if any. A request with a bad
// regex or glob still works (it degrades to substring matching) but the
// caller may want to log the anomaly.
func (r Request) Err() error { return r.compileErr }

func (r Request) Pattern() string       { return r.pattern }
func (r Request) Mode() Mode            { return r.mode }
func (r Request) Scope() Scope          { return r.scope }
func (r Request) Target() Target        { return r.target }
func (r Request) ReferencePath() string { return r.referencePath }
func (r Request) CaseSensitive() bool   { return r.caseSensitive }
func (r Request) IncludeHidden() bool   { return r.includeHidden }

// EffectiveMode is the mode matching actually uses, after bare-word
// auto-detection and bad-pattern degradation.
func (r Request) EffectiveMode() Mode { return r.effectiveMode }

// fold case-folds s for case-insensitive comparison. A cases.Caser is
// stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
