package filtering

import (
	"path"
	"strings"
)

// Matches reports whether the entry at path should be visible under r.
// isDir is supplied by the caller, so Matches does no I/O and is safe to
// call concurrently. It never fails: anomalous input degrades to the most
// permissive reasonable answer rather than hiding entries behind an error.
//
// Checks are ordered cheapest and most discriminating first: empty
// request, scope, target kind, hidden policy, then the pattern itself
// against the file name only.
func Matches(p string, isDir bool, r Request) bool {
	if p == "" {
		return false
	}
	if r.IsEmpty() {
		return true
	}
	if r.referencePath != "" {
		switch r.scope {
		case ScopeRecursive:
			if !withinDir(p, r.referencePath) {
				return false
			}
		default:
			if parentDir(p) != r.referencePath {
				return false
			}
		}
	}
	switch r.target {
	case TargetFiles:
		if isDir {
			return false
		}
	case TargetDirs:
		if !isDir {
			return false
		}
	}
	name := entryName(p)
	if !r.includeHidden && isHiddenName(name) {
		return false
	}
	return r.matchName(name)
}

func (r Request) matchName(name string) bool {
	switch r.effectiveMode {
	case ModeGlob:
		if r.glob == nil {
			return true
		}
		if r.caseSensitive {
			return r.glob.Match(name)
		}
		return r.glob.Match(fold(name))
	case ModeRegex:
		if r.re == nil {
			return true
		}
		return r.re.MatchString(name)
	default:
		haystack := name
		if !r.caseSensitive {
			haystack = fold(name)
		}
		return strings.Contains(haystack, r.needle)
	}
}

// cleanDirPath trims a trailing slash, keeping root as "/".
func cleanDirPath(p string) string {
	if p == "" || p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// parentDir returns the directory containing p, without a trailing
// slash. Root has no parent.
func parentDir(p string) string {
	p = cleanDirPath(p)
	if p == "/" {
		return ""
	}
	parent, _ := path.Split(p)
	return cleanDirPath(parent)
}

// entryName returns the last path segment of p.
func entryName(p string) string {
	return path.Base(cleanDirPath(p))
}

// withinDir reports whether p lies strictly below dir, respecting path
// segment boundaries: "/foo/bar/x" is within "/foo/bar" but not within
// "/foo/ba".
func withinDir(p, dir string) bool {
	p = cleanDirPath(p)
	if p == dir {
		return false
	}
	if dir == "/" {
		return strings.HasPrefix(p, "/")
	}
	return strings.HasPrefix(p, dir+"/")
}

// isHiddenName reports whether name is a dot-file. The special entries
// "." and ".." are not considered hidden.
func isHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
