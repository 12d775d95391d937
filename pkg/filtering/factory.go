package filtering

// GlobFilter builds a request matching file names against a shell-style
// glob pattern (*, ?, [...]) within referencePath.
func GlobFilter(pattern, referencePath string, o ...Option) Request {
	return NewRequest(pattern, referencePath, o...)
}

// TextFilter builds a substring request for typed filter text, regardless
// of any metacharacters the text contains.
func TextFilter(text, referencePath string, o ...Option) Request {
	o = append(o, WithMode(ModeSubstring))
	return NewRequest(text, referencePath, o...)
}

// FilesOnlyFilter builds a request that only ever shows files, scoped to
// the direct children of referencePath.
func FilesOnlyFilter(pattern, referencePath string) Request {
	return NewRequest(pattern, referencePath,
		WithTarget(TargetFiles),
		WithScope(ScopeCurrentDir),
	)
}
