package masks

func createBuiltInMasks() []Mask {
	return []Mask{
		{Name: "Coding", Patterns: []Pattern{
			{Type: Inclusive, Pattern: "*.{go,cpp,cs,js,ts,py}"},
			{Type: Exclusive, Pattern: `_test\.go$`, Mode: "regex"},
		}},
		{Name: "Data", Patterns: []Pattern{
			{Type: Inclusive, Pattern: "*.{csv,json,xml,yaml,yml}"},
		}},
		{Name: "Docs", Patterns: []Pattern{
			{Type: Inclusive, Pattern: "*.{md,txt,rst}"},
		}},
	}
}

// BuiltIn returns the compiled built-in masks.
func BuiltIn() []Mask {
	all := createBuiltInMasks()
	for i := range all {
		// Built-in patterns are static and known to compile.
		_ = all[i].Compile()
	}
	return all
}
