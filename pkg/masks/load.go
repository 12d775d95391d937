package masks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type masksFile struct {
	Masks []Mask `yaml:"masks"`
}

// Load reads user mask definitions from a YAML file. A missing file is
// not an error: the built-in masks still apply. Masks with bad patterns
// are kept in degraded substring form and the first compile error is
// returned alongside them.
func Load(filePath string) ([]Mask, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read masks file: %w", err)
	}
	var f masksFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse masks file %s: %w", filePath, err)
	}
	var firstErr error
	for i := range f.Masks {
		if err = f.Masks[i].Compile(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return f.Masks, firstErr
}

// All returns the built-in masks followed by user masks from filePath.
func All(filePath string) ([]Mask, error) {
	all := BuiltIn()
	user, err := Load(filePath)
	return append(all, user...), err
}
