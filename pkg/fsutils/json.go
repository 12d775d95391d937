package fsutils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSONFile decodes a JSON file into o. A missing file is not an error
// unless required is true.
func ReadJSONFile(filePath string, required bool, o any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return err
	}
	if err = json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return nil
}

// WriteJSONFile encodes o as indented JSON and writes it to filePath.
func WriteJSONFile(filePath string, o any) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
