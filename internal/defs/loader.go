// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTuning reads a tuning file. Keys missing from the file keep their
// default values, so a file may override a single number.
func LoadTuning(path string) (Tuning, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t, err := ParseTuning(file)
	if err != nil {
		return Tuning{}, err
	}

	log.Printf("Loaded tuning from %s", path)
	return t, nil
}

// ParseTuning decodes and validates tuning JSON on top of DefaultTuning.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
