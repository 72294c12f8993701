package resume

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a resume file. The format is chosen by extension: .json is
// decoded as JSON, everything else as YAML.
func Load(path string) (*Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML resume document and validates it.
func ParseYAML(data []byte) (*Resume, error) {
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse resume yaml: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseJSON decodes a JSON resume document and validates it.
func ParseJSON(data []byte) (*Resume, error) {
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse resume json: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
