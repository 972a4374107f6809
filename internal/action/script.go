package action

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseScript decodes a JSON action script: an ordered array of actions
// and/or groups.
func ParseScript(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid action script: %w", err)
	}
	return entries, nil
}

// LoadScript reads a script file. Files ending in .yaml or .yml are decoded
// as YAML; everything else is treated as JSON.
func LoadScript(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLScript(data)
	default:
		return ParseScript(data)
	}
}

// parseYAMLScript funnels YAML through the JSON decode path so both formats
// share one set of variant rules.
func parseYAMLScript(data []byte) ([]Entry, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid action script: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid action script: %w", err)
	}
	return ParseScript(jsonData)
}
