package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON flow payload.
func DecodeJSON(data []byte) (*FlowPayload, error) {
	var payload FlowPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON flow payload: %w", err)
	}
	return &payload, nil
}

// DecodeYAML parses a YAML flow payload.
func DecodeYAML(data []byte) (*FlowPayload, error) {
	var payload FlowPayload
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode YAML flow payload: %w", err)
	}
	return &payload, nil
}

// LoadFile reads and decodes a flow payload from disk, selecting the decoder
// by file extension (.json, .yaml, .yml).
func LoadFile(path string) (*FlowPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported flow file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}
