package util

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadRawJSON loads a fixture file and checks that it holds valid JSON.
func ReadRawJSON(filePath string) (json.RawMessage, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("file %q does not contain valid JSON", filePath)
	}
	return json.RawMessage(data), nil
}

// ReadRawJSONMap loads a fixture holding a JSON object of raw values keyed by string.
func ReadRawJSONMap(filePath string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return m, nil
}
