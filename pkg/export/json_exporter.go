package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders values into pretty-printed JSON bytes matching the
// stored record shapes verbatim.
type JSONExporter struct{}

// NewJSONExporter builds a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Render marshals the value with two-space indentation.
func (e *JSONExporter) Render(value interface{}) ([]byte, error) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return payload, nil
}
