package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a bulk task import, as
// exported by the hosted backend.
type ImportSchema struct {
	Tasks []TaskImport `json:"tasks"`
}

// TaskImport mirrors the backend's task record. Dates are YYYY-MM-DD.
type TaskImport struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Deadline       *string  `json:"deadline,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Status         string   `json:"status,omitempty"`
	Course         string   `json:"course,omitempty"`
	PlannedDate    *string  `json:"planned_date,omitempty"`
	SourceText     string   `json:"source_text,omitempty"`
}

// LoadImportSchema reads and decodes an import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
