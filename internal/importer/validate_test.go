package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Tasks: []TaskImport{{Title: "Read chapter 1"}},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Tasks: []TaskImport{{
			Title:          "Lab report",
			Description:    "Titration lab",
			Deadline:       ptrStr("2025-04-01"),
			Priority:       "high",
			EstimatedHours: ptrFloat(3),
			Status:         "in_progress",
			Course:         "CHEM 101",
			PlannedDate:    ptrStr("2025-03-28"),
		}},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_NoTasks(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one task")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Tasks: []TaskImport{
			{Title: "ok"},
			{
				Title:          " ",
				Priority:       "urgent",
				Status:         "archived",
				EstimatedHours: ptrFloat(-2),
				Deadline:       ptrStr("04/01/2025"),
				PlannedDate:    ptrStr("tomorrow"),
			},
		},
	}

	errs := ValidateImportSchema(schema)

	assert.Len(t, errs, 6)
	for _, err := range errs {
		assert.Contains(t, err.Error(), "tasks[1]")
	}
}

func TestValidateImportSchema_EmptyDateIsAbsent(t *testing.T) {
	schema := &ImportSchema{Tasks: []TaskImport{{Title: "x", Deadline: ptrStr("")}}}
	assert.Empty(t, ValidateImportSchema(schema))
}
