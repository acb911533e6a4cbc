package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}
	for i, t := range schema.Tasks {
		errs = append(errs, validateTask(i, &t)...)
	}
	return errs
}

func validateTask(i int, t *TaskImport) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
	}
	if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
	}
	if t.Deadline != nil && *t.Deadline != "" && !isDate(*t.Deadline) {
		errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, *t.Deadline))
	}
	if t.PlannedDate != nil && *t.PlannedDate != "" && !isDate(*t.PlannedDate) {
		errs = append(errs, fmt.Errorf("%s.planned_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *t.PlannedDate))
	}

	return errs
}
