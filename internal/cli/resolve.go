package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/service"
)

// resolveTaskID expands an ID prefix as printed by `task list`.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	id, err := app.Tasks.ResolveID(ctx, input)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("task not found: %q", input)
	case errors.Is(err, service.ErrAmbiguousID):
		return "", fmt.Errorf("task ID prefix %q is ambiguous, use more characters", input)
	case err != nil:
		return "", err
	}
	return id, nil
}

// parseDay accepts "today", "tomorrow" or YYYY-MM-DD in the local zone.
func parseDay(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return domain.StartOfDay(now), nil
	case "tomorrow":
		return domain.StartOfDay(now).AddDate(0, 0, 1), nil
	}
	d, err := domain.ParseDate(s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w; today and tomorrow also work", err)
	}
	return d, nil
}
