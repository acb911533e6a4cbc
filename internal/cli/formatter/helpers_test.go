package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var testNow = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"midnight today", time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeadlineStyled(t *testing.T) {
	assert.Equal(t, "--", stripANSI(DeadlineStyled(nil, testNow)))
	assert.Equal(t, "Mar 13 (Tomorrow)", stripANSI(DeadlineStyled(date(2025, 3, 13), testNow)))
	assert.Equal(t, "Mar 10 (2d ago)", stripANSI(DeadlineStyled(date(2025, 3, 10), testNow)))
}

func TestFormatHours(t *testing.T) {
	cases := map[float64]string{0: "0h", -1: "0h", 1: "1h", 2.5: "2.5h", 1.25: "1.3h", 3.6000000001: "3.6h"}
	for in, want := range cases {
		assert.Equal(t, want, FormatHours(in), "input %v", in)
	}
}

func TestPills(t *testing.T) {
	assert.Equal(t, "● HIGH", stripANSI(PriorityPill(domain.PriorityHigh)))
	assert.Equal(t, "● --", stripANSI(PriorityPill("")))
	assert.Equal(t, "✔ Done", stripANSI(StatusPill(domain.TaskCompleted)))
	assert.Equal(t, "● LOW", stripANSI(LevelIndicator(domain.LevelLow)))
	assert.Contains(t, stripANSI(ModeBadge(domain.ModeLight)), "LIGHT MODE")
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdef12", stripANSI(TruncID("abcdef1234567890")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID", "TITLE"}, [][]string{{"1", "Essay"}, {"22", "Lab"}}))
	assert.Equal(t, "ID  TITLE\n──  ─────\n1   Essay\n22  Lab\n", out)
	assert.Empty(t, RenderTable(nil, nil))
}
