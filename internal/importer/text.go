package importer

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// ParsedTask is a draft extracted from pasted assignment text. It becomes a
// domain.Task once the caller persists it.
type ParsedTask struct {
	Title          string          `json:"title"`
	Deadline       *time.Time      `json:"deadline"`
	Priority       domain.Priority `json:"priority"`
	EstimatedHours float64         `json:"estimated_hours"`
	Course         *string         `json:"course"`
	SourceText     string          `json:"source_text"`
}

const minLineLen = 3

var (
	highPriorityPattern = regexp.MustCompile(`(?i)\b(exam|final|midterm|important|urgent|critical)\b`)
	lowPriorityPattern  = regexp.MustCompile(`(?i)\b(optional|extra credit|bonus|review)\b`)

	listMarkerPattern    = regexp.MustCompile(`^[\d.\-*•>]+\s*`)
	trailingPunctPattern = regexp.MustCompile(`[\s,;:\-]+$`)
)

// hourRule maps a keyword category to an effort estimate. Rules are checked
// in order and the first match wins.
type hourRule struct {
	pattern *regexp.Regexp
	hours   float64
}

var hourRules = []hourRule{
	{regexp.MustCompile(`(?i)\b(essay|paper|report|project)`), 4},
	{regexp.MustCompile(`(?i)\b(reading|read|review)`), 1},
	{regexp.MustCompile(`(?i)\b(problem set|problems|exercises|worksheet)`), 2},
	{regexp.MustCompile(`(?i)\b(quiz|test|exam)`), 3},
	{regexp.MustCompile(`(?i)\b(presentation|slides)`), 2.5},
}

// ParseAssignmentText turns pasted assignment text into draft tasks, one per
// usable line. now anchors deadlines that omit the year. It never fails:
// blank input yields an empty slice, and input where no line survives
// cleaning degrades to one draft per non-blank line.
func ParseAssignmentText(text string, now time.Time) []ParsedTask {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	tasks := []ParsedTask{}
	for _, line := range lines {
		if utf8.RuneCountInString(line) < minLineLen {
			continue
		}
		if t, ok := parseLine(line, now); ok {
			tasks = append(tasks, t)
		}
	}

	if len(tasks) > 0 || len(lines) == 0 {
		return tasks
	}

	for _, line := range lines {
		title := strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, ""))
		if title == "" {
			title = line
		}
		tasks = append(tasks, ParsedTask{
			Title:          title,
			Priority:       domain.PriorityMedium,
			EstimatedHours: domain.DefaultEstimatedHours,
			SourceText:     line,
		})
	}
	return tasks
}

func parseLine(line string, now time.Time) (ParsedTask, bool) {
	title := line
	var deadline *time.Time
	if loc := deadlinePattern.FindStringSubmatchIndex(line); loc != nil {
		deadline = parseDeadline(line[loc[4]:loc[5]], now)
		title = line[:loc[0]] + " " + line[loc[1]:]
	}

	title = strings.TrimSpace(title)
	title = listMarkerPattern.ReplaceAllString(title, "")
	title = trailingPunctPattern.ReplaceAllString(title, "")
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return ParsedTask{}, false
	}

	return ParsedTask{
		Title:          title,
		Deadline:       deadline,
		Priority:       classifyPriority(line),
		EstimatedHours: estimateHours(line),
		SourceText:     line,
	}, true
}

// classifyPriority checks high-urgency keywords before low ones, so a line
// such as "exam review" is high.
func classifyPriority(line string) domain.Priority {
	switch {
	case highPriorityPattern.MatchString(line):
		return domain.PriorityHigh
	case lowPriorityPattern.MatchString(line):
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func estimateHours(line string) float64 {
	for _, r := range hourRules {
		if r.pattern.MatchString(line) {
			return r.hours
		}
	}
	return domain.DefaultEstimatedHours
}
