package tutor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
)

const maxContextSignals = 4

// deadlineWeight scores how pressing a deadline is relative to today.
func deadlineWeight(deadline *time.Time, now time.Time) int {
	if deadline == nil {
		return 0
	}
	days := calendarDays(domain.StartOfDay(now), *deadline)
	switch {
	case days < 0:
		return 3
	case days == 0:
		return 4
	case days <= 2:
		return 3
	case days <= 5:
		return 2
	default:
		return 1
	}
}

// calendarDays counts whole days between the calendar dates of today and d,
// each read in its own location.
func calendarDays(today, d time.Time) int {
	ty, tm, td := today.Date()
	dy, dm, dd := d.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func topicWords(topic string) []string {
	var out []string
	for _, w := range strings.Fields(normalize(topic)) {
		if len(w) >= 3 && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}

func taskHaystack(t *domain.Task) string {
	return normalize(strings.Join([]string{t.Title, t.Description, t.Course, t.SourceText}, " "))
}

// scoreTask rates one task's relevance to the topic.
func scoreTask(t *domain.Task, topicTerms, keywords []string, now time.Time) int {
	hay := taskHaystack(t)
	score := 0
	for _, w := range topicTerms {
		if strings.Contains(hay, w) {
			score += 2
		}
	}
	for _, kw := range keywords {
		if strings.Contains(hay, kw) {
			score++
		}
	}
	if t.Priority == domain.PriorityHigh {
		score += 2
	}
	return score + deadlineWeight(t.Deadline, now)
}

// relatedTasks scores every open task and keeps positive scores, highest
// first. Equal scores keep input order.
func relatedTasks(tasks []*domain.Task, topic string, keywords []string, now time.Time) []RelatedTask {
	terms := topicWords(topic)
	var out []RelatedTask
	for _, t := range tasks {
		if t == nil || t.IsCompleted() {
			continue
		}
		if s := scoreTask(t, terms, keywords, now); s > 0 {
			out = append(out, RelatedTask{TaskID: t.ID, Title: t.Title, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func contextSignals(tasks []*domain.Task, related []RelatedTask) []string {
	var active, high int
	var nearest *domain.Task
	for _, t := range tasks {
		if t == nil || t.IsCompleted() {
			continue
		}
		active++
		if t.Priority == domain.PriorityHigh {
			high++
		}
		if t.Deadline != nil && (nearest == nil || t.Deadline.Before(*nearest.Deadline)) {
			nearest = t
		}
	}

	signals := []string{fmt.Sprintf("%d active %s in your planner", active, plural(active, "task", "tasks"))}
	if high > 0 {
		signals = append(signals, fmt.Sprintf("%d high-priority %s pending", high, plural(high, "task", "tasks")))
	}
	if nearest != nil {
		signals = append(signals, fmt.Sprintf("Nearest deadline: %s on %s", nearest.Title, nearest.Deadline.Format(domain.DateLayout)))
	}
	if len(related) > 0 {
		signals = append(signals, fmt.Sprintf("Most related task: %s", related[0].Title))
	}
	return capAt(dedupe(signals), maxContextSignals)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
