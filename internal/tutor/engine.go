// Package tutor generates structured study content for a topic prompt,
// optionally cross-referenced against the student's planner tasks.
package tutor

import (
	"fmt"
	"strings"
	"time"
)

// modeLimits caps each content list per mode.
type modeLimits struct {
	explanation, keyPoints, flashcards, quiz int
}

var limitsByMode = map[Mode]modeLimits{
	ModeExplain:    {explanation: 5, keyPoints: 6, flashcards: 5, quiz: 3},
	ModeFlashcards: {explanation: 3, keyPoints: 7, flashcards: 8, quiz: 2},
	ModeQuiz:       {explanation: 4, keyPoints: 6, flashcards: 4, quiz: 6},
	ModeExamPrep:   {explanation: 6, keyPoints: 8, flashcards: 6, quiz: 5},
}

const (
	highConfidenceWords = 18
	maxFollowUps        = 6
)

// Engine generates tutor output from a template library. The zero value is
// not usable; construct with NewEngine.
type Engine struct {
	lib *Library
}

// NewEngine returns an engine over lib, or over the built-in library when
// lib is nil.
func NewEngine(lib *Library) *Engine {
	if lib == nil {
		lib = BuiltinLibrary()
	}
	return &Engine{lib: lib}
}

// Generate builds study content for req. It only fails on a blank prompt.
func (e *Engine) Generate(req Request, now time.Time) (*Output, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	mode := ParseMode(string(req.Mode))

	keywords := extractKeywords(prompt)
	tmpl, matched := e.lib.Match(prompt)
	var c content
	if matched {
		c = fromTemplate(tmpl)
	} else {
		c = synthesize(prompt, extractTopic(prompt), keywords)
	}

	var related []RelatedTask
	var signals []string
	if req.IncludePlannerContext && len(req.Tasks) > 0 {
		related = relatedTasks(req.Tasks, c.topic, keywords, now)
		signals = contextSignals(req.Tasks, related)
	}

	lim := limitsByMode[mode]
	out := &Output{
		Topic:          c.topic,
		Mode:           mode,
		Summary:        c.summary,
		Explanation:    capAt(c.explanation, lim.explanation),
		KeyPoints:      capAt(c.keyPoints, lim.keyPoints),
		Flashcards:     capAt(c.flashcards, lim.flashcards),
		Quiz:           capAt(c.quiz, lim.quiz),
		ContextSignals: signals,
		RelatedTasks:   related,
		Confidence:     ConfidenceMedium,
		GeneratedAt:    now,
	}
	if len(related) > 0 {
		point := fmt.Sprintf("Apply %s to your task: %s", c.topic, related[0].Title)
		out.KeyPoints = append([]string{point}, out.KeyPoints...)
	}
	out.StudyPlan = studyPlan(c.topic, mode, related)
	out.FollowUpPrompts = followUps(c.topic, mode, related)
	if matched || len(strings.Fields(prompt)) > highConfidenceWords {
		out.Confidence = ConfidenceHigh
	}
	return out, nil
}

func studyPlan(topic string, mode Mode, related []RelatedTask) []StudyStep {
	steps := []StudyStep{
		{Title: "Concept Warm-up", DurationMins: 12, Detail: fmt.Sprintf("Skim the summary of %s and write down what you already know.", topic)},
		{Title: "Deep Review", DurationMins: 25, Detail: "Work through the explanation and rewrite each key point in your own words."},
		{Title: "Active Recall", DurationMins: 18, Detail: "Go through the flashcards without looking at the answers first."},
		{Title: "Check Understanding", DurationMins: 15, Detail: "Answer the quiz and revisit any point you got wrong."},
	}
	if mode == ModeExamPrep {
		sim := StudyStep{Title: "Exam Simulation", DurationMins: 30, Detail: fmt.Sprintf("Answer timed questions on %s under exam conditions.", topic)}
		steps = append(steps[:3], append([]StudyStep{sim}, steps[3:]...)...)
	}
	if len(related) > 0 {
		steps = append(steps, StudyStep{
			Title:        "Task Transfer",
			DurationMins: 20,
			Detail:       fmt.Sprintf("Use what you reviewed to make progress on %q.", related[0].Title),
		})
	}
	return steps
}

func followUps(topic string, mode Mode, related []RelatedTask) []string {
	prompts := []string{
		fmt.Sprintf("Explain %s as if teaching a beginner", topic),
		fmt.Sprintf("What are common mistakes students make with %s?", topic),
		fmt.Sprintf("Give me a real-world example of %s", topic),
		fmt.Sprintf("How does %s connect to related topics?", topic),
	}
	if mode != ModeFlashcards {
		prompts = append(prompts, fmt.Sprintf("Make flashcards for %s", topic))
	}
	if mode != ModeQuiz {
		prompts = append(prompts, fmt.Sprintf("Quiz me on %s", topic))
	}
	if len(related) > 0 {
		prompts = append(prompts, fmt.Sprintf("How does %s help with %s?", topic, related[0].Title))
	}
	return capAt(dedupe(prompts), maxFollowUps)
}
