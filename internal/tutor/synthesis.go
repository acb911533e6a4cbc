package tutor

import (
	"fmt"
	"strings"
)

const (
	maxExplanation   = 7
	maxKeyPoints     = 10
	promptSentences  = 3
	keywordPoints    = 5
	sentencePoints   = 3
	summaryKeywords  = 3
	quizOptionsCount = 4
)

var explanationScaffold = []string{
	"Start by defining the core terms in your own words before going deeper.",
	"Connect each idea to a cause, a mechanism and an outcome so it is easier to recall.",
	"Work through one concrete example and check every step against the definitions.",
	"Finish by summarizing the topic from memory and noting anything you could not explain.",
}

var keyPointScaffold = []string{
	"Define the key terms precisely",
	"Identify how the main ideas connect",
	"Apply the concept to a worked example",
	"Recognize common mistakes and misconceptions",
}

var quizDistractors = []string{
	"An unrelated detail that does not describe %s",
	"A common misconception about %s",
	"A partially correct statement that misses the main idea of %s",
}

// content is the mode-independent material produced either from a template
// or by generic synthesis.
type content struct {
	topic       string
	summary     string
	explanation []string
	keyPoints   []string
	flashcards  []Flashcard
	quiz        []QuizItem
}

func fromTemplate(t *Template) content {
	return content{
		topic:       t.Topic,
		summary:     strings.TrimSpace(t.Summary),
		explanation: t.Explanation,
		keyPoints:   t.KeyPoints,
		flashcards:  t.Flashcards,
		quiz:        t.Quiz,
	}
}

func synthesize(prompt, topic string, keywords []string) content {
	c := content{topic: topic}

	top := capAt(keywords, summaryKeywords)
	if len(top) > 0 {
		c.summary = fmt.Sprintf("%s centers on %s. Build a clear definition first, then connect the ideas through examples and practice questions.",
			topic, joinList(top))
	} else {
		c.summary = fmt.Sprintf("%s is best learned by defining the core idea, working through an example and testing yourself on it.", topic)
	}

	sentences := extractSentences(prompt, promptSentences)
	var explanation []string
	if len(top) > 0 {
		explanation = append(explanation, fmt.Sprintf("The main ideas to focus on are %s.", joinList(top)))
	}
	explanation = append(explanation, sentences...)
	explanation = append(explanation, explanationScaffold...)
	c.explanation = capAt(dedupe(explanation), maxExplanation)

	points := append([]string(nil), keyPointScaffold...)
	for _, kw := range capAt(keywords, keywordPoints) {
		points = append(points, fmt.Sprintf("Clarify what %s means in %s", kw, topic))
	}
	for _, s := range capAt(sentences, sentencePoints) {
		points = append(points, strings.TrimSuffix(s, "."))
	}
	c.keyPoints = capAt(dedupe(points), maxKeyPoints)

	c.flashcards = make([]Flashcard, len(c.keyPoints))
	c.quiz = make([]QuizItem, len(c.keyPoints))
	for i, p := range c.keyPoints {
		c.flashcards[i] = Flashcard{
			Front: fmt.Sprintf("Explain this idea in %s: %s", topic, p),
			Back:  fmt.Sprintf("%s. Keep your answer concise, then add one concrete example.", p),
		}
		c.quiz[i] = quizItem(i, topic, p)
	}
	return c
}

// quizItem places the key point at index i%4 among the distractors.
func quizItem(i int, topic, point string) QuizItem {
	correct := i % quizOptionsCount
	options := make([]string, 0, quizOptionsCount)
	for _, d := range quizDistractors {
		options = append(options, fmt.Sprintf(d, topic))
	}
	options = append(options[:correct], append([]string{point}, options[correct:]...)...)
	return QuizItem{
		Question:     fmt.Sprintf("Which statement best reflects a key idea of %s?", topic),
		Options:      options,
		CorrectIndex: correct,
		Rationale:    fmt.Sprintf("%q is one of the key points for %s.", point, topic),
	}
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
