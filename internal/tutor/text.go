package tutor

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords        = 8
	topicVerbatimWords = 8
	topicClippedWords  = 6
	fallbackTopic      = "General Study"
)

var (
	clauseSplit   = regexp.MustCompile(`[.!?]`)
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true,
	"you": true, "all": true, "any": true, "can": true, "had": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true, "have": true,
	"his": true, "how": true, "its": true, "may": true, "new": true, "now": true,
	"see": true, "way": true, "who": true, "did": true, "does": true, "get": true,
	"use": true, "with": true, "this": true, "that": true, "from": true, "they": true,
	"will": true, "what": true, "when": true, "where": true, "which": true, "why": true,
	"your": true, "about": true, "into": true, "than": true, "then": true, "them": true,
	"there": true, "these": true, "those": true, "their": true, "would": true, "could": true,
	"should": true, "been": true, "were": true, "also": true, "just": true, "like": true,
	"more": true, "most": true, "some": true, "such": true, "only": true, "over": true,
	"very": true, "each": true, "both": true, "between": true, "because": true, "while": true,
	"explain": true, "please": true, "help": true, "understand": true, "tell": true,
	"want": true, "need": true, "know": true, "learn": true, "study": true, "topic": true,
	"give": true, "make": true, "show": true, "describe": true, "work": true, "works": true,
}

// normalize lowercases s, drops apostrophes, turns every other
// non-alphanumeric rune into a space and collapses whitespace.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// extractTopic title-cases the first clause of the first line.
func extractTopic(prompt string) string {
	line := strings.TrimSpace(prompt)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	clause := strings.TrimSpace(clauseSplit.Split(line, 2)[0])
	words := strings.Fields(clause)
	if len(words) == 0 {
		return fallbackTopic
	}
	if len(words) > topicVerbatimWords {
		words = words[:topicClippedWords]
	}
	return titleCase(words)
}

func titleCase(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		out[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(out, " ")
}

// extractKeywords ranks content tokens by frequency, ties broken by first
// appearance.
func extractKeywords(prompt string) []string {
	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(normalize(prompt)) {
		if utf8.RuneCountInString(tok) < 3 || stopWords[tok] {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

// extractSentences returns up to limit sentences longer than ten characters,
// each ending with a period.
func extractSentences(prompt string, limit int) []string {
	var out []string
	for _, s := range sentenceSplit.Split(prompt, -1) {
		s = strings.Join(strings.Fields(s), " ")
		if len(s) <= 10 {
			continue
		}
		out = append(out, s+".")
		if len(out) == limit {
			break
		}
	}
	return out
}

// dedupe drops case-insensitive repeats, keeping the first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := strings.ToLower(strings.TrimSpace(it))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// capAt copies at most n items so callers never share template storage.
func capAt[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append([]T(nil), items...)
}
