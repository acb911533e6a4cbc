package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/tutor"
)

// FormatTutor renders tutor output. Quiz answers are shown unless the quiz is
// going to be taken interactively.
func FormatTutor(out *tutor.Output, showAnswers bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n", StyleHeader.Render(out.Topic),
		StylePurple.Render(strings.ToUpper(string(out.Mode))), confidence(out.Confidence))
	b.WriteString(StyleFg.Render(out.Summary) + "\n")

	section(&b, "Explanation", func() {
		for _, line := range out.Explanation {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	})
	section(&b, "Key points", func() {
		for _, p := range out.KeyPoints {
			fmt.Fprintf(&b, "  %s %s\n", StyleGreen.Render("•"), p)
		}
	})
	section(&b, "Flashcards", func() {
		for i, fc := range out.Flashcards {
			fmt.Fprintf(&b, "  %s %s\n", Bold(fmt.Sprintf("%d.", i+1)), fc.Front)
			fmt.Fprintf(&b, "     %s\n", Dim(fc.Back))
		}
	})
	section(&b, "Quiz", func() {
		for i, q := range out.Quiz {
			fmt.Fprintf(&b, "  %s %s\n", Bold(fmt.Sprintf("Q%d.", i+1)), q.Question)
			for j, opt := range q.Options {
				marker := Dim(fmt.Sprintf("%c)", 'a'+j))
				if showAnswers && j == q.CorrectIndex {
					marker = StyleGreen.Render(fmt.Sprintf("%c)", 'a'+j))
					opt = StyleGreen.Render(opt)
				}
				fmt.Fprintf(&b, "     %s %s\n", marker, opt)
			}
		}
	})
	section(&b, "Study plan", func() {
		for _, s := range out.StudyPlan {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleBlue.Render(fmt.Sprintf("%3dm", s.DurationMins)), Bold(s.Title), Dim(s.Detail))
		}
	})
	if len(out.ContextSignals) > 0 {
		section(&b, "From your planner", func() {
			for _, s := range out.ContextSignals {
				fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("›"), s)
			}
		})
	}
	section(&b, "Try next", func() {
		for _, p := range out.FollowUpPrompts {
			fmt.Fprintf(&b, "  %s\n", Dim(p))
		}
	})
	return b.String()
}

func section(b *strings.Builder, title string, body func()) {
	b.WriteString("\n" + Header(title) + "\n")
	body()
}

func confidence(c tutor.Confidence) string {
	if c == tutor.ConfidenceHigh {
		return StyleGreen.Render("high confidence")
	}
	return StyleYellow.Render("medium confidence")
}
