package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/tutor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type quizKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Next   key.Binding
	Quit   key.Binding
}

func defaultQuizKeys() quizKeyMap {
	return quizKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer")),
		Next:   key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// quizModel walks through quiz items one at a time: pick an option, see the
// verdict and rationale, move on. A score summary closes the run.
type quizModel struct {
	topic string
	items []tutor.QuizItem
	keys  quizKeyMap
	help  help.Model

	index    int
	cursor   int
	answered bool
	chosen   int
	correct  int
	finished bool
	quit     bool
}

func newQuizModel(topic string, items []tutor.QuizItem) quizModel {
	return quizModel{topic: topic, items: items, keys: defaultQuizKeys(), help: help.New()}
}

func (m quizModel) Init() tea.Cmd { return nil }

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quit = true
			return m, tea.Quit
		}
		if m.finished {
			return m, nil
		}
		if m.answered {
			if key.Matches(msg, m.keys.Next) {
				return m.advance()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.current().Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Choose):
			m.answered = true
			m.chosen = m.cursor
			if m.chosen == m.current().CorrectIndex {
				m.correct++
			}
		}
	}
	return m, nil
}

func (m quizModel) advance() (tea.Model, tea.Cmd) {
	m.index++
	m.cursor = 0
	m.answered = false
	if m.index >= len(m.items) {
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m quizModel) current() tutor.QuizItem {
	return m.items[m.index]
}

func (m quizModel) View() string {
	if m.finished || m.quit {
		return m.summary()
	}

	q := m.current()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", formatter.StyleHeader.Render(m.topic),
		formatter.Dim(fmt.Sprintf("question %d of %d", m.index+1, len(m.items))))
	b.WriteString(formatter.Bold(q.Question) + "\n\n")

	for i, opt := range q.Options {
		cursor := "  "
		if i == m.cursor && !m.answered {
			cursor = formatter.StyleHeader.Render("> ")
		}
		line := opt
		if m.answered {
			switch {
			case i == q.CorrectIndex:
				line = formatter.StyleGreen.Render("✔ " + opt)
			case i == m.chosen:
				line = formatter.StyleRed.Render("✘ " + opt)
			default:
				line = formatter.Dim("  " + opt)
			}
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, line)
	}

	if m.answered {
		verdict := formatter.StyleRed.Render("Not quite.")
		if m.chosen == q.CorrectIndex {
			verdict = formatter.StyleGreen.Render("Correct!")
		}
		fmt.Fprintf(&b, "\n%s %s\n", verdict, formatter.Dim(q.Rationale))
		b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.Next, m.keys.Quit}) + "\n")
	} else {
		b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Quit}) + "\n")
	}
	return b.String()
}

func (m quizModel) answeredCount() int {
	n := m.index
	if m.answered && !m.finished {
		n++
	}
	return n
}

func (m quizModel) summary() string {
	done := m.answeredCount()
	text := fmt.Sprintf("Score: %d/%d", m.correct, done)
	if done < len(m.items) {
		text += formatter.Dim(fmt.Sprintf(" · stopped after %d of %d questions", done, len(m.items)))
	}
	return text + "\n"
}
