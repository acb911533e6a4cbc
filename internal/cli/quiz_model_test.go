package cli

import (
	"testing"

	"github.com/alexanderramin/studyflow/internal/teatest"
	"github.com/alexanderramin/studyflow/internal/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizItems = []tutor.QuizItem{
	{Question: "What gas do plants absorb?", Options: []string{"Oxygen", "Carbon dioxide", "Nitrogen"}, CorrectIndex: 1, Rationale: "CO2 feeds the Calvin cycle."},
	{Question: "Where does it happen?", Options: []string{"Chloroplast", "Nucleus"}, CorrectIndex: 0, Rationale: "Chloroplasts hold chlorophyll."},
}

func newQuizDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newQuizModel("Photosynthesis", quizItems), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func quizState(t *testing.T, d *teatest.Driver) quizModel {
	t.Helper()
	m, ok := d.Model.(quizModel)
	require.True(t, ok)
	return m
}

func TestQuiz_AnswerAllQuestions(t *testing.T) {
	d := newQuizDriver(t)
	assert.Contains(t, d.View(), "question 1 of 2")
	assert.Contains(t, d.View(), "What gas do plants absorb?")

	d.PressDown()
	d.PressEnter()
	assert.Contains(t, d.View(), "Correct!")
	assert.Contains(t, d.View(), "CO2 feeds the Calvin cycle.")

	d.PressEnter()
	assert.Contains(t, d.View(), "question 2 of 2")

	d.PressDown()
	d.PressSpace()
	assert.Contains(t, d.View(), "Not quite.")

	d.PressKey('n')
	assert.True(t, d.Quitting)
	m := quizState(t, d)
	assert.True(t, m.finished)
	assert.Equal(t, "Score: 1/2\n", d.View())
}

func TestQuiz_CursorStaysInBounds(t *testing.T) {
	d := newQuizDriver(t)
	d.PressUp()
	assert.Equal(t, 0, quizState(t, d).cursor)

	for range 5 {
		d.PressKey('j')
	}
	assert.Equal(t, 2, quizState(t, d).cursor)
}

func TestQuiz_NextIgnoredBeforeAnswer(t *testing.T) {
	d := newQuizDriver(t)
	d.PressKey('n')
	m := quizState(t, d)
	assert.Equal(t, 0, m.index)
	assert.False(t, m.answered)
}

func TestQuiz_QuitEarly(t *testing.T) {
	d := newQuizDriver(t)
	d.PressEnter()
	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Score: 0/1")
	assert.Contains(t, d.View(), "stopped after 1 of 2 questions")
}
