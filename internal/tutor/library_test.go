package tutor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customYAML = `
templates:
  - key: water cycle
    topic: The Water Cycle
    aliases: [evaporation, condensation]
    summary: Water moves between oceans, air and land.
    explanation: [Evaporation lifts water vapour into the air.]
    keyPoints: [Evaporation, Condensation, Precipitation]
    quiz:
      - question: What forms clouds?
        options: [Condensation, Erosion]
        correctIndex: 0
`

func TestBuiltinLibrary(t *testing.T) {
	lib := BuiltinLibrary()
	assert.Equal(t, []string{"photosynthesis", "mitosis", "newtons laws", "supply and demand", "derivatives"}, lib.Keys())
}

func TestLibraryMatch(t *testing.T) {
	lib := BuiltinLibrary()
	cases := []struct {
		prompt string
		want   string
	}{
		{"photosynthesis", "Photosynthesis"},
		{"How does PHOTOSYNTHESIS work?", "Photosynthesis"},
		{"calvin-cycle steps", "Photosynthesis"},
		{"photo", "Photosynthesis"},
		{"cell", "Mitosis"},
		{"Newton's second law", "Newton's Laws of Motion"},
		{"chain rule practice", "Derivatives"},
	}
	for _, tc := range cases {
		t.Run(tc.prompt, func(t *testing.T) {
			tmpl, ok := lib.Match(tc.prompt)
			require.True(t, ok)
			assert.Equal(t, tc.want, tmpl.Topic)
		})
	}

	for _, miss := range []string{"", "ab", "medieval castles"} {
		_, ok := lib.Match(miss)
		assert.False(t, ok, "prompt %q", miss)
	}
}

func TestLoadLibrary_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":        "templates: [",
		"missing topic": "templates:\n  - key: x\n    keyPoints: [a]\n",
		"no key points": "templates:\n  - key: x\n    topic: X\n",
		"bad index":     "templates:\n  - key: x\n    topic: X\n    keyPoints: [a]\n    quiz:\n      - question: q\n        options: [a, b]\n        correctIndex: 2\n",
		"duplicate":     "templates:\n  - {key: x, topic: X, keyPoints: [a]}\n  - {key: x, topic: Y, keyPoints: [b]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLibrary([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "water.yaml"), []byte(customYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	extra, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, extra.Len())

	lib := BuiltinLibrary().With(extra)
	assert.Equal(t, BuiltinLibrary().Len()+1, lib.Len())

	tmpl, ok := lib.Match("explain evaporation")
	require.True(t, ok)
	assert.Equal(t, "The Water Cycle", tmpl.Topic)

	tmpl, ok = lib.Match("photosynthesis and evaporation")
	require.True(t, ok)
	assert.Equal(t, "Photosynthesis", tmpl.Topic, "built-ins match first")
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	lib, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Zero(t, lib.Len())

	lib, err = LoadDir("")
	require.NoError(t, err)
	assert.Zero(t, lib.Len())
}

func TestLoadDir_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("templates:\n  - key: x\n"), 0o644))
	_, err := LoadDir(dir)
	assert.ErrorContains(t, err, "bad.yml")
}

func TestEngineUsesCustomTemplates(t *testing.T) {
	extra, err := LoadLibrary([]byte(customYAML))
	require.NoError(t, err)

	out, err := NewEngine(BuiltinLibrary().With(extra)).Generate(NewRequest("condensation"), testNow)
	require.NoError(t, err)
	assert.Equal(t, "The Water Cycle", out.Topic)
	assert.Equal(t, ConfidenceHigh, out.Confidence)
	assert.Len(t, out.Quiz, 1)
}
