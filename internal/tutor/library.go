package tutor

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/builtin.yaml
var builtinYAML []byte

// Template is a pre-authored content bundle for a known topic.
type Template struct {
	Key         string      `yaml:"key"`
	Topic       string      `yaml:"topic"`
	Aliases     []string    `yaml:"aliases"`
	Summary     string      `yaml:"summary"`
	Explanation []string    `yaml:"explanation"`
	KeyPoints   []string    `yaml:"keyPoints"`
	Flashcards  []Flashcard `yaml:"flashcards"`
	Quiz        []QuizItem  `yaml:"quiz"`
}

// Validate checks that the template can be matched and rendered.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Key) == "" {
		return fmt.Errorf("template key is required")
	}
	if strings.TrimSpace(t.Topic) == "" {
		return fmt.Errorf("template %q: topic is required", t.Key)
	}
	if len(t.KeyPoints) == 0 {
		return fmt.Errorf("template %q: at least one key point is required", t.Key)
	}
	for i, q := range t.Quiz {
		if len(q.Options) == 0 {
			return fmt.Errorf("template %q: quiz[%d] has no options", t.Key, i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("template %q: quiz[%d] correctIndex %d out of range", t.Key, i, q.CorrectIndex)
		}
	}
	return nil
}

// needles returns the normalized strings a prompt is matched against.
func (t *Template) needles() []string {
	out := make([]string, 0, len(t.Aliases)+2)
	for _, s := range append([]string{t.Key, t.Topic}, t.Aliases...) {
		if n := normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

type libraryFile struct {
	Templates []Template `yaml:"templates"`
}

// Library is an ordered, read-only set of templates. It is safe for
// concurrent use once built.
type Library struct {
	templates []Template
	needles   [][]string
}

// LoadLibrary parses a YAML document with a top-level `templates` list.
func LoadLibrary(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing template library: %w", err)
	}
	lib := &Library{}
	if err := lib.add(f.Templates); err != nil {
		return nil, err
	}
	return lib, nil
}

// With returns a new library holding l's templates followed by extra.
// Earlier templates win matches.
func (l *Library) With(extra *Library) *Library {
	out := &Library{
		templates: make([]Template, 0, len(l.templates)+len(extra.templates)),
		needles:   make([][]string, 0, len(l.needles)+len(extra.needles)),
	}
	out.templates = append(append(out.templates, l.templates...), extra.templates...)
	out.needles = append(append(out.needles, l.needles...), extra.needles...)
	return out
}

func (l *Library) add(ts []Template) error {
	seen := make(map[string]bool, len(l.templates))
	for _, t := range l.templates {
		seen[t.Key] = true
	}
	for i := range ts {
		if err := ts[i].Validate(); err != nil {
			return err
		}
		if seen[ts[i].Key] {
			return fmt.Errorf("duplicate template key %q", ts[i].Key)
		}
		seen[ts[i].Key] = true
		l.templates = append(l.templates, ts[i])
		l.needles = append(l.needles, ts[i].needles())
	}
	return nil
}

// Len returns the number of templates.
func (l *Library) Len() int { return len(l.templates) }

// Keys returns template keys in match order.
func (l *Library) Keys() []string {
	keys := make([]string, len(l.templates))
	for i, t := range l.templates {
		keys[i] = t.Key
	}
	return keys
}

// Match returns the first template whose key, topic or alias contains the
// normalized prompt or is contained by it.
func (l *Library) Match(prompt string) (*Template, bool) {
	np := normalize(prompt)
	if np == "" {
		return nil, false
	}
	for i, needles := range l.needles {
		for _, n := range needles {
			if strings.Contains(np, n) || (len(np) >= minReverseMatchLen && strings.Contains(n, np)) {
				return &l.templates[i], true
			}
		}
	}
	return nil, false
}

// minReverseMatchLen keeps very short prompts like "a" from matching every
// template that happens to contain them.
const minReverseMatchLen = 4

// LoadDir reads every *.yaml and *.yml file in dir, in name order.
// A missing directory yields an empty library.
func LoadDir(dir string) (*Library, error) {
	lib := &Library{}
	if dir == "" {
		return lib, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return lib, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var f libraryFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if err := lib.add(f.Templates); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return lib, nil
}

var builtinLibrary = mustLoadBuiltin()

func mustLoadBuiltin() *Library {
	lib, err := LoadLibrary(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("tutor: embedded template library is invalid: %v", err))
	}
	return lib
}

// BuiltinLibrary returns the embedded template library.
func BuiltinLibrary() *Library { return builtinLibrary }
