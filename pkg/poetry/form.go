package poetry

import (
	"errors"
	"fmt"
)

// UnconstrainedLabel marks a line whose rhyme is not checked. A syllable
// requirement of UnconstrainedCount likewise exempts a line from counting.
const (
	UnconstrainedLabel = "*"
	UnconstrainedCount = 0
)

// ErrLengthMismatch is returned when a poem and a form description disagree
// on the number of lines.
var ErrLengthMismatch = errors.New("poetry: poem and form description have different line counts")

// Form describes a named poetry form: one syllable requirement and one
// rhyme label per line. Lines sharing a label (other than "*") must
// mutually rhyme. Built once by a reader and read-only afterwards.
type Form struct {
	Name      string
	Syllables []int
	Rhymes    []string
}

// Lines returns the number of lines the form prescribes.
func (f Form) Lines() int {
	return len(f.Syllables)
}

// Validate checks the form's internal invariants: the syllable and rhyme
// sequences must be non-empty, equal in length, and syllable requirements
// non-negative.
func (f Form) Validate() error {
	if len(f.Syllables) == 0 {
		return fmt.Errorf("poetry: form %q has no lines", f.Name)
	}
	if len(f.Syllables) != len(f.Rhymes) {
		return fmt.Errorf("poetry: form %q has %d syllable counts but %d rhyme labels",
			f.Name, len(f.Syllables), len(f.Rhymes))
	}
	for i, n := range f.Syllables {
		if n < 0 {
			return fmt.Errorf("poetry: form %q line %d has negative syllable count %d", f.Name, i+1, n)
		}
	}
	return nil
}

// checkLines verifies a poem has exactly the number of lines the form
// prescribes.
func (f Form) checkLines(poem []string) error {
	if len(poem) != f.Lines() {
		return fmt.Errorf("%w: poem has %d lines, form %q prescribes %d",
			ErrLengthMismatch, len(poem), f.Name, f.Lines())
	}
	return nil
}

// FormSet maps form name to description, as parsed from a forms file.
type FormSet map[string]Form

// Get returns the named form.
func (s FormSet) Get(name string) (Form, bool) {
	f, ok := s[name]
	return f, ok
}
