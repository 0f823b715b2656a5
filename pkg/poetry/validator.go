package poetry

import (
	"fmt"
	"strings"

	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
)

// Check rule identifiers, used in reports and severity configuration.
const (
	RuleSyllableCount = "SY01"
	RuleRhymeScheme   = "RH01"
)

// Diagnostic represents one validation finding.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Lines holds the offending line numbers (1-based).
	Lines []int `json:"lines"`
	// Text holds the offending lines verbatim, in poem order.
	Text []string `json:"text"`
}

// Report is the full result of validating one poem against one form.
// Diagnostics are ordered: syllable findings in poem order, then rhyme
// findings in label first-appearance order.
type Report struct {
	Form        string       `json:"form"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// OK reports whether the poem complied with the form.
func (r *Report) OK() bool {
	return len(r.Diagnostics) == 0
}

// Validator orchestrates the syllable and rhyme checks against a shared
// analyzer. Safe for concurrent use; it holds no per-poem state.
type Validator struct {
	analyzer *phonetics.Analyzer
}

// NewValidator returns a Validator using the given analyzer, or a CMU
// default analyzer if nil.
func NewValidator(a *phonetics.Analyzer) *Validator {
	if a == nil {
		a = phonetics.NewAnalyzer()
	}
	return &Validator{analyzer: a}
}

// Analyzer returns the validator's underlying phonetic analyzer.
func (v *Validator) Analyzer() *phonetics.Analyzer {
	return v.analyzer
}

// Check validates poem against form using dict and returns the complete
// report. The poem must have exactly the form's line count; a mismatch is a
// caller bug and is returned as ErrLengthMismatch rather than truncated.
func (v *Validator) Check(poem []string, form Form, dict phonetics.Dict) (*Report, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Form: form.Name}

	syllables, err := checkSyllables(v.analyzer, poem, form, dict)
	if err != nil {
		return nil, err
	}
	for _, s := range syllables {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			RuleID:   RuleSyllableCount,
			Severity: SeverityError,
			Message:  fmt.Sprintf("line %d has %d syllables, form %q requires %d", s.Index+1, s.Actual, form.Name, s.Required),
			Lines:    []int{s.Index + 1},
			Text:     []string{poem[s.Index]},
		})
	}

	rhymes, err := checkRhymes(v.analyzer, poem, form, dict)
	if err != nil {
		return nil, err
	}
	for _, r := range rhymes {
		lines := make([]int, len(r.Indices))
		text := make([]string, len(r.Indices))
		for j, idx := range r.Indices {
			lines[j] = idx + 1
			text[j] = poem[idx]
		}
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			RuleID:   RuleRhymeScheme,
			Severity: SeverityError,
			Message:  fmt.Sprintf("lines %s do not all rhyme (scheme label %q)", joinInts(lines), r.Label),
			Lines:    lines,
			Text:     text,
		})
	}

	return report, nil
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
