package poetry

import (
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
)

// syllableViolation is an indexed syllable-count mismatch, kept internal so
// the public API can expose both plain line lists and rich diagnostics.
type syllableViolation struct {
	Index    int
	Required int
	Actual   int
}

// rhymeViolation is a rhyme-label group that failed to rhyme.
type rhymeViolation struct {
	Label   string
	Indices []int
}

func checkSyllables(a *phonetics.Analyzer, poem []string, form Form, dict phonetics.Dict) ([]syllableViolation, error) {
	if err := form.checkLines(poem); err != nil {
		return nil, err
	}

	var violations []syllableViolation
	for i, line := range poem {
		required := form.Syllables[i]
		if required == UnconstrainedCount {
			continue
		}
		if actual := a.LineSyllables(line, dict); actual != required {
			violations = append(violations, syllableViolation{Index: i, Required: required, Actual: actual})
		}
	}
	return violations, nil
}

func checkRhymes(a *phonetics.Analyzer, poem []string, form Form, dict phonetics.Dict) ([]rhymeViolation, error) {
	if err := form.checkLines(poem); err != nil {
		return nil, err
	}

	groups := GroupByLabel(form.Rhymes)
	var violations []rhymeViolation
	for _, label := range groups.Order {
		if label == UnconstrainedLabel {
			continue
		}
		indices := groups.Groups[label]
		if len(indices) < 2 {
			continue
		}
		ok, err := a.LinesRhyme(poem, indices, dict)
		if err != nil {
			return nil, err
		}
		if !ok {
			violations = append(violations, rhymeViolation{Label: label, Indices: indices})
		}
	}
	return violations, nil
}

// CheckSyllableCounts returns the poem lines whose syllable count differs
// from the form's requirement, in poem order. Lines with an unconstrained
// requirement (0) are never flagged. Words missing from the dictionary
// contribute zero syllables, so a line full of unknown words surfaces here
// as a count mismatch rather than an error.
func CheckSyllableCounts(a *phonetics.Analyzer, poem []string, form Form, dict phonetics.Dict) ([]string, error) {
	violations, err := checkSyllables(a, poem, form, dict)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, v := range violations {
		lines = append(lines, poem[v.Index])
	}
	return lines, nil
}

// CheckRhymeScheme returns, for every rhyme-label group that fails to rhyme,
// the group's lines in ascending line order. Groups appear in the order
// their labels first occur in the scheme, each failing group exactly once.
// Unconstrained lines and single-member groups are never reported.
func CheckRhymeScheme(a *phonetics.Analyzer, poem []string, form Form, dict phonetics.Dict) ([][]string, error) {
	violations, err := checkRhymes(a, poem, form, dict)
	if err != nil {
		return nil, err
	}
	var groups [][]string
	for _, v := range violations {
		lines := make([]string, len(v.Indices))
		for j, idx := range v.Indices {
			lines[j] = poem[idx]
		}
		groups = append(groups, lines)
	}
	return groups, nil
}
