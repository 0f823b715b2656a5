package phonetics

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPunctuation is the punctuation set stripped from word edges before
// dictionary lookup. Inner punctuation (mid-word apostrophes, hyphens) is
// kept, since CMU entries like "DON'T" depend on it.
const DefaultPunctuation = "!\"'`@$%^&_-+={}|\\/,;:.-?)([]<>*#\n\t\r"

// DefaultStressDigits are the trailing characters that mark a vowel phoneme.
const DefaultStressDigits = "012"

// ErrNoLines is returned by LinesRhyme when called with no line indices.
var ErrNoLines = errors.New("phonetics: no line indices to compare")

// Analyzer performs phonetic analysis against a pronunciation dictionary.
// The zero value is not usable; construct with NewAnalyzer. An Analyzer is
// stateless between calls and safe for concurrent use.
type Analyzer struct {
	// Punctuation holds the characters trimmed from both ends of a word
	// during normalization.
	Punctuation string
	// StressDigits holds the trailing characters that classify a phoneme
	// as a vowel.
	StressDigits string
}

// NewAnalyzer returns an Analyzer configured for the CMU Pronouncing
// Dictionary phone set.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Punctuation:  DefaultPunctuation,
		StressDigits: DefaultStressDigits,
	}
}

// Normalize upper-cases text and strips the configured punctuation set from
// the start and end. Inner punctuation is untouched, so the operation is
// idempotent. Empty input yields empty output.
func (a *Analyzer) Normalize(text string) string {
	return strings.Trim(strings.ToUpper(text), a.Punctuation)
}

// IsVowel reports whether p is a vowel phoneme, i.e. whether its last
// character is a stress digit. Callers pass non-empty uppercase tokens.
func (a *Analyzer) IsVowel(p Phoneme) bool {
	if len(p) == 0 {
		return false
	}
	return strings.ContainsRune(a.StressDigits, rune(p[len(p)-1]))
}

// SyllableCount returns the number of syllables in one pronunciation, which
// is its number of vowel phonemes.
func (a *Analyzer) SyllableCount(seq Sequence) int {
	count := 0
	for _, p := range seq {
		if a.IsVowel(p) {
			count++
		}
	}
	return count
}

// LineSyllables counts the syllables in a line of poem text. The line is
// split on whitespace; each word is normalized and looked up in dict. Words
// absent from the dictionary contribute zero syllables, so a line with
// unknown words is under-counted rather than rejected.
func (a *Analyzer) LineSyllables(line string, dict Dict) int {
	total := 0
	for _, field := range strings.Fields(line) {
		if seq, ok := dict.Lookup(a.Normalize(field)); ok {
			total += a.SyllableCount(seq)
		}
	}
	return total
}

// LastSyllable returns the rhyme kernel of a pronunciation: the suffix
// starting at the last vowel phoneme. A sequence with no vowel phoneme
// yields an empty kernel. The result aliases seq and must be treated as
// read-only.
func (a *Analyzer) LastSyllable(seq Sequence) Sequence {
	for i := len(seq) - 1; i >= 0; i-- {
		if a.IsVowel(seq[i]) {
			return seq[i:]
		}
	}
	return Sequence{}
}

// WordsRhyme reports whether two words rhyme: both are normalized and looked
// up, and their rhyme kernels compared. A word absent from the dictionary
// never rhymes. Two vowel-less pronunciations both produce empty kernels and
// therefore count as rhyming; see TestWordsRhymeBothNoVowels.
func (a *Analyzer) WordsRhyme(word1, word2 string, dict Dict) bool {
	seq1, ok := dict.Lookup(a.Normalize(word1))
	if !ok {
		return false
	}
	seq2, ok := dict.Lookup(a.Normalize(word2))
	if !ok {
		return false
	}
	return a.LastSyllable(seq1).Equal(a.LastSyllable(seq2))
}

// LinesRhyme reports whether the poem lines at the given indices all rhyme:
// the last whitespace-delimited word of each line is normalized and looked
// up, and every kernel compared to the first. Any unknown ending word makes
// the group fail. A single index is trivially true.
//
// An empty index list is a caller contract violation and returns ErrNoLines;
// an out-of-range index is likewise rejected rather than panicking.
func (a *Analyzer) LinesRhyme(poem []string, indices []int, dict Dict) (bool, error) {
	if len(indices) == 0 {
		return false, ErrNoLines
	}

	kernels := make([]Sequence, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(poem) {
			return false, fmt.Errorf("phonetics: line index %d out of range for %d-line poem", idx, len(poem))
		}
		fields := strings.Fields(poem[idx])
		if len(fields) == 0 {
			return false, nil
		}
		ending := a.Normalize(fields[len(fields)-1])
		seq, ok := dict.Lookup(ending)
		if !ok {
			return false, nil
		}
		kernels = append(kernels, a.LastSyllable(seq))
	}

	for _, k := range kernels[1:] {
		if !k.Equal(kernels[0]) {
			return false, nil
		}
	}
	return true, nil
}
