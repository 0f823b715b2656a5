package phonetics

// =============================================================================
// Pronunciation Types
// =============================================================================

// Phoneme is a single unit of pronunciation encoded as an uppercase token,
// e.g. "DH" or "AE1". Vowel phonemes carry a trailing stress digit (0-2).
type Phoneme string

// Sequence is one word's pronunciation, in pronunciation order.
type Sequence []Phoneme

// Equal reports whether two sequences hold the same phonemes in the same
// order. Two empty sequences compare equal.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Dict maps a normalized word (uppercase, edge punctuation stripped) to its
// pronunciation. Built by a reader; read-only for the lifetime of a
// validation run.
type Dict map[string]Sequence

// Lookup returns the pronunciation for an already-normalized word.
func (d Dict) Lookup(word string) (Sequence, bool) {
	seq, ok := d[word]
	return seq, ok
}
