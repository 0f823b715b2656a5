// Package phonetics implements the phonetic analysis engine behind the
// poetry checker.
//
// This package contains:
//   - Phoneme/Sequence/Dict types for CMU-style pronunciations
//   - Analyzer: normalization, vowel classification, syllable counting,
//     rhyme-kernel extraction and rhyme matching
//
// Everything here is a pure function over explicit inputs. The Analyzer
// carries the punctuation and stress-digit sets as configuration so that
// dictionaries from different sources can be analyzed independently and
// concurrently; nothing in the package mutates a Dict.
package phonetics
