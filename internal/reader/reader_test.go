package reader

import (
	"strings"
	"testing"

	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPronunciation(t *testing.T) {
	input := `;;; CMU Pronouncing Dictionary (excerpt)
;;; comment line
CAMPBELL  K AE1 M B AH0 L
GRIES  G R AY1 Z
SMITH  S M IH1 TH
`
	dict, err := ReadPronunciation(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, phonetics.Dict{
		"CAMPBELL": {"K", "AE1", "M", "B", "AH0", "L"},
		"GRIES":    {"G", "R", "AY1", "Z"},
		"SMITH":    {"S", "M", "IH1", "TH"},
	}, dict)
}

func TestReadPronunciationLastEntryWins(t *testing.T) {
	input := "WORD  AH0\nWORD  EH1 N\n"
	dict, err := ReadPronunciation(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, phonetics.Sequence{"EH1", "N"}, dict["WORD"])
}

func TestReadPronunciationMalformed(t *testing.T) {
	_, err := ReadPronunciation(strings.NewReader("LONELY\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phonemes")
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadForms(t *testing.T) {
	input := `Haiku
5 *
7 *
5 *

Limerick
8 A
8 A
5 B
5 B
8 A
`
	forms, names, err := ReadForms(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Haiku", "Limerick"}, names)
	require.Len(t, forms, 2)

	haiku, ok := forms.Get("Haiku")
	require.True(t, ok)
	assert.Equal(t, []int{5, 7, 5}, haiku.Syllables)
	assert.Equal(t, []string{"*", "*", "*"}, haiku.Rhymes)

	limerick, ok := forms.Get("Limerick")
	require.True(t, ok)
	assert.Equal(t, []int{8, 8, 5, 5, 8}, limerick.Syllables)
	assert.Equal(t, []string{"A", "A", "B", "B", "A"}, limerick.Rhymes)
}

func TestReadFormsNoTrailingBlankLine(t *testing.T) {
	forms, names, err := ReadForms(strings.NewReader("Couplet\n0 A\n0 A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Couplet"}, names)
	c, ok := forms.Get("Couplet")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "A"}, c.Rhymes)
}

func TestReadFormsMalformed(t *testing.T) {
	_, _, err := ReadForms(strings.NewReader("Broken\n5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = ReadForms(strings.NewReader("Broken\nfive *\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad syllable count")
}

func TestLoadFiles(t *testing.T) {
	dict, err := LoadPronunciationFile("testdata/dictionary_small.txt")
	require.NoError(t, err)
	assert.Len(t, dict, 13)

	forms, names, err := LoadFormsFile("testdata/forms_small.txt")
	require.NoError(t, err)
	assert.Contains(t, names, "Haiku")
	_, ok := forms.Get("Haiku")
	assert.True(t, ok)

	poem, err := LoadPoemFile("testdata/haiku.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"The first line leads off,",
		"With a gap before the next.",
		"Then the poem ends.",
	}, poem)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadPronunciationFile("testdata/nope.txt")
	assert.Error(t, err)
	_, _, err = LoadFormsFile("testdata/nope.txt")
	assert.Error(t, err)
	_, err = LoadPoemFile("testdata/nope.txt")
	assert.Error(t, err)
}
