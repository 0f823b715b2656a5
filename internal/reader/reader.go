// Package reader loads the two external data sources the checker consumes:
// CMU-format pronunciation dictionaries and poetry-form description files.
// It owns all file I/O; the pkg packages only see the parsed structures.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/poetry"
)

// commentPrefix marks comment lines in the CMU Pronouncing Dictionary.
const commentPrefix = ";;;"

// ReadPronunciation parses a CMU-format dictionary: one word followed by its
// whitespace-separated phonemes per line, ";;;" comments skipped. A repeated
// word keeps its last entry.
func ReadPronunciation(r io.Reader) (phonetics.Dict, error) {
	dict := make(phonetics.Dict)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("dictionary line %d: entry %q has no phonemes", lineNo, parts[0])
		}
		seq := make(phonetics.Sequence, len(parts)-1)
		for i, p := range parts[1:] {
			seq[i] = phonetics.Phoneme(p)
		}
		dict[parts[0]] = seq
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return dict, nil
}

// ReadForms parses a poetry-forms file: blank-line separated blocks, each
// starting with the form name followed by "<syllable-count> <rhyme-label>"
// pairs, one per line. It returns the forms plus their names in file order
// (map iteration would lose it).
func ReadForms(r io.Reader) (poetry.FormSet, []string, error) {
	forms := make(poetry.FormSet)
	var names []string

	var current poetry.Form
	flush := func() error {
		if current.Name == "" {
			return nil
		}
		if err := current.Validate(); err != nil {
			return err
		}
		if _, dup := forms[current.Name]; !dup {
			names = append(names, current.Name)
		}
		forms[current.Name] = current
		current = poetry.Form{}
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, nil, err
			}
		case current.Name == "":
			current.Name = line
		default:
			parts := strings.Fields(line)
			if len(parts) != 2 {
				return nil, nil, fmt.Errorf("forms line %d: want \"<syllables> <label>\", got %q", lineNo, line)
			}
			count, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, nil, fmt.Errorf("forms line %d: bad syllable count %q: %w", lineNo, parts[0], err)
			}
			current.Syllables = append(current.Syllables, count)
			current.Rhymes = append(current.Rhymes, parts[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading forms: %w", err)
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	return forms, names, nil
}

// LoadPronunciationFile reads a dictionary from disk.
func LoadPronunciationFile(path string) (phonetics.Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	dict, err := ReadPronunciation(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dict, nil
}

// LoadFormsFile reads a poetry-forms file from disk.
func LoadFormsFile(path string) (poetry.FormSet, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening forms file: %w", err)
	}
	defer f.Close()

	forms, names, err := ReadForms(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return forms, names, nil
}

// LoadPoemFile reads a poem as its non-blank lines, in order. Surrounding
// blank lines and line endings are dropped; interior text is kept verbatim.
func LoadPoemFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening poem: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
