// Package poetry defines the poetry-form data model and the structural
// checks that validate a poem against a form.
//
// This package contains:
//   - Form / FormSet: per-line syllable requirements and rhyme-scheme labels
//   - GroupByLabel: rhyme-label grouping of line indices
//   - CheckSyllableCounts / CheckRhymeScheme: the two structural checks
//   - Validator: orchestration producing an ordered diagnostic Report
//
// Checks are pure functions over (poem, form, dictionary); they never
// mutate their inputs, so concurrent validation runs against a shared
// dictionary are safe.
package poetry
