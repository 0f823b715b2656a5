package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Krithik-Kesh/Poetry-Checker/internal/cli/output"
	"github.com/Krithik-Kesh/Poetry-Checker/internal/reader"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/poetry"
	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Form   string // Form name to validate against
	Format string // Output format override: text, json
	Watch  bool   // Re-run on poem file changes
}

// checkResult holds the validation outcome for a single poem file.
type checkResult struct {
	Path   string         `json:"path"`
	Report *poetry.Report `json:"report"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <poem-file> [more poem files...]",
		Short: "Validate poems against a poetry form",
		Long: `Validate one or more poem files against a named poetry form.

Each poem is checked line by line for the form's syllable counts, and each
rhyme-label group is checked for matching rhymes using the pronunciation
dictionary. Every violating line and group is reported; the command exits
non-zero when any violation is found.`,
		Example: `  # Check a haiku
  poetry-checker check haiku.txt --form Haiku

  # Check several limericks at once
  poetry-checker check one.txt two.txt --form Limerick

  # Re-check whenever the file changes
  poetry-checker check draft.txt --form Haiku --watch

  # Machine-readable report
  poetry-checker check haiku.txt --form Haiku --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Form, "form", "", "Poetry form name (required)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run checks when poem files change")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	r := newRenderer(cmd, opts.Format)

	forms, _, err := loadForms()
	if err != nil {
		return err
	}
	form, ok := forms.Get(opts.Form)
	if !ok {
		return fmt.Errorf("unknown form %q (run \"poetry-checker forms\" to list forms)", opts.Form)
	}
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	if opts.Watch {
		return watchAndCheck(cmd, r, paths, form, dict)
	}

	results, err := checkPoems(cmd.Context(), paths, form, dict)
	if err != nil {
		return err
	}
	if renderCheckResults(r, results) {
		return fmt.Errorf("form violations found")
	}
	return nil
}

// checkPoems validates every poem file against form. Poems are independent,
// so they are checked concurrently; results keep argument order.
func checkPoems(ctx context.Context, paths []string, form poetry.Form, dict phonetics.Dict) ([]checkResult, error) {
	v := poetry.NewValidator(nil)
	results := make([]checkResult, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			poem, err := reader.LoadPoemFile(path)
			if err != nil {
				return err
			}
			report, err := v.Check(poem, form, dict)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = checkResult{Path: path, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// renderCheckResults writes all reports and returns true if any poem had
// violations.
func renderCheckResults(r *output.Renderer, results []checkResult) bool {
	hasIssues := false
	for _, res := range results {
		if !res.Report.OK() {
			hasIssues = true
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(results)
		return hasIssues
	}

	for _, res := range results {
		if res.Report.OK() {
			r.Success(fmt.Sprintf("%s complies with form %q", res.Path, res.Report.Form))
			continue
		}
		r.Header(fmt.Sprintf("%s: %d violation(s) of form %q", res.Path, len(res.Report.Diagnostics), res.Report.Form))
		renderDiagnosticsTable(r, res.Report.Diagnostics)
	}
	return hasIssues
}

func renderDiagnosticsTable(r *output.Renderer, diags []poetry.Diagnostic) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Severity", "Lines", "Detail"})
	for _, d := range diags {
		t.AppendRow(table.Row{d.RuleID, d.Severity.String(), formatLines(d.Lines), d.Message})
	}
	t.Render()
}

func formatLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}

// watchAndCheck re-runs the check whenever a watched poem file changes.
// It blocks until the command context is cancelled.
func watchAndCheck(cmd *cobra.Command, r *output.Renderer, paths []string, form poetry.Form, dict phonetics.Dict) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories: editors often replace files on save, which
	// drops a watch set on the file itself.
	watched := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	run := func() {
		results, err := checkPoems(cmd.Context(), paths, form, dict)
		if err != nil {
			r.Errorf("check failed: %v", err)
			return
		}
		renderCheckResults(r, results)
	}
	run()

	targets := make(map[string]bool, len(paths))
	for _, p := range paths {
		targets[filepath.Clean(p)] = true
	}

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch error: %v", err)
		}
	}
}
