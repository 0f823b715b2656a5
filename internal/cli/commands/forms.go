package commands

import (
	"fmt"
	"strings"

	"github.com/Krithik-Kesh/Poetry-Checker/internal/cli/output"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/poetry"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// FormsOptions holds options for the forms command.
type FormsOptions struct {
	Format string // Output format override
}

// formInfo is the JSON shape for one form.
type formInfo struct {
	Name      string   `json:"name"`
	Lines     int      `json:"lines"`
	Syllables []int    `json:"syllables"`
	Rhymes    []string `json:"rhymes"`
}

// NewFormsCommand creates the forms command.
func NewFormsCommand() *cobra.Command {
	opts := &FormsOptions{}
	cmd := &cobra.Command{
		Use:   "forms [name]",
		Short: "List known poetry forms",
		Long: `List the poetry forms defined in the configured forms file, or show
the full description of a single form.

A syllable count of 0 means the line's length is unconstrained; a rhyme
label of "*" means the line's rhyme is unconstrained.`,
		Example: `  # List all forms
  poetry-checker forms

  # Show one form
  poetry-checker forms Limerick

  # Output as JSON
  poetry-checker forms --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showForm(cmd, args[0], opts)
			}
			return listForms(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listForms(cmd *cobra.Command, opts *FormsOptions) error {
	r := newRenderer(cmd, opts.Format)

	forms, names, err := loadForms()
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]formInfo, 0, len(names))
		for _, name := range names {
			infos = append(infos, newFormInfo(forms[name]))
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Form", "Lines", "Syllables", "Scheme"})
	for _, name := range names {
		form := forms[name]
		t.AppendRow(table.Row{
			form.Name,
			form.Lines(),
			joinCounts(form.Syllables),
			strings.Join(form.Rhymes, " "),
		})
	}
	t.Render()
	return nil
}

func showForm(cmd *cobra.Command, name string, opts *FormsOptions) error {
	r := newRenderer(cmd, opts.Format)

	forms, _, err := loadForms()
	if err != nil {
		return err
	}
	form, ok := forms.Get(name)
	if !ok {
		return fmt.Errorf("unknown form %q", name)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(newFormInfo(form))
	}

	r.Header(form.Name)
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Syllables", "Rhyme"})
	for i := range form.Syllables {
		syllables := fmt.Sprintf("%d", form.Syllables[i])
		if form.Syllables[i] == poetry.UnconstrainedCount {
			syllables = "any"
		}
		t.AppendRow(table.Row{i + 1, syllables, form.Rhymes[i]})
	}
	t.Render()
	return nil
}

func newFormInfo(form poetry.Form) formInfo {
	return formInfo{
		Name:      form.Name,
		Lines:     form.Lines(),
		Syllables: form.Syllables,
		Rhymes:    form.Rhymes,
	}
}

func joinCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "-")
}
