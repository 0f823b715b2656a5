// Package commands implements the poetry-checker subcommands.
package commands

import (
	"fmt"

	"github.com/Krithik-Kesh/Poetry-Checker/internal/cli/output"
	"github.com/Krithik-Kesh/Poetry-Checker/internal/config"
	"github.com/Krithik-Kesh/Poetry-Checker/internal/reader"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/phonetics"
	"github.com/Krithik-Kesh/Poetry-Checker/pkg/poetry"
	"github.com/spf13/cobra"
)

// currentConfig is set by the root command's PersistentPreRunE before any
// subcommand runs.
var currentConfig *config.Config

// SetConfig stores the resolved configuration for subcommands.
func SetConfig(cfg *config.Config) {
	currentConfig = cfg
}

// getConfig returns the resolved configuration.
func getConfig() *config.Config {
	if currentConfig == nil {
		return &config.Config{
			Dictionary: config.DefaultDictionary,
			Forms:      config.DefaultForms,
			Output:     config.DefaultOutput,
		}
	}
	return currentConfig
}

// newRenderer builds a renderer for cmd, honoring a per-command format
// override before the configured output mode.
func newRenderer(cmd *cobra.Command, formatOverride string) *output.Renderer {
	mode := output.Mode(getConfig().Output)
	if formatOverride != "" {
		mode = output.Mode(formatOverride)
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
}

// loadForms loads the configured poetry forms file.
func loadForms() (poetry.FormSet, []string, error) {
	forms, names, err := reader.LoadFormsFile(getConfig().Forms)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load forms: %w", err)
	}
	return forms, names, nil
}

// loadDictionary loads the configured pronunciation dictionary.
func loadDictionary() (phonetics.Dict, error) {
	dict, err := reader.LoadPronunciationFile(getConfig().Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return dict, nil
}
