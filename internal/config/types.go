// Package config loads checker configuration from file, environment and
// flags.
package config

// Defaults applied before any config source is read.
const (
	// DefaultDictionary is the pronunciation dictionary path.
	DefaultDictionary = "datasets/pronunciation_dictionary.txt"
	// DefaultForms is the poetry forms file path.
	DefaultForms = "datasets/poetry_forms.txt"
	// DefaultOutput is the output mode.
	DefaultOutput = "auto"
)

// Config holds the resolved checker configuration.
type Config struct {
	// Dictionary is the path to the CMU-format pronunciation dictionary.
	Dictionary string `koanf:"dictionary"`
	// Forms is the path to the poetry forms description file.
	Forms string `koanf:"forms"`
	// Output selects the output mode: auto, text or json.
	Output string `koanf:"output"`
	// Verbose enables progress chatter on stderr.
	Verbose bool `koanf:"verbose"`
}
