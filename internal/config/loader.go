package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for
// a config file.
const maxUpwardSearchLevels = 10

// envPrefix is the environment variable prefix, e.g. POETRY_DICTIONARY.
const envPrefix = "POETRY_"

// configNames are the config file names searched for, in order.
var configNames = []string{"poetry.yaml", "poetry.yml"}

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
)

// ConfigFileUsed returns the path of the config file last loaded, or "".
func ConfigFileUsed() string {
	return configFileUsed
}

// Reset clears the koanf instance. Used for testing.
func Reset() {
	k = koanf.New(".")
	configFileUsed = ""
}

// findConfigFile returns the config file to use: the explicit path if given,
// otherwise the first poetry.yaml/poetry.yml found walking upward from cwd.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Load loads configuration from defaults, config file, environment variables
// and flags. Precedence (highest to lowest): flags > env > file > defaults.
// Relative paths from the config file resolve against the file's directory;
// paths from flags are left as the user typed them.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dictionary": DefaultDictionary,
		"forms":      DefaultForms,
		"output":     DefaultOutput,
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	configFileUsed = findConfigFile(cfgFile)
	var configDir string
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			configDir = filepath.Dir(abs)
		}
	}

	// 3. Environment (POETRY_DICTIONARY -> dictionary).
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set.
	var flagDictionary, flagForms string
	if flags != nil {
		if flags.Changed("dictionary") {
			flagDictionary, _ = flags.GetString("dictionary")
		}
		if flags.Changed("forms") {
			flagForms, _ = flags.GetString("forms")
		}
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if configDir != "" {
		if flagDictionary == "" {
			cfg.Dictionary = resolveRelativeTo(cfg.Dictionary, configDir)
		}
		if flagForms == "" {
			cfg.Forms = resolveRelativeTo(cfg.Forms, configDir)
		}
	}

	return &cfg, nil
}

// resolveRelativeTo resolves path against baseDir unless empty or absolute.
func resolveRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
