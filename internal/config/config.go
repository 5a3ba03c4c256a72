package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config
// keys, e.g. WORDFIND_REPL_PROMPT for repl.prompt.
const EnvPrefix = "WORDFIND"

// EnvKeyReplacer maps nested config keys to environment variable names.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// Config holds all wordfind configuration
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary" yaml:"dictionary"`
	REPL       REPLConfig       `mapstructure:"repl" yaml:"repl"`
	TUI        TUIConfig        `mapstructure:"tui" yaml:"tui"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// DictionaryConfig selects the word list
type DictionaryConfig struct {
	// Path is the dictionary used when none is given on the command line
	Path string `mapstructure:"path" yaml:"path"`
}

// REPLConfig controls the prompt shared by the line and terminal front ends
type REPLConfig struct {
	// Prompt is printed before each input line (default: "> ")
	Prompt string `mapstructure:"prompt" yaml:"prompt"`
	// HistoryFile persists prompt history between runs. Empty disables
	// persistence.
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
	// HistorySize is the maximum number of history entries (default: 1000)
	HistorySize int `mapstructure:"history_size" yaml:"history_size"`
}

// TUIConfig controls the terminal front end
type TUIConfig struct {
	// MaxOutputLines is how many lines of scrollback the TUI retains (default: 5000)
	MaxOutputLines int `mapstructure:"max_output_lines" yaml:"max_output_lines"`
	// Theme is the color theme: "default" or "mono"
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether a log file is written (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding wordfind.log
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	dir := ConfigDir()
	return &Config{
		REPL: REPLConfig{
			Prompt:      "> ",
			HistoryFile: filepath.Join(dir, "history"),
			HistorySize: 1000,
		},
		TUI: TUIConfig{
			MaxOutputLines: 5000,
			Theme:          "default",
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        filepath.Join(dir, "logs"),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("dictionary.path", defaults.Dictionary.Path)

	viper.SetDefault("repl.prompt", defaults.REPL.Prompt)
	viper.SetDefault("repl.history_file", defaults.REPL.HistoryFile)
	viper.SetDefault("repl.history_size", defaults.REPL.HistorySize)

	viper.SetDefault("tui.max_output_lines", defaults.TUI.MaxOutputLines)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wordfind")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordfind"
	}
	return filepath.Join(home, ".config", "wordfind")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
