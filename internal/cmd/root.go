// Package cmd implements the wordfind command line.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/nelsbrock/wordfind/internal/config"
	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/history"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/repl"
	"github.com/nelsbrock/wordfind/internal/session"
	"github.com/nelsbrock/wordfind/internal/tui"
	"github.com/nelsbrock/wordfind/internal/word"
)

var rootCmd = &cobra.Command{
	Use:   "wordfind [dictionary]",
	Short: "Search a word list with a small filter language",
	Long: `wordfind loads a dictionary (one word per line) and answers queries
made of whitespace-separated filters:

  letters     c*t       word uses these letters, '*' matches any one
  length      =3 >5     compare the word length (=, <, >, <=, >=)
  sequence    0:ca      letters found at a zero-based offset

A token %N reuses filter N of the previous command and %% reuses the
filter at the same position.

On a terminal an interactive prompt is started; otherwise commands are
read line by line from standard input.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runInteractive,
}

var (
	cfgFile        string
	dictionaryPath string
	plainMode      bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/wordfind/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dictionaryPath, "dictionary", "d", "", "dictionary file, one word per line")

	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "use the line prompt even on a terminal")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	// e.g. WORDFIND_TUI_THEME for tui.theme
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// environment is the state shared by every command that searches the
// dictionary.
type environment struct {
	cfg    *config.Config
	logger *logging.Logger
	sess   *session.Session
}

// prepare loads the configuration, opens the log and reads the dictionary.
// positional is the dictionary given as an argument, if any; it wins over
// the --dictionary flag, which wins over dictionary.path.
func prepare(positional string) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	path := firstNonEmpty(positional, dictionaryPath, cfg.Dictionary.Path)
	if path == "" {
		_ = logger.Close()
		return nil, fmt.Errorf("%w: pass a dictionary file or set dictionary.path", errors.ErrNoDictionary)
	}

	start := time.Now()
	corpus, err := word.LoadFile(path)
	if err != nil {
		logger.Error("dictionary load failed", "path", path, "error", err.Error())
		_ = logger.Close()
		return nil, err
	}
	logger.Timed("dictionary loaded", start, "path", path, "words", corpus.Len())

	return &environment{
		cfg:    cfg,
		logger: logger,
		sess:   session.New(corpus, logger),
	}, nil
}

func (e *environment) Close() {
	_ = e.logger.Close()
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log in %s", cfg.Logging.Dir)
	}
	return logger, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	var positional string
	if len(args) == 1 {
		positional = args[0]
	}
	env, err := prepare(positional)
	if err != nil {
		return err
	}
	defer env.Close()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	// History is only kept for a person typing at a terminal.
	var hist *history.History
	if isTerminal(in) {
		hist = loadHistory(env)
		defer saveHistory(env, hist)
	}

	if !plainMode && isTerminal(in) && isTerminal(out) {
		app := tui.New(env.sess, tui.Options{
			Prompt:         env.cfg.REPL.Prompt,
			History:        hist,
			MaxOutputLines: env.cfg.TUI.MaxOutputLines,
			Theme:          env.cfg.TUI.Theme,
			Logger:         env.logger,
		}, in, out)
		return app.Run(cmd.Context())
	}

	var prompt string
	if hist != nil {
		prompt = env.cfg.REPL.Prompt
	}
	r := repl.New(env.sess, in, out, cmd.ErrOrStderr(), repl.Options{
		Prompt:  prompt,
		History: hist,
		Logger:  env.logger,
	})
	return r.Run(cmd.Context())
}

func loadHistory(env *environment) *history.History {
	hist := history.New(env.cfg.REPL.HistorySize)
	path := env.cfg.REPL.HistoryFile
	if path == "" {
		return hist
	}
	if err := hist.Load(path); err != nil {
		env.logger.Warn("failed to load history", "path", path, "error", err.Error())
	}
	return hist
}

func saveHistory(env *environment, hist *history.History) {
	path := env.cfg.REPL.HistoryFile
	if path == "" {
		return
	}
	if err := hist.Save(path); err != nil {
		env.logger.Warn("failed to save history", "path", path, "error", err.Error())
	}
}

// isTerminal reports whether stream is a file attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
