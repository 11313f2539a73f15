// Package cmd contains all CLI commands for kanaspell.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/kanaspell/internal/chardesc"
	"github.com/f3rmion/kanaspell/internal/config"
	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/f3rmion/kanaspell/internal/tui"
	"github.com/f3rmion/kanaspell/internal/tui/bigchar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kanaspell",
	Short: "Spell out Japanese text one character at a time",
	Long: `kanaspell reads Japanese and mixed-script text aloud character by
character, announcing when the kind of character changes:

  - hiragana / katakana
  - half-width / full-width forms
  - Latin letters and capitals
  - small kana and the long vowel mark

Characters are described from built-in dictionaries, optional user
dictionaries (.jsonl or SQLite .db) and Unicode names.

Running 'kanaspell' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/kanaspell)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log each resolution step to stderr")
	rootCmd.PersistentFlags().String("locale", "", "language code for descriptions (default from config, then ja)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("KANASPELL")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger returns a text logger on stderr, at debug level when verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// session bundles what the commands need to read text.
type session struct {
	cfg    *config.Config
	dir    string
	lookup reading.Lookup
	engine *reading.Engine
	logger *slog.Logger
	closer []func() error
}

// Close releases opened dictionaries.
func (s *session) Close() error {
	var errs []string
	for _, c := range s.closer {
		if err := c(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing dictionaries: %s", strings.Join(errs, "; "))
	}
	return nil
}

// locale resolves the active locale: flag or env, then config, then "ja".
func (s *session) locale() string {
	if loc := viper.GetString("locale"); loc != "" {
		return loc
	}
	if s.cfg.Locale != "" {
		return s.cfg.Locale
	}
	return "ja"
}

// newSession loads configuration and dictionaries and builds the engine.
func newSession() (*session, error) {
	logger := newLogger()
	slog.SetDefault(logger)

	dir := getConfigDir()
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, dir: dir, logger: logger}
	lookup, err := s.buildLookup()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.lookup = lookup
	s.engine = reading.NewEngine(lookup, reading.LocaleFunc(s.locale), reading.Options{
		Labels: cfg.Labels,
		Logger: logger,
	})
	return s, nil
}

// buildLookup layers user dictionaries over the built-in data and Unicode
// names. Earlier dictionaries in the config win.
func (s *session) buildLookup() (reading.Lookup, error) {
	var chain chardesc.Chain
	for _, path := range s.cfg.ResolveDictionaries(s.dir) {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite":
			store, err := chardesc.OpenStore(path)
			if err != nil {
				return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
			}
			s.closer = append(s.closer, store.Close)
			chain = append(chain, store)
		default:
			d := chardesc.NewDictionary()
			if err := d.LoadFromFile(path); err != nil {
				return nil, fmt.Errorf("loading dictionary %s: %w", path, err)
			}
			chain = append(chain, d)
		}
		s.logger.Debug("loaded dictionary", "path", path)
	}

	builtin, err := chardesc.Builtin()
	if err != nil {
		return nil, err
	}
	return append(chain, builtin, chardesc.UnicodeNames{}), nil
}

// readingOptions reads the shared spelling flags of cmd.
func readingOptions(cmd *cobra.Command) reading.ReadingOptions {
	capAnnounced, _ := cmd.Flags().GetBool("cap-announced")
	braille, _ := cmd.Flags().GetBool("braille")
	return reading.ReadingOptions{CapAnnounced: capAnnounced, ForBraille: braille}
}

func addReadingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("cap-announced", false, "capitals are announced elsewhere, skip the cap label")
	cmd.Flags().Bool("braille", false, "render for a braille display")
}

// runInteractive launches the TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tui.Run(s.engine, tui.Options{Renderer: bigchar.NewRenderer(bigchar.FontPaths...)}); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
