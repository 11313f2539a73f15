package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/f3rmion/kanaspell/internal/speech"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak [script]",
	Short: "Run a speech script through the console speech driver",
	Long: `Run a speech command script and print what would be spoken, one
"[lang] text" line per utterance. Japanese text in character mode is
spelled out first.

Script lines:
  @lang en      switch language (bare @lang restores the default)
  @char on|off  toggle character mode
  @index 3      mark a position
  # comment
  anything else is spoken text

The script is read from stdin when no file (or "-") is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpeak,
}

func init() {
	rootCmd.AddCommand(speakCmd)
	speakCmd.Flags().String("voice", "", "voice ID (default from config)")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}

	seq, err := speech.ParseScript(r)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	voice, _ := cmd.Flags().GetString("voice")
	if voice == "" {
		voice = s.cfg.Voice.ID
	}
	v := s.cfg.Voice
	drv, err := speech.NewDriver(
		speech.NewConsoleBackend(cmd.OutOrStdout()),
		s.engine,
		reading.LocaleFunc(s.locale),
		speech.Options{
			VoiceID: voice,
			Settings: &speech.Settings{
				Rate:       v.Rate,
				RateBoost:  v.RateBoost,
				Pitch:      v.Pitch,
				Inflection: v.Inflection,
				Volume:     v.Volume,
			},
			Logger: s.logger,
		},
	)
	if err != nil {
		return err
	}
	defer drv.Terminate()

	if err := drv.Speak(cmd.Context(), seq); err != nil {
		return err
	}
	if idx, ok := drv.LastIndex(); ok {
		s.logger.Debug("speech finished", "last_index", idx)
	}
	return nil
}
