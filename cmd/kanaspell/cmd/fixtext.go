package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fixtextCmd = &cobra.Command{
	Use:   "fixtext [text...]",
	Short: "Normalize newly typed text for speech",
	Long: `Convert all-hiragana text to katakana and spell out small katakana
and the long vowel mark, as done for text coming from an input method.

With --candidate only the hiragana conversion is applied.

Example:
  kanaspell fixtext 'ひらがな'
  kanaspell fixtext 'ァー'`,
	RunE: runFixtext,
}

func init() {
	rootCmd.AddCommand(fixtextCmd)
	fixtextCmd.Flags().Bool("candidate", false, "text is an input method candidate")
}

func runFixtext(cmd *cobra.Command, args []string) error {
	texts, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	candidate, _ := cmd.Flags().GetBool("candidate")
	for _, text := range texts {
		fmt.Fprintln(cmd.OutOrStdout(), s.engine.FixNewText(text, candidate))
	}
	return nil
}
