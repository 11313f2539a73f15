package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/f3rmion/kanaspell/internal/clipboard"
	"github.com/spf13/cobra"
)

var spellCmd = &cobra.Command{
	Use:   "spell [text...]",
	Short: "Print the discriminant reading of text",
	Long: `Spell out each argument one character at a time. Attribute labels
are inserted whenever the kind of character changes.

Without arguments, each line of stdin is spelled.

Example:
  kanaspell spell 'カーA'
  kanaspell spell --locale en 'ｱｲｳ'
  echo 'ぁあ' | kanaspell spell --attr-only`,
	RunE: runSpell,
}

var copyWriter clipboard.Writer = clipboard.NewSystem()

func init() {
	rootCmd.AddCommand(spellCmd)
	addReadingFlags(spellCmd)
	spellCmd.Flags().Bool("attr-only", false, "print only the attribute labels")
	spellCmd.Flags().Bool("copy", false, "copy the reading to the clipboard")
}

// inputs returns args, or the lines of stdin when there are none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

func runSpell(cmd *cobra.Command, args []string) error {
	texts, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	opts := readingOptions(cmd)
	opts.AttrOnly, _ = cmd.Flags().GetBool("attr-only")

	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = s.engine.DiscriminantReading(text, opts)
		fmt.Fprintln(cmd.OutOrStdout(), out[i])
	}

	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		if err := copyWriter.Write(strings.Join(out, "\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}
