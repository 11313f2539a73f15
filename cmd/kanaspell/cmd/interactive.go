package cmd

import "github.com/spf13/cobra"

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for spelling out text.

Controls:
  Enter          Spell the input
  Tab/Shift+Tab  Move between characters
  Ctrl+B         Toggle braille rendering
  Ctrl+K         Toggle announced capitals
  Ctrl+Y         Copy the reading
  Esc            Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
