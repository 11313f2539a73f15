package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <text>",
	Short: "Show how each character is classified and described",
	Long: `Break text into characters and show, for each one, its code point,
attribute labels and spoken description.

Example:
  kanaspell describe 'Ａぁ漢'
  kanaspell describe --json 'u+'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addReadingFlags(describeCmd)
	describeCmd.Flags().Bool("json", false, "output as JSON")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	descs := s.engine.Describe(strings.Join(args, " "), readingOptions(cmd))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(descs)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("CHAR", "CODE", "SPOKEN CODE", "ATTRIBUTES", "DESCRIPTION")
	for _, d := range descs {
		t.Row(d.Char, d.Hex, s.engine.CodeToSpokenDigits(d.Code), d.Labels, d.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
