package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var hexCmd = &cobra.Command{
	Use:   "hex [message...]",
	Short: "Read u+XXXX tokens digit by digit",
	Long: `Replace every u+XXXX token (four lowercase hex digits) in a message
with its digits read aloud, as a Japanese screen reader announces
unknown characters. Other locales leave the message unchanged.

Without arguments, each line of stdin is expanded.

Example:
  kanaspell hex 'u+3042'`,
	RunE: runHex,
}

func init() {
	rootCmd.AddCommand(hexCmd)
}

func runHex(cmd *cobra.Command, args []string) error {
	msgs, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) > 0 {
		msgs = []string{strings.Join(args, " ")}
	}
	for _, msg := range msgs {
		fmt.Fprintln(cmd.OutOrStdout(), s.engine.ExpandHexTokens("", msg))
	}
	return nil
}
