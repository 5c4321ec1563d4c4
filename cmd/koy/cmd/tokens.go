package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/koy/foundation/koy"
)

var tokensComments bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Long: `Tokenizes a .koy file and prints one token per line as
line:column KIND[:value].

Examples:
  koy tokens config
  koy tokens --comments config.koy`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensComments, "comments", false, "include comment tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	tokens, diagErr := koy.Tokens(name, src, tokensComments)
	if diagErr != nil {
		reportError(cmd.ErrOrStderr(), diagErr)
		return errReported
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Start.Line+1, tok.Start.Column+1)
		fmt.Fprintf(out, "%s %s\n", paint(mutedStyle, fmt.Sprintf("%-7s", pos)), tok)
	}
	return nil
}
