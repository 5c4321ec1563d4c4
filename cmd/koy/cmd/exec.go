package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/koy/foundation/koy"
)

var execSource string

var execCmd = &cobra.Command{
	Use:   "exec [source]",
	Short: "Evaluate an inline snippet",
	Long: `Evaluates koy source given on the command line. The snippet is reported
as "stdin" in diagnostics.

Examples:
  koy exec '(1 + 2) * 3'
  koy exec -e '{name: "koy", tags: ["a", "b"]}' --format yaml`,
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringVarP(&execSource, "expr", "e", "", "source to evaluate")
}

func runExec(cmd *cobra.Command, args []string) error {
	src := execSource
	if src == "" {
		src = strings.Join(args, " ")
	}

	value, diagErr := newEngine().Run(koy.StdinName, src)
	if diagErr != nil {
		reportError(cmd.ErrOrStderr(), diagErr)
		return errReported
	}
	return koy.Write(cmd.OutOrStdout(), value, format())
}
