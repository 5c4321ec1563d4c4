package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/foundation/koy/ast"
)

var astTree bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parse tree of a file",
	Long: `Parses a .koy file without evaluating it. By default the tree is printed
as fully parenthesized source; --tree prints one node per line with spans.

Examples:
  koy ast config
  koy ast --tree config.koy`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().BoolVar(&astTree, "tree", false, "print an indented node tree with source spans")
}

func runAST(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	node, diagErr := koy.ParseSource(name, src)
	if diagErr != nil {
		reportError(cmd.ErrOrStderr(), diagErr)
		return errReported
	}

	if astTree {
		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(node))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), ast.Format(node))
	return nil
}
