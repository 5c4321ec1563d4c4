package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	koyerror "github.com/msto63/koy/foundation/core/error"
	koylog "github.com/msto63/koy/foundation/core/log"
	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/foundation/koy/interp"
)

var evalCmd = &cobra.Command{
	Use:     "eval <file>...",
	Aliases: []string{"run"},
	Short:   "Evaluate koy files",
	Long: `Evaluates one or more .koy files and prints each value.

The .koy suffix may be omitted. "-" reads from standard input. Every file is
evaluated even if an earlier one fails; the exit status is non-zero if any
failed.

Examples:
  koy eval config
  koy eval --format json service.koy
  cat app.koy | koy eval -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	engine := newEngine()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	failed := 0
	for _, arg := range args {
		value, err := evalArg(cmd, engine, arg)
		if err != nil {
			failed++
			reportError(errOut, err)
			continue
		}

		if len(args) > 1 {
			fmt.Fprintln(out, paint(titleStyle, "# "+arg))
		}
		if err := koy.Write(out, value, format()); err != nil {
			failed++
			reportError(errOut, err)
		}
	}

	if failed > 0 {
		logger.Debug("Evaluation finished with failures", koylog.Int("failed", failed), koylog.Int("files", len(args)))
		return errReported
	}
	return nil
}

func evalArg(cmd *cobra.Command, engine *koy.Engine, arg string) (interp.Value, error) {
	if arg != "-" {
		return engine.RunFile(arg)
	}

	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, koyerror.Wrap(err, "failed to read stdin").WithCode(koyerror.CodeInternal)
	}
	value, diagErr := engine.Run(koy.StdinName, string(src))
	if diagErr != nil {
		return nil, diagErr
	}
	return value, nil
}

// readSource loads a file for the inspection commands
func readSource(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", koyerror.Wrap(err, "failed to read stdin").WithCode(koyerror.CodeInternal)
		}
		return koy.StdinName, string(src), nil
	}
	return koy.ReadFile(path)
}
