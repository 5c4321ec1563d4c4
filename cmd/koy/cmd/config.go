package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	koyconfig "github.com/msto63/koy/foundation/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration file in use and the resolved settings.
Settings come from the file, then KOY_* environment variables
(log.level <-> KOY_LOG_LEVEL), then flags.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	file := configPath
	if file == "" {
		file = "(none, using defaults)"
	}
	fmt.Fprintf(out, "file: %s\n\n", file)

	rows := []struct {
		key   string
		value interface{}
	}{
		{koyconfig.KeyLogLevel, settings.LogLevel},
		{koyconfig.KeyLogFormat, settings.LogFormat},
		{koyconfig.KeyOutputFormat, settings.OutputFormat},
		{koyconfig.KeyOutputColor, settings.OutputColor},
		{koyconfig.KeyParserDepth, settings.MaxDepth},
		{koyconfig.KeyReplPrompt, fmt.Sprintf("%q", settings.ReplPrompt)},
		{koyconfig.KeyReplHistory, settings.ReplHistory},
		{koyconfig.KeyWatchDebounce, settings.WatchDebounce},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%-18s %v\n", row.key, row.value)
	}

	if configPath == "" && verbose {
		fmt.Fprintln(out, "\nsearched:")
		for _, candidate := range koyconfig.ListPossibleConfigFiles(koyconfig.DefaultDiscoveryOptions()) {
			fmt.Fprintf(out, "  %s\n", candidate)
		}
	}
	return nil
}
