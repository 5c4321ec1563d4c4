package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	koyconfig "github.com/msto63/koy/foundation/core/config"
	koylog "github.com/msto63/koy/foundation/core/log"
	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	// Resolved by loadSettings before any command runs
	settings   koyconfig.Settings
	configPath string
	logger     = koylog.Nop()
)

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("evaluation failed")

var rootCmd = &cobra.Command{
	Use:   "koy",
	Short: "koy - JSON-like configuration language",
	Long: `koy evaluates configuration documents written in a small JSON-like
language with comments, unquoted keys and integer/float arithmetic.

  {
    // listen address
    host: "0.0.0.0",
    port: 8000 + 80,
    workers: [1, 2, 4],
    timeout: 2.5 * 60
  }

Commands:
  eval     - evaluate .koy files
  exec     - evaluate an inline snippet
  tokens   - print the token stream
  ast      - print the parse tree
  repl     - interactive read-eval-print loop
  watch    - re-evaluate a file on change`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./koy.toml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format: text, json, yaml, toml (default from config)")
}

// loadSettings resolves configuration, flags and the logger
func loadSettings(cmd *cobra.Command, args []string) error {
	var cfg *koyconfig.Config
	var err error
	if cfgFile != "" {
		cfg, err = koyconfig.LoadWithOptions(cfgFile, koyconfig.LoadOptions{
			Format:    koyconfig.FormatAuto,
			EnvPrefix: koyconfig.EnvPrefix,
			Defaults:  koyconfig.Defaults(),
		})
	} else {
		cfg, err = koyconfig.Discover(koyconfig.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	settings = koyconfig.SettingsFrom(cfg)
	if outputFormat != "" {
		settings.OutputFormat = strings.ToLower(outputFormat)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	configPath = cfg.FilePath()
	logger = logging.FromSettings("koy", settings, verbose)
	logger.Debug("Configuration loaded", koylog.String("file", configPath), koylog.String("command", cmd.Name()))
	return nil
}

func newEngine() *koy.Engine {
	return koy.NewEngine(koy.Options{Logger: logger, MaxDepth: settings.MaxDepth})
}

func format() koy.Format {
	return koy.Format(settings.OutputFormat)
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), paint(errorStyle, "error: "+err.Error()))
}
