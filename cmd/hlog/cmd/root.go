package cmd

import (
	"fmt"

	"github.com/msto63/hlog/internal/cli"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logName string
	useUTC  bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hlog",
		Short: "hlog - typed placeholder log formatter",
		Long: `hlog renders templates with typed placeholders into timestamped log lines.

Placeholders:
  -i  integer
  -d  decimal
  -s  text
  -b  boolean

Each placeholder takes the next unused argument of its own kind, so the
order of arguments only matters within a kind.

Configuration is read from --config, or from hlog.toml / hlog.yaml in the
working directory or the user config directory. HLOG_LOGGER_NAME,
HLOG_LOGGER_UTC and HLOG_TEMPLATE_MARKER override file values.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./hlog.toml)")
	root.PersistentFlags().StringVar(&logName, "name", "", "Logger name shown in each line (overrides config)")
	root.PersistentFlags().BoolVar(&useUTC, "utc", false, "Print timestamps in UTC (overrides config)")

	root.AddCommand(newEmitCmd(), newParseCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, "hlog", err)
		return err
	}
	return nil
}

// loadSettings resolves config file, environment and flags, in rising
// precedence.
func loadSettings(cmd *cobra.Command) (cli.Settings, error) {
	settings, err := cli.LoadSettings(cfgFile)
	if err != nil {
		return cli.Settings{}, err
	}

	if cmd.Flags().Changed("name") {
		settings.Name = logName
	}
	if cmd.Flags().Changed("utc") {
		settings.UTC = useUTC
	}

	return settings, nil
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", msg, err)
}
