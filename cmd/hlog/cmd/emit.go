package cmd

import (
	"github.com/msto63/hlog/internal/cli"
	"github.com/spf13/cobra"
)

func newEmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emit TEMPLATE [ARG...]",
		Short: "Render a template and print one log line",
		Long: `Renders TEMPLATE with the given arguments and prints one INFO line.

Each ARG is kind:value with kind one of i/int, d/dec, s/str, b/bool.
Templates starting with the marker need "--" in front of them:

  hlog emit -- "-i items, -s found" i:3 s:cats
  [2024-03-05 09:07:01.25  H-LOG INFO]  ---  3 items, cats found`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEmit,
	}
}

func runEmit(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	values, err := cli.ParseArgs(args[1:])
	if err != nil {
		return err
	}

	logger, err := settings.NewLogger(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return logger.Info(args[0], values...)
}
