package cmd

import (
	"fmt"

	"github.com/msto63/hlog/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionShort bool

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()

			if versionShort {
				fmt.Fprintln(out, info.String())
				return
			}

			fmt.Fprintf(out, "hlog v%s\n", info.Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
	c.Flags().BoolVar(&versionShort, "short", false, "Print only the version line")
	return c
}
