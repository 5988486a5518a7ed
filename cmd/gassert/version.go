package main

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gordian-engine/gassert/gassertconfig"
	"github.com/spf13/cobra"
)

func NewVersionCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use: "version",

		Short: "Print the module version and the gassert configuration of this binary",

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			version := "(devel)"
			if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
				version = bi.Main.Version
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gassert %s\n%s\n", version, gassertconfig.Current())
			return err
		},
	}
}
