// Command gassert inspects and validates gassert build configurations.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gordian-engine/gassert"
	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gassert.SetLogger(logger)

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Info("Failure", "err", err)
		os.Stderr.Sync()
		return err
	}

	return nil
}

func NewRootCmd(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "gassert SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		SilenceUsage: true,

		Long: `gassert reports and validates build configurations of the gassert package.

Assertion levels are compiled in or out with build tags:

  gassert_trace, gassert_debug, gassert_info, gassert_warn
      select the threshold; levels below it are elided.
      Without a threshold tag, the threshold is Warn.
  gassert_fatal_debug, gassert_fatal_info, gassert_fatal_warn
      select the lowest level whose failures panic.
      Without a fatal tag, only Always assertions panic.

The go tool ignores tags it does not know,
so validate tags from build scripts before use:

  $ gassert check-tags "$TAGS" && go build -tags "$TAGS" ./...
`,
	}

	rootCmd.AddCommand(
		NewLevelsCmd(log),
		NewTagsCmd(log),
		NewCheckTagsCmd(log),

		NewVersionCmd(log),
	)

	return rootCmd
}
