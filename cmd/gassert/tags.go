package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gordian-engine/gassert/gassertconfig"
	"github.com/spf13/cobra"
)

func NewTagsCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use: "tags CONFIG.toml",

		Short: "Print the build tags selecting the configuration in a TOML file",

		Long: `Print the build tags selecting the configuration in a TOML file.

The file sets a threshold and optionally a fatal floor:

  threshold = "info"
  fatal = "warn"

Use the output with the go tool:

  $ go build -tags "$(gassert tags gassert.toml)" ./...`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gassertconfig.LoadFile(args[0])
			if err != nil {
				return err
			}

			log.Debug("Loaded configuration", "path", args[0], "cfg", cfg)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.TagString())
			return err
		},
	}
}

func NewCheckTagsCmd(log *slog.Logger) *cobra.Command {
	var tagsFile string

	cmd := &cobra.Command{
		Use: "check-tags [TAGS]",

		Short: "Validate the gassert tags in a build tag list",

		Long: `Validate the gassert tags in a build tag list.

The list is given as an argument, in the same form as go build -tags,
or with --file as a file holding one tag per line, where blank lines
and lines starting with # are ignored.

Unknown gassert_ tags and conflicting tags are reported as errors.
Tags without the gassert_ prefix are ignored.`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg gassertconfig.Config
				err error
			)

			switch {
			case tagsFile != "" && len(args) > 0:
				return fmt.Errorf("use either a TAGS argument or --file, not both")
			case tagsFile != "":
				f, err := os.Open(tagsFile)
				if err != nil {
					return fmt.Errorf("failed to open tags file: %w", err)
				}
				defer f.Close()

				cfg, err = gassertconfig.ParseTagsFile(f)
				if err != nil {
					return fmt.Errorf("%s: %w", tagsFile, err)
				}
			case len(args) == 1:
				cfg, err = gassertconfig.FromTags(args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("missing TAGS argument or --file")
			}

			log.Debug("Tags valid", "cfg", cfg)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", cfg)
			return err
		},
	}

	cmd.Flags().StringVar(&tagsFile, "file", "", "Path to a file of build tags, one per line")

	return cmd
}
