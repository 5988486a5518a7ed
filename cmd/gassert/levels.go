package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gordian-engine/gassert"
	"github.com/gordian-engine/gassert/gassertconfig"
	"github.com/spf13/cobra"
)

func NewLevelsCmd(log *slog.Logger) *cobra.Command {
	var (
		tags    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use: "levels",

		Short: "Print the policy of every assertion level for a build configuration",

		Long: `Print the policy of every assertion level for a build configuration.

Without --tags, the configuration is the one this command was built with.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := gassertconfig.Current()
			if cmd.Flags().Changed("tags") {
				var err error
				cfg, err = gassertconfig.FromTags(tags)
				if err != nil {
					return err
				}
			}

			log.Debug("Printing levels", "cfg", cfg)
			return printLevels(cmd.OutOrStdout(), cfg, !noColor)
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "Build tags to describe, as passed to go build -tags")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

var (
	elidedColor   = color.New(color.Faint)
	nonFatalColor = color.New(color.FgYellow)
	fatalColor    = color.New(color.FgRed, color.Bold)
)

func policyColor(p gassert.Policy) *color.Color {
	switch p {
	case gassert.PolicyElided:
		return elidedColor
	case gassert.PolicyNonFatal:
		return nonFatalColor
	case gassert.PolicyFatal:
		return fatalColor
	default:
		return color.New(color.Reset)
	}
}

func printLevels(w io.Writer, cfg gassertconfig.Config, useColor bool) error {
	tags := cfg.TagString()
	if tags == "" {
		tags = "(none)"
	}
	if _, err := fmt.Fprintf(w, "threshold: %s\nfatal:     %s\ntags:      %s\n\n", cfg.Threshold, cfg.FatalFloor, tags); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tPOLICY")
	for _, l := range gassert.Levels() {
		p := cfg.Resolve(l)
		s := p.String()
		if useColor {
			s = policyColor(p).Sprint(s)
		}
		fmt.Fprintf(tw, "%s\t%s\n", l, s)
	}
	return tw.Flush()
}
