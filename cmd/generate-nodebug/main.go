// Command generate-nodebug writes the no-op counterpart of a file of invariant checks.
//
// Invariant helpers that are too expensive for most builds live in a file
// guarded by a build constraint, such as:
//
//	//go:build gassert_trace || gassert_debug
//
// Code outside that file calls the helpers unconditionally,
// so every other build needs the same functions with empty bodies.
// generate-nodebug derives that file: it negates the build constraint,
// keeps every function and method signature and doc comment,
// drops constants and variables,
// replaces each body with an empty one, and drops imports that become unused.
//
// Typical use is a go:generate line next to the code calling the helpers:
//
//	//go:generate go run github.com/gordian-engine/gassert/cmd/generate-nodebug invariants_debug.go
//
// which writes invariants_nodebug.go.
// Input files not named *_debug.go need an explicit output path with -o.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := mainE(log, os.Args[1:]); err != nil {
		log.Info("Failure", "err", err)
		os.Exit(1)
	}
}

func mainE(log *slog.Logger, args []string) error {
	fs := pflag.NewFlagSet("generate-nodebug", pflag.ContinueOnError)
	outPath := fs.StringP("output", "o", "", "Output path (default: input path with _debug.go replaced by _nodebug.go)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: generate-nodebug [-o OUTPUT] INPUT_debug.go")
	}
	inPath := fs.Arg(0)

	if *outPath == "" {
		base, ok := strings.CutSuffix(inPath, "_debug.go")
		if !ok {
			return fmt.Errorf("input %q does not end in _debug.go; set the output path with -o", inPath)
		}
		*outPath = base + "_nodebug.go"
	}

	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out, err := Generate(inPath, *outPath, src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Debug("Wrote no-op file", "in", inPath, "out", *outPath)
	return nil
}
