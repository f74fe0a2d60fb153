// SPDX-License-Identifier: MIT

// matrixcalc evaluates a YAML matrix worksheet and prints the results as YAML.
//
// Usage:
//
//	matrixcalc -f worksheet.yaml
//	matrixcalc --file worksheet.yaml --log-level debug
//
// Exit codes:
//   - 0: all steps succeeded
//   - 1: the worksheet is invalid or a step failed
//   - 2: usage error (missing required flag)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	xlog "github.com/katalvlaran/lvmatrix/internal/log"
	"github.com/katalvlaran/lvmatrix/internal/worksheet"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matrixcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file, level string
	var showVersion bool
	fs.StringVar(&file, "file", "", "path to YAML worksheet")
	fs.StringVar(&file, "f", "", "path to YAML worksheet (shorthand)")
	fs.StringVar(&level, "log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	if file == "" {
		fmt.Fprintln(stderr, "Error: --file is required")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  matrixcalc -f worksheet.yaml")
		return 2
	}

	xlog.Configure(xlog.Config{Level: level, Output: stderr, Service: "matrixcalc"})
	logger := xlog.WithComponent("cli")

	ws, err := worksheet.Load(file)
	if err != nil {
		logger.Error().Err(err).Str("file", file).Msg("load worksheet")
		return 1
	}
	logger.Info().Str("file", file).Int("steps", len(ws.Steps)).Msg("worksheet loaded")

	results, err := ws.Run(ctx, xlog.WithComponent("worksheet"))
	if werr := writeResults(stdout, results); werr != nil {
		logger.Error().Err(werr).Msg("write results")
		return 1
	}
	if err != nil {
		logger.Error().Err(err).Msg("worksheet failed")
		return 1
	}
	logger.Info().Int("results", len(results)).Msg("worksheet done")

	return 0
}

func writeResults(w io.Writer, results []worksheet.Result) error {
	if len(results) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}

	return enc.Close()
}
