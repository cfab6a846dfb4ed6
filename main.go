// Package main implements the main entry point for a headless CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	failed := false
	for _, file := range files {
		opts.Input = file

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Running program failed", log.String("file", file), log.Err(err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
