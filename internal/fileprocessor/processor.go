// Package fileprocessor handles running a program file and reporting the result.
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile runs the program file of the options until it stops and logs
// the final machine state. On a fault the state is logged at the faulting
// instruction before the error is returned.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)

	snapshot, err := p.Execute(ctx, opts)
	if snapshot != nil && (opts.Debug || pipeline.IsFault(err)) {
		runner.LogState(logger, snapshot)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("running %s: %w", opts.Input, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	if strings.Contains(date, "unknown") {
		date = ""
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
