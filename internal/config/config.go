// Package config handles application configuration and setup
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is a runner frontend that has to be opened before use and closed after.
type Frontend interface {
	runner.Frontend
	io.Closer
	Open() error
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateFrontend creates the frontend selected in the options.
func CreateFrontend(logger *log.Logger, opts options.Program) (Frontend, error) {
	switch opts.Frontend {
	case options.FrontendTerminal:
		return terminal.New(logger, os.Stdin, os.Stdout), nil
	case options.FrontendWindow:
		return window.New(logger, opts.Scale), nil
	case options.FrontendHeadless:
		return headless.New(), nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
