package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/book"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *bookbind.Config
	Builder  *book.Builder
	Manifest bookbind.Manifest
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Build  BuildCmd  `cmd:"" help:"Convert the configured articles into a book"`
	New    NewCmd    `cmd:"" help:"Write a starter configuration file"`
	Status StatusCmd `cmd:"" help:"List the conversions recorded for a book"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Input   string  `arg:"" help:"Book configuration file (JSON or YAML)"`
	Browser bool    `help:"Fetch pages with a headless browser for JavaScript-rendered sites"`
	RPS     float64 `default:"2" help:"Per-host request rate limit in requests per second"`
}

// NewCmd is the "new" subcommand.
type NewCmd struct {
	Input string `arg:"" help:"Path for the new configuration file"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Input string `arg:"" help:"Book configuration file (JSON or YAML)"`
}
