// Package main is the entry point for the bashed-nano editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coffeegrind123/bashed-nano/internal/app"
	"github.com/coffeegrind123/bashed-nano/internal/config"
	"github.com/coffeegrind123/bashed-nano/internal/logger"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bashed-nano", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bashed-nano [-config path] [-version] [file]")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "preferences file `path`")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "bashed-nano %s (%s)\n", version, commit)
		return 0
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// A broken log file is not worth refusing to start over; the logger
	// simply stays quiet.
	_ = logger.Init(cfg.LogFile, cfg.LogLevel)
	defer logger.Close()

	application, err := app.New(cfg, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := application.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
