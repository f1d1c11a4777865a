// SPDX-License-Identifier: MIT

// Command buscount reads a bus-count instance and prints the number of bus
// trips needed to bring every worker to the hub.
//
// Usage:
//
//	buscount [flags] < instance.txt
//	buscount -input instance.yaml -explain
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/busroute/fleet"
	"github.com/katalvlaran/busroute/instance"
	"github.com/katalvlaran/busroute/logger"
	"github.com/katalvlaran/busroute/metrics"
	"github.com/katalvlaran/busroute/planner"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type config struct {
	input       string
	format      string
	explain     bool
	legacy      bool
	strict      bool
	metricsFile string
	logLevel    string
	version     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("buscount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", "", "instance file (default: stdin)")
	fs.StringVar(&cfg.format, "format", "auto", "input format: text, yaml or auto (by file extension)")
	fs.BoolVar(&cfg.explain, "explain", false, "print routes and the per-bus breakdown after the answer")
	fs.BoolVar(&cfg.legacy, "legacy", false, "only count partial buses that fill up or have no stops on the way")
	fs.BoolVar(&cfg.strict, "strict", false, "enforce the problem-statement bounds and unique shortest routes")
	fs.StringVar(&cfg.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if cfg.version {
		fmt.Fprintf(stdout, "buscount %s\n", version)
		return exitOK
	}

	level, err := logger.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logger.New(stderr, level)

	if fs.NArg() > 0 {
		log.Error().Strs("args", fs.Args()).Msg("unexpected arguments")
		return exitUsage
	}
	format, ok := instance.ParseFormat(cfg.format)
	if !ok {
		log.Error().Str("format", cfg.format).Msg("unknown input format")
		return exitUsage
	}

	if err = solve(cfg, format, stdin, stdout, log); err != nil {
		log.Error().Err(err).Msg("buscount failed")
		return exitFail
	}

	return exitOK
}

// solve loads the instance, runs the planner and prints the answer. Nothing
// reaches stdout unless every step, metrics included, succeeded.
func solve(cfg config, format instance.Format, stdin io.Reader, stdout io.Writer, log zerolog.Logger) error {
	var iopts []instance.Option
	popts := []planner.Option{planner.WithLogger(log)}
	if cfg.strict {
		iopts = append(iopts, instance.WithStrict())
		popts = append(popts, planner.WithStrict())
	}
	if cfg.legacy {
		popts = append(popts, planner.WithPolicy(fleet.CountLegacy))
	}

	var rec *metrics.Recorder
	if cfg.metricsFile != "" {
		rec = metrics.New(true)
		popts = append(popts, planner.WithMetrics(rec))
	}

	in, err := load(cfg.input, format, stdin, iopts)
	if err != nil {
		return err
	}

	plan, err := planner.Solve(in, popts...)
	if rec != nil {
		if werr := rec.WriteTextfile(cfg.metricsFile); werr != nil {
			return errors.Join(err, werr)
		}
	}
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(stdout, "%d\n", plan.Trips()); err != nil {
		return err
	}
	if cfg.explain {
		return plan.Explain(stdout)
	}

	return nil
}

// load reads from stdin when path is empty or "-".
func load(path string, format instance.Format, stdin io.Reader, opts []instance.Option) (*instance.Instance, error) {
	if path == "" || path == "-" {
		return instance.Read(stdin, format, opts...)
	}

	return instance.Load(path, format, opts...)
}
