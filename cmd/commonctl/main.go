package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"modeldb-common/internal/adapters/primary/cli"
	"modeldb-common/internal/config"
	"modeldb-common/internal/core/services"
	"modeldb-common/internal/metrics"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(cli.ExitFailure)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("commonctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(fs, nil)
			return nil
		}
		return &cli.ExitError{Code: cli.ExitUsage, Err: err}
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Err: fmt.Errorf("load config: %w", err)}
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapter (Recorder port)
	m := metrics.New()
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
				log.WithError(werr).WithField("path", cfg.Metrics.Textfile).Warn("failed to write metrics textfile")
			}
		}()
	}

	// Core Services (Application Layer)
	kvSvc := services.NewKeyValueService(m)
	predicateSvc := services.NewPredicateService(m)
	artifactSvc := services.NewArtifactService(m)
	paginationSvc := services.NewPaginationService(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit, m)
	enumSvc := services.NewEnumService(m)

	// Primary Adapter (CLI Handlers)
	h := cli.New(kvSvc, predicateSvc, artifactSvc, paginationSvc, enumSvc, os.Stdin, os.Stdout, cfg.Output.Format)

	if fs.NArg() == 0 {
		printUsage(fs, h)
		return &cli.ExitError{Code: cli.ExitUsage, Err: errors.New("no command given")}
	}
	return h.Run(fs.Arg(0), fs.Args()[1:])
}

func printUsage(fs *pflag.FlagSet, h *cli.Handler) {
	fmt.Fprintln(os.Stderr, "Usage: commonctl [global flags] <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Global flags:")
	fmt.Fprint(os.Stderr, fs.FlagUsages())
	if h != nil {
		fmt.Fprintln(os.Stderr)
		h.Usage(os.Stderr)
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
