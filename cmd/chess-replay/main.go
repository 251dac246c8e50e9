// chess-replay rebuilds saved chess games from their move history and reports
// how each one stands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/logging"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1 // at least one record could not be loaded or replayed
	exitUsage   = 2
	stdinMarker = "-"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, logger, flag.Args(), os.Stdin)
	stop()
	logger.Sync() //nolint:errcheck,gosec // G104: cleanup on exit
	os.Exit(code)
}

// run replays every named input (stdin when there are none) and writes the
// report to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, stdin io.Reader) int {
	if len(args) == 0 {
		args = []string{stdinMarker}
	}

	jobs, failed := loadJobs(args, stdin, cfg.Game, logger)
	logger.Debug("records loaded", zap.Int("count", len(jobs)), zap.Int("workers", cfg.Workers))

	results := worker.ReplayAll(ctx, jobs, worker.Replayer(cfg.Game, logger),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(len(jobs)+1),
	)
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn("replay failed", zap.String("file", r.Name), zap.Error(r.Err))
		}
	}

	if err := writeReport(output.NewWriter(cfg.OutputFile, cfg.Output), results); err != nil {
		logger.Error("writing report", zap.Error(err))
		return exitFailed
	}
	if ctx.Err() != nil {
		logger.Warn("interrupted", zap.Int("replayed", len(results)), zap.Int("total", len(jobs)))
		return exitFailed
	}
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

func writeReport(w output.ResultWriter, results []worker.Result) error {
	for i := range results {
		if err := w.WriteResult(&results[i]); err != nil {
			return err
		}
	}
	return w.Close()
}

// loadJobs reads one record per input. Inputs that cannot be read or decoded
// are logged and counted.
func loadJobs(args []string, stdin io.Reader, gc *config.GameConfig, logger *zap.Logger) ([]worker.Job, int) {
	jobs := make([]worker.Job, 0, len(args))
	failed := 0
	for _, name := range args {
		rec, err := readInput(name, stdin, gc)
		if err != nil {
			failed++
			logger.Warn("skipping input", zap.String("file", name), zap.Error(err))
			continue
		}
		jobs = append(jobs, worker.Job{Index: len(jobs), Name: name, Record: rec})
	}
	return jobs, failed
}

func readInput(name string, stdin io.Reader, gc *config.GameConfig) (game.Record, error) {
	if name == stdinMarker {
		return game.ReadRecord(stdin, gc)
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return game.Record{}, err
	}
	defer file.Close() //nolint:errcheck // read-only
	return game.ReadRecord(file, gc)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(exitUsage)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitUsage)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [record-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays saved chess games and reports their state.\n")
	fmt.Fprintf(os.Stderr, "Each file holds one JSON record; '-' or no files reads stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status: 0 all games replayed, 1 some record failed, 2 bad options.\n")
}
