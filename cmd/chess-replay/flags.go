// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the final position")
	showMoves  = flag.Bool("moves", false, "List the normalized moves of each game")

	// Session options
	initialSide = flag.String("side", "white", "Side that moves first in records that do not say (white, black)")
	promotion   = flag.String("promotion", "queen", "Promotion piece for records that do not name one (queen, rook, bishop, knight)")
	noCache     = flag.Bool("nocache", false, "Rebuild every position from the full history")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile  = flag.String("l", "", "Write diagnostics to log file (default: stderr)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of records replayed concurrently (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg.Game); err != nil {
		return err
	}
	applyOutputFlags(cfg.Output)

	cfg.LogLevel = *logLevel
	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg.Validate()
}

// applyGameFlags configures session defaults.
func applyGameFlags(g *config.GameConfig) error {
	side, err := chess.ParseColour(*initialSide)
	if err != nil {
		return fmt.Errorf("-side: %w", err)
	}
	promo, err := chess.ParsePromotion(*promotion)
	if err != nil {
		return fmt.Errorf("-promotion: %w", err)
	}
	g.InitialSide = side
	g.Promotion = promo
	g.CachePositions = !*noCache
	return nil
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(o *config.OutputConfig) {
	o.JSONFormat = *jsonOutput
	o.ShowBoard = !*noBoard
	o.ShowMoves = *showMoves
}
