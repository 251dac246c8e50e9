package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds the settings a session starts with.
type GameConfig struct {
	// InitialSide moves first.
	InitialSide chess.Colour

	// Promotion is used for pawn moves that reach the last rank without
	// naming a piece. It can be changed during play.
	Promotion chess.Promotion

	// CachePositions memoizes the reconstructed position per history length.
	CachePositions bool
}

// NewGameConfig creates a GameConfig for a standard game: White first, queen promotion.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		InitialSide:    chess.White,
		Promotion:      chess.PromoteQueen,
		CachePositions: true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if !g.InitialSide.Valid() {
		return fmt.Errorf("initial side %d: %w", int(g.InitialSide), errors.ErrInvalidConfig)
	}
	if !g.Promotion.Valid() {
		return fmt.Errorf("default promotion %v: %w", g.Promotion, errors.ErrInvalidConfig)
	}
	return nil
}
