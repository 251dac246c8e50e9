package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pawnMoves returns the pseudo-legal destinations of a pawn.
func pawnMoves(st *State, from chess.Square, colour chess.Colour) []chess.Square {
	pos := &st.Position
	dir := chess.Forward(colour)
	var moves []chess.Square

	// Forward move
	one := from.Offset(dir, 0)
	if pos.IsEmpty(one) {
		moves = append(moves, one)
		// Double push from starting rank
		two := from.Offset(2*dir, 0)
		if from.Rank == chess.PawnRank(colour) && pos.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Captures
	for _, df := range [...]int{-1, 1} {
		to := from.Offset(dir, df)
		if !to.Valid() {
			continue
		}
		target, occupied := pos.At(to)
		if occupied {
			if target.Colour != colour {
				moves = append(moves, to)
			}
			continue
		}
		if enPassantAvailable(st, from, df, colour) {
			moves = append(moves, to)
		}
	}

	return moves
}

// enPassantAvailable reports whether the pawn on from may capture en passant
// toward file offset df: the enemy pawn beside it must have arrived there by
// a two-rank step on the immediately preceding ply.
func enPassantAvailable(st *State, from chess.Square, df int, colour chess.Colour) bool {
	beside := from.Offset(0, df)
	if !st.Position.Get(beside).Is(colour.Opposite(), chess.Pawn) {
		return false
	}
	last, ok := st.History.Last()
	return ok && last.To == beside && last.RankSpan() == 2
}

// applyPawnMove moves a pawn, removing a pawn captured en passant and
// substituting the promoted piece on the last rank.
func applyPawnMove(pos *chess.Position, pawn chess.Piece, m chess.Move, fallback chess.Promotion) (chess.Move, error) {
	df := m.To.File - m.From.File

	// A diagonal step onto an empty square is an en passant capture; the
	// captured pawn stands beside the origin, not on the destination.
	if abs(df) == 1 && m.To.Rank-m.From.Rank == chess.Forward(pawn.Colour) && pos.IsEmpty(m.To) {
		pos.Clear(m.From.Offset(0, df))
	}

	if m.To.Rank != chess.BlackBackRank && m.To.Rank != chess.WhiteBackRank {
		pos.Relocate(m.From, m.To)
		m.Promotion = chess.NoPromotion
		return m, nil
	}

	promo := m.Promotion
	if !promo.Valid() {
		promo = fallback
	}
	if !promo.Valid() {
		return chess.Move{}, errors.Internal("no promotion piece for %v", m)
	}
	pos.Clear(m.From)
	pos.Set(m.To, chess.Piece{Colour: pawn.Colour, Kind: promo.Kind()})
	m.Promotion = promo
	return m, nil
}
