package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the castling destinations open to the king on from.
func castlingMoves(st *State, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	for _, route := range chess.RoutesFor(colour) {
		if route.KingHome() == from && canCastle(st, route) {
			moves = append(moves, route.King.To)
		}
	}
	return moves
}

// canCastle checks the castling conditions that depend on the current
// position and history. Whether the king's destination is attacked is left
// to the legality filter, like any other king move.
func canCastle(st *State, route chess.CastlingRoute) bool {
	pos := &st.Position
	opponent := route.Colour.Opposite()

	// Cannot castle out of check
	if IsAttacked(pos, route.KingHome(), opponent) {
		return false
	}
	// Neither home square may ever have been left, even if the piece came back
	if st.History.AnySource(route.KingHome(), route.RookHome()) {
		return false
	}
	if !isPathClear(pos, route.Between()) {
		return false
	}
	if !pos.Get(route.RookHome()).Is(route.Colour, chess.Rook) {
		return false
	}
	// Cannot castle through check
	return !IsAttacked(pos, route.PassThrough(), opponent)
}

// applyKingMove relocates the king and, when the move is one of the four
// castling king moves, the rook that accompanies it.
func applyKingMove(pos *chess.Position, m chess.Move) {
	pos.Relocate(m.From, m.To)
	if route, ok := chess.CastlingRouteFor(m); ok {
		pos.Relocate(route.Rook.From, route.Rook.To)
	}
}
