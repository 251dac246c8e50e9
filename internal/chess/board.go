package chess

import "strings"

// Position is a snapshot of all 64 squares, indexed [rank][file].
// It is always derived from a History and never the source of truth.
// Position is a value type; assigning it copies the board.
type Position struct {
	Squares [BoardSize][BoardSize]Piece
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns the standard starting layout: Black's pieces on
// ranks 0 and 1, White's on ranks 7 and 6.
func StartingPosition() Position {
	var p Position
	for file := 0; file < BoardSize; file++ {
		p.Squares[BlackBackRank][file] = B(backRank[file])
		p.Squares[PawnRank(Black)][file] = B(Pawn)
		p.Squares[PawnRank(White)][file] = W(Pawn)
		p.Squares[WhiteBackRank][file] = W(backRank[file])
	}
	return p
}

// At returns the piece on sq and whether the square is occupied.
// Off-board squares are reported as empty.
func (p *Position) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	piece := p.Squares[sq.Rank][sq.File]
	return piece, !piece.IsEmpty()
}

// Get returns the piece on sq, or NoPiece if it is empty or off the board.
func (p *Position) Get(sq Square) Piece {
	piece, _ := p.At(sq)
	return piece
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return sq.Valid() && p.Squares[sq.Rank][sq.File].IsEmpty()
}

// Set places a piece on sq. Setting an off-board square is a no-op.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Squares[sq.Rank][sq.File] = piece
	}
}

// Clear empties sq.
func (p *Position) Clear(sq Square) {
	p.Set(sq, NoPiece)
}

// Relocate moves whatever stands on from to to, vacating from.
func (p *Position) Relocate(from, to Square) {
	piece := p.Get(from)
	p.Clear(from)
	p.Set(to, piece)
}

// FindKing returns the square of the given colour's king.
func (p *Position) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p.Squares[rank][file].Is(colour, King) {
				return Sq(rank, file), true
			}
		}
	}
	return Square{}, false
}

// Occupied returns every square holding a piece of the given colour, rank by rank.
func (p *Position) Occupied(colour Colour) []Square {
	var squares []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			piece := p.Squares[rank][file]
			if !piece.IsEmpty() && piece.Colour == colour {
				squares = append(squares, Sq(rank, file))
			}
		}
	}
	return squares
}

// String renders the position as eight lines of piece letters, rank 0 first.
// White pieces are upper case, Black lower case, empty squares '.'.
func (p *Position) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * (BoardSize + 1))
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(p.Squares[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
