package chess

import "fmt"

// Square identifies a board cell by rank and file, both 0-7.
// Rank 0 is Black's back rank and rank 7 is White's.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// Sq is shorthand for Square{Rank: rank, File: file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away. The result may be off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String returns the square as "(rank,file)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
}

// Move represents a single ply: a piece moving From one square To another.
// Promotion is only meaningful for pawns reaching the last rank.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion Promotion `json:"promotion,omitempty"`
}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// Equal reports whether two moves share the same source and destination.
// The promotion choice is not part of a move's identity.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// Valid reports whether both squares lie on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// RankSpan returns the absolute number of ranks the move covers.
func (m Move) RankSpan() int {
	d := m.To.Rank - m.From.Rank
	if d < 0 {
		return -d
	}
	return d
}

// String returns the move as "(r,f)-(r,f)", with "=p" appended for a promotion.
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.Promotion.Valid() {
		s += "=" + string(m.Promotion.Kind().Letter())
	}
	return s
}
