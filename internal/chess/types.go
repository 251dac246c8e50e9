// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid colour %d", int(c))
	}
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes "white"/"w" or "black"/"b".
func (c *Colour) UnmarshalText(text []byte) error {
	colour, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = colour
	return nil
}

// ParseColour parses a colour name, case-insensitively.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
}

// Kind represents a chess piece type. None marks an empty square.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotion is the piece a pawn becomes on reaching the last rank.
// NoPromotion means no choice was made.
type Promotion int

const (
	NoPromotion Promotion = iota
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// Kind returns the piece kind a pawn is replaced with, or None for NoPromotion.
func (p Promotion) Kind() Kind {
	switch p {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return None
	}
}

// Valid reports whether p names one of the four promotion pieces.
func (p Promotion) Valid() bool {
	return p.Kind() != None
}

// String returns the lower-case name of the promotion piece.
func (p Promotion) String() string {
	if !p.Valid() {
		return "none"
	}
	return strings.ToLower(p.Kind().String())
}

// MarshalText encodes the promotion by piece name.
func (p Promotion) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a promotion piece name.
func (p *Promotion) UnmarshalText(text []byte) error {
	promo, err := ParsePromotion(string(text))
	if err != nil {
		return err
	}
	*p = promo
	return nil
}

// ParsePromotion parses a promotion piece name or letter.
// The empty string and "none" yield NoPromotion.
func ParsePromotion(s string) (Promotion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoPromotion, nil
	case "queen", "q":
		return PromoteQueen, nil
	case "rook", "r":
		return PromoteRook, nil
	case "bishop", "b":
		return PromoteBishop, nil
	case "knight", "n":
		return PromoteKnight, nil
	}
	return NoPromotion, fmt.Errorf("unknown promotion piece %q", s)
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// NoPiece is the contents of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the piece letter, upper case for White and lower case for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return l
	}
	return l + ('a' - 'A')
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// Back ranks in board orientation: Black plays from rank 0, White from rank 7.
	BlackBackRank = 0
	WhiteBackRank = BoardSize - 1
)

// BackRank returns the home rank of the given colour's pieces.
func BackRank(colour Colour) int {
	if colour == White {
		return WhiteBackRank
	}
	return BlackBackRank
}

// PawnRank returns the starting rank of the given colour's pawns.
func PawnRank(colour Colour) int {
	if colour == White {
		return WhiteBackRank - 1
	}
	return BlackBackRank + 1
}

// Forward returns the rank step a pawn of the given colour advances by.
// White pawns move toward rank 0, Black pawns toward rank 7.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
