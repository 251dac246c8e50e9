package chess

// Side distinguishes short (kingside) from long (queenside) castling.
type Side int

const (
	ShortCastle Side = iota
	LongCastle
)

// String returns "short" or "long".
func (s Side) String() string {
	if s == LongCastle {
		return "long"
	}
	return "short"
}

// CastlingRoute fixes the king move that requests a castle and the rook
// move that accompanies it.
type CastlingRoute struct {
	Colour Colour
	Side   Side
	King   Move
	Rook   Move
}

// KingHome returns the square the king must start from.
func (r CastlingRoute) KingHome() Square {
	return r.King.From
}

// RookHome returns the square the rook must start from.
func (r CastlingRoute) RookHome() Square {
	return r.Rook.From
}

// Between returns the squares strictly between the king and rook homes.
func (r CastlingRoute) Between() []Square {
	from, to := r.King.From.File, r.Rook.From.File
	if from > to {
		from, to = to, from
	}
	squares := make([]Square, 0, to-from-1)
	for file := from + 1; file < to; file++ {
		squares = append(squares, Sq(r.King.From.Rank, file))
	}
	return squares
}

// PassThrough returns the square the king crosses on its way to its destination.
func (r CastlingRoute) PassThrough() Square {
	return r.Rook.To
}

// CastlingRoutes lists the four canonical castling king/rook move pairs.
var CastlingRoutes = [4]CastlingRoute{
	{
		Colour: Black, Side: ShortCastle,
		King: NewMove(Sq(BlackBackRank, 4), Sq(BlackBackRank, 6)),
		Rook: NewMove(Sq(BlackBackRank, 7), Sq(BlackBackRank, 5)),
	},
	{
		Colour: Black, Side: LongCastle,
		King: NewMove(Sq(BlackBackRank, 4), Sq(BlackBackRank, 2)),
		Rook: NewMove(Sq(BlackBackRank, 0), Sq(BlackBackRank, 3)),
	},
	{
		Colour: White, Side: ShortCastle,
		King: NewMove(Sq(WhiteBackRank, 4), Sq(WhiteBackRank, 6)),
		Rook: NewMove(Sq(WhiteBackRank, 7), Sq(WhiteBackRank, 5)),
	},
	{
		Colour: White, Side: LongCastle,
		King: NewMove(Sq(WhiteBackRank, 4), Sq(WhiteBackRank, 2)),
		Rook: NewMove(Sq(WhiteBackRank, 0), Sq(WhiteBackRank, 3)),
	},
}

// RoutesFor returns the short and long castling routes of a colour.
func RoutesFor(colour Colour) []CastlingRoute {
	routes := make([]CastlingRoute, 0, 2)
	for _, r := range CastlingRoutes {
		if r.Colour == colour {
			routes = append(routes, r)
		}
	}
	return routes
}

// CastlingRouteFor returns the route whose king move equals m, by square equality.
func CastlingRouteFor(m Move) (CastlingRoute, bool) {
	for _, r := range CastlingRoutes {
		if r.King.Equal(m) {
			return r, true
		}
	}
	return CastlingRoute{}, false
}
