package engine

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestLegalMoves_MatchDragontooth plays seeded random games and checks at
// every ply that the set of legal (from, to) pairs agrees with dragontoothmg.
func TestLegalMoves_MatchDragontooth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping differential playouts in short mode")
	}

	const (
		games    = 12
		maxPlies = 80
	)

	for game := 0; game < games; game++ {
		rng := rand.New(rand.NewSource(int64(game) + 1))
		st, err := Reconstruct(nil, chess.PromoteQueen)
		if err != nil {
			t.Fatalf("Reconstruct() error: %v", err)
		}
		toMove := chess.White

		for ply := 0; ply < maxPlies; ply++ {
			ours, err := AllLegalMoves(st, toMove)
			if err != nil {
				t.Fatalf("game %d ply %d: AllLegalMoves() error: %v", game, ply, err)
			}

			fen := toFEN(st, toMove)
			if diff := cmp.Diff(oracleMoves(fen), moveKeys(ours)); diff != "" {
				t.Fatalf("game %d ply %d: legal moves differ for %s (-dragontooth +engine):\n%s\nhistory: %v",
					game, ply, fen, diff, st.History)
			}

			for _, m := range ours {
				next, _, err := st.With(m)
				if err != nil {
					t.Fatalf("game %d ply %d: With(%v) error: %v", game, ply, m, err)
				}
				if attacked, _ := InCheck(&next.Position, toMove); attacked {
					t.Fatalf("game %d ply %d: legal move %v leaves the %v king attacked", game, ply, m, toMove)
				}
			}

			if len(ours) == 0 {
				break
			}
			st, _, err = st.With(ours[rng.Intn(len(ours))])
			if err != nil {
				t.Fatalf("game %d ply %d: With() error: %v", game, ply, err)
			}
			toMove = toMove.Opposite()
		}
	}
}

// oracleMoves returns dragontoothmg's legal moves for fen as sorted,
// de-duplicated "from-to" keys. Promotion variants collapse to one key.
func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	for _, m := range board.GenerateLegalMoves() {
		seen[squareKey(indexSquare(m.From()))+"-"+squareKey(indexSquare(m.To()))] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func moveKeys(moves []chess.Move) []string {
	keys := make([]string, 0, len(moves))
	for _, m := range moves {
		keys = append(keys, squareKey(m.From)+"-"+squareKey(m.To))
	}
	sort.Strings(keys)
	return keys
}

// indexSquare converts a dragontoothmg square index (a1 = 0, h8 = 63).
func indexSquare(idx uint8) chess.Square {
	return chess.Sq(chess.BoardSize-1-int(idx)/8, int(idx)%8)
}

// squareKey renders a square in algebraic form; rank 0 is the eighth rank.
func squareKey(sq chess.Square) string {
	return string(rune('a'+sq.File)) + strconv.Itoa(chess.BoardSize-sq.Rank)
}

// toFEN encodes a state for the oracle. Castling rights follow this engine's
// rule: neither home square has been a move source and both pieces stand there.
func toFEN(st *State, toMove chess.Colour) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := st.Position.Get(chess.Sq(rank, file))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	if toMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	for _, r := range []struct {
		colour chess.Colour
		side   chess.Side
		letter string
	}{
		{chess.White, chess.ShortCastle, "K"},
		{chess.White, chess.LongCastle, "Q"},
		{chess.Black, chess.ShortCastle, "k"},
		{chess.Black, chess.LongCastle, "q"},
	} {
		for _, route := range chess.RoutesFor(r.colour) {
			if route.Side != r.side {
				continue
			}
			if st.History.AnySource(route.KingHome(), route.RookHome()) {
				continue
			}
			if st.Position.Get(route.KingHome()).Is(r.colour, chess.King) &&
				st.Position.Get(route.RookHome()).Is(r.colour, chess.Rook) {
				rights += r.letter
			}
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	ep := "-"
	if last, ok := st.History.Last(); ok && last.RankSpan() == 2 && st.Position.Get(last.To).Kind == chess.Pawn {
		ep = squareKey(chess.Sq((last.From.Rank+last.To.Rank)/2, last.To.File))
	}
	sb.WriteString(" " + ep + " 0 1")
	return sb.String()
}

func TestToFEN_StartingPosition(t *testing.T) {
	st, err := Reconstruct(nil, chess.PromoteQueen)
	if err != nil {
		t.Fatalf("Reconstruct() error: %v", err)
	}
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := toFEN(st, chess.White); got != want {
		t.Errorf("toFEN() = %q, want %q", got, want)
	}

	st, _, err = st.With(chess.NewMove(chess.Sq(6, 4), chess.Sq(4, 4)))
	if err != nil {
		t.Fatalf("With() error: %v", err)
	}
	want = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := toFEN(st, chess.Black); got != want {
		t.Errorf("toFEN() after e-pawn double step = %q, want %q", got, want)
	}
}
