package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// promotionRows has a White pawn on (1,0) with nothing in front of it.
var promotionRows = []string{
	"....k...",
	"P.......",
	"........",
	"........",
	"........",
	"........",
	"........",
	"....K...",
}

func TestApply_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.Promotion
		fallback  chess.Promotion
		wantKind  chess.Kind
		wantPromo chess.Promotion
	}{
		{"explicit queen", chess.PromoteQueen, chess.NoPromotion, chess.Queen, chess.PromoteQueen},
		{"explicit knight over fallback", chess.PromoteKnight, chess.PromoteQueen, chess.Knight, chess.PromoteKnight},
		{"fallback rook", chess.NoPromotion, chess.PromoteRook, chess.Rook, chess.PromoteRook},
		{"fallback bishop", chess.NoPromotion, chess.PromoteBishop, chess.Bishop, chess.PromoteBishop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, promotionRows...)
			m := chess.Move{From: chess.Sq(1, 0), To: chess.Sq(0, 0), Promotion: tt.promotion}

			got, err := Apply(&pos, m, tt.fallback)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Promotion, tt.wantPromo, "normalized promotion")
			testutil.AssertEqual(t, pos.Get(chess.Sq(0, 0)), chess.W(tt.wantKind))
			testutil.AssertTrue(t, pos.IsEmpty(chess.Sq(1, 0)), "pawn left its square")
		})
	}
}

func TestApply_BlackPromotion(t *testing.T) {
	pos := testutil.MustPosition(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......p",
		"....K.N.",
	)

	got, err := Apply(&pos, testutil.Mv(6, 7, 7, 6), chess.PromoteKnight)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Promotion, chess.PromoteKnight)
	testutil.AssertEqual(t, pos.Get(chess.Sq(7, 6)), chess.B(chess.Knight), "capture with promotion")
}

func TestApply_UnresolvedPromotion(t *testing.T) {
	pos := testutil.MustPosition(t, promotionRows...)
	before := pos

	_, err := Apply(&pos, testutil.Mv(1, 0, 0, 0), chess.NoPromotion)
	testutil.AssertErrorIs(t, err, errors.ErrInternal)
	testutil.AssertPosition(t, pos, before, "position untouched on failure")
}

func TestApply_ClearsPromotionOnOrdinaryMoves(t *testing.T) {
	pos := chess.StartingPosition()
	m := chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4), Promotion: chess.PromoteQueen}

	got, err := Apply(&pos, m, chess.PromoteQueen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, testutil.Mv(6, 4, 4, 4))
	testutil.AssertEqual(t, pos.Get(chess.Sq(4, 4)), chess.W(chess.Pawn), "pawn is not promoted mid-board")
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		move chess.Move
		want error
	}{
		{"empty origin", testutil.Mv(4, 4, 3, 4), errors.ErrInternal},
		{"origin off board", testutil.Mv(-1, 0, 0, 0), errors.ErrInvalidSquare},
		{"destination off board", testutil.Mv(6, 0, 6, 8), errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := chess.StartingPosition()
			_, err := Apply(&pos, tt.move, chess.PromoteQueen)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestApply_Capture(t *testing.T) {
	pos := testutil.MustPosition(t,
		"....k...",
		"........",
		"........",
		"...p....",
		"........",
		"........",
		"........",
		"...QK...",
	)

	_, err := Apply(&pos, testutil.Mv(7, 3, 3, 3), chess.PromoteQueen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.Get(chess.Sq(3, 3)), chess.W(chess.Queen))
	testutil.AssertEqual(t, len(pos.Occupied(chess.Black)), 1, "only the black king remains")
}

func TestApply_DiagonalCaptureIsNotEnPassant(t *testing.T) {
	pos := testutil.MustPosition(t,
		"....k...",
		"........",
		"...n....",
		"...pP...",
		"........",
		"........",
		"........",
		"....K...",
	)

	_, err := Apply(&pos, testutil.Mv(3, 4, 2, 3), chess.PromoteQueen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.Get(chess.Sq(3, 3)), chess.B(chess.Pawn), "pawn beside the origin survives")
	testutil.AssertEqual(t, pos.Get(chess.Sq(2, 3)), chess.W(chess.Pawn))
}

func TestReconstruct(t *testing.T) {
	h := enPassantHistory()
	st, err := Reconstruct(h, chess.PromoteQueen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.History, h)

	// Incremental successors agree with a full replay.
	step := mustReconstruct(t, nil)
	for _, m := range h {
		step, _, err = step.With(m)
		testutil.AssertNoError(t, err)
	}
	testutil.AssertPosition(t, step.Position, st.Position)
	testutil.AssertEqual(t, step.History, st.History)
}

func TestReconstruct_OwnsHistory(t *testing.T) {
	h := enPassantHistory()
	st := mustReconstruct(t, h)
	st.History[0] = testutil.Mv(6, 0, 5, 0)
	testutil.AssertEqual(t, h[0], testutil.Mv(6, 4, 4, 4), "caller's history unchanged")
}

func TestReconstruct_ReportsFailingPly(t *testing.T) {
	h := testutil.Plies([4]int{6, 4, 4, 4}, [4]int{3, 3, 2, 3})
	_, err := Reconstruct(h, chess.PromoteQueen)
	testutil.AssertErrorIs(t, err, errors.ErrInternal)
	testutil.AssertContains(t, err.Error(), "replaying ply 2")
}

func TestStateWith_Sandbox(t *testing.T) {
	st := mustReconstruct(t, testutil.Plies([4]int{6, 4, 4, 4}))
	before := st.Position

	a, _, err := st.With(testutil.Mv(1, 4, 3, 4))
	testutil.AssertNoError(t, err)
	b, _, err := st.With(testutil.Mv(1, 3, 3, 3))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, st.Ply(), 1, "parent history length")
	testutil.AssertPosition(t, st.Position, before, "parent position")
	testutil.AssertEqual(t, a.History[1], testutil.Mv(1, 4, 3, 4))
	testutil.AssertEqual(t, b.History[1], testutil.Mv(1, 3, 3, 3))
}
