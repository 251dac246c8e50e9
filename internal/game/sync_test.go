package game

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestSyncSession_ConcurrentAccess(t *testing.T) {
	s := NewSyncSession(New(nil))

	var wg sync.WaitGroup
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if _, err := s.CurrentPosition(); err != nil {
					t.Errorf("CurrentPosition() error: %v", err)
					return
				}
				if _, err := s.MatchState(); err != nil {
					t.Errorf("MatchState() error: %v", err)
					return
				}
				_, _ = s.LegalMoves(chess.Sq(7, 1))
				_ = s.History()
			}
		}()
	}

	for round := 0; round < 20; round++ {
		for _, m := range testutil.FoolsMate {
			if _, err := s.ApplyMove(m); err != nil {
				t.Fatalf("round %d: ApplyMove(%v): %v", round, m, err)
			}
		}
		for range testutil.FoolsMate {
			if _, err := s.UndoLastMove(); err != nil {
				t.Fatalf("round %d: UndoLastMove(): %v", round, err)
			}
		}
	}
	close(done)
	wg.Wait()

	testutil.AssertEqual(t, s.History().Len(), 0)
	testutil.AssertEqual(t, s.SideToMove(), chess.White)
	pos, err := s.CurrentPosition()
	testutil.AssertNoError(t, err)
	testutil.AssertPosition(t, pos, chess.StartingPosition())
}

func TestSyncSession_Delegates(t *testing.T) {
	inner := New(nil)
	s := NewSyncSession(inner)

	testutil.AssertEqual(t, s.ID(), inner.ID())
	testutil.AssertNoError(t, s.SetPromotionChoice(chess.PromoteRook))
	testutil.AssertEqual(t, s.Record().Promotion, chess.PromoteRook)

	_, err := s.ApplyMove(testutil.Mv(6, 4, 4, 4))
	testutil.AssertNoError(t, err)
	piece, ok, err := s.PieceAt(chess.Sq(4, 4))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "pawn arrived")
	testutil.AssertEqual(t, piece, chess.W(chess.Pawn))

	inCheck, err := s.InCheck()
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, inCheck, "no check after one move")
}
