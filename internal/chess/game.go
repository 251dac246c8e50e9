package chess

// History is the ordered record of applied moves. Together with the
// starting layout it is the entire state of a game: every position is
// derived by replaying it.
//
// A History value must not be shared between owners that both append;
// use Clone or With to obtain an independent copy.
type History []Move

// Len returns the number of plies played.
func (h History) Len() int {
	return len(h)
}

// Last returns the most recent move and true, or false if no moves were played.
func (h History) Last() (Move, bool) {
	if len(h) == 0 {
		return Move{}, false
	}
	return h[len(h)-1], true
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	c := make(History, len(h), len(h)+1)
	copy(c, h)
	return c
}

// With returns a new history with m appended. The receiver is never modified.
func (h History) With(m Move) History {
	c := make(History, len(h), len(h)+1)
	copy(c, h)
	return append(c, m)
}

// Truncate returns the first n moves. n is clamped to [0, Len()].
func (h History) Truncate(n int) History {
	if n < 0 {
		n = 0
	}
	if n > len(h) {
		n = len(h)
	}
	return h[:n:n]
}

// AnySource reports whether any recorded move started on one of the given squares.
func (h History) AnySource(squares ...Square) bool {
	for _, m := range h {
		for _, sq := range squares {
			if m.From == sq {
				return true
			}
		}
	}
	return false
}

// SideToMove returns whose turn it is after the history, given which side moved first.
func (h History) SideToMove(first Colour) Colour {
	if len(h)%2 == 0 {
		return first
	}
	return first.Opposite()
}
