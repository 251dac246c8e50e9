package game

import "github.com/lgbarn/chess-rules-go/internal/engine"

// positionCache memoizes reconstructed states by history length.
// Entry n is the state after the first n plies. It only ever holds a
// prefix of the session's history: appends extend it by one and undo
// truncates it to the new length.
type positionCache struct {
	states []*engine.State
}

func newPositionCache() *positionCache {
	return &positionCache{states: make([]*engine.State, 0, 64)}
}

// get returns the state after n plies, if cached.
func (c *positionCache) get(n int) (*engine.State, bool) {
	if c == nil || n < 0 || n >= len(c.states) {
		return nil, false
	}
	return c.states[n], true
}

// put records st if it extends the cached prefix by exactly one ply.
func (c *positionCache) put(st *engine.State) {
	if c == nil {
		return
	}
	if st.Ply() == len(c.states) {
		c.states = append(c.states, st)
	}
}

// truncate drops every entry beyond n plies.
func (c *positionCache) truncate(n int) {
	if c == nil || n+1 >= len(c.states) {
		return
	}
	if n < 0 {
		n = -1
	}
	for i := n + 1; i < len(c.states); i++ {
		c.states[i] = nil
	}
	c.states = c.states[:n+1]
}

// size returns the number of cached states.
func (c *positionCache) size() int {
	if c == nil {
		return 0
	}
	return len(c.states)
}
