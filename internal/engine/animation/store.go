package animation

import "sync"

// Store shares an AnimationState between the input side, which edits
// control points, and the frame loop, which evaluates them. Readers get
// a point-in-time copy that later edits do not touch.
type Store struct {
	mu    sync.RWMutex
	state *AnimationState
}

// NewStore creates a store holding a copy of state.
func NewStore(state *AnimationState) *Store {
	return &Store{state: state.Clone()}
}

// Load returns a snapshot of the current state.
func (s *Store) Load() *AnimationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Replace swaps in a copy of state.
func (s *Store) Replace(state *AnimationState) {
	c := state.Clone()
	s.mu.Lock()
	s.state = c
	s.mu.Unlock()
}

// Update applies fn to the stored state under the write lock. If fn
// returns an error the state is left unchanged.
func (s *Store) Update(fn func(*AnimationState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}
