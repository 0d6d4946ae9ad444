package store

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store serializes all state transitions: Dispatch applies actions
// strictly in the order callers invoke it, so when racing network
// completions dispatch updates for the same resource, the last
// dispatched one wins. SetAuth and ClearAuth additionally sync the
// persisted session so a restart can restore it.
type Store struct {
	mu      sync.Mutex
	state   State
	persist Persister
	log     zerolog.Logger
}

func New(persist Persister, log zerolog.Logger) *Store {
	return &Store{
		state:   initialState(),
		persist: persist,
		log:     log,
	}
}

func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)

	if s.persist == nil {
		return
	}
	switch a := action.(type) {
	case SetAuth:
		if err := s.persist.Save(Session{Token: a.Token, User: a.User}); err != nil {
			s.log.Warn().Err(err).Msg("persist session failed")
		}
	case UpdateUser:
		if s.state.Auth.Token != "" {
			if err := s.persist.Save(Session{Token: s.state.Auth.Token, User: a.User}); err != nil {
				s.log.Warn().Err(err).Msg("persist session failed")
			}
		}
	case ClearAuth:
		if err := s.persist.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("clear persisted session failed")
		}
	}
}

// State returns a snapshot of the current state. Slices and the
// reviews map are never mutated in place by the reducer, so the
// snapshot is safe to read concurrently with later dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
