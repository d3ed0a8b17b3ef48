package store

// Listener observes a completed transition.
type Listener func(prev, next AppState, action Action)

// Store holds the current snapshot. It is owned by the UI update loop, which
// delivers one message at a time, so it carries no locking.
type Store struct {
	state     AppState
	reduce    Reducer
	listeners []Listener
}

func NewStore(initial AppState) *Store {
	return NewStoreWithReducer(initial, Reduce)
}

func NewStoreWithReducer(initial AppState, reduce Reducer) *Store {
	return &Store{state: initial, reduce: reduce}
}

// State returns the current snapshot.
func (s *Store) State() AppState {
	return s.state
}

func (s *Store) Tree(name TreeName) (TreeState, bool) {
	return s.state.Tree(name)
}

// Dispatch runs action through the reducer and replaces the snapshot. On
// error the snapshot is left untouched and listeners are not called.
func (s *Store) Dispatch(action Action) error {
	prev := s.state
	next, err := s.reduce(prev, action)
	if err != nil {
		return err
	}
	s.state = next
	for _, fn := range s.listeners {
		fn(prev, next, action)
	}
	return nil
}

func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}
