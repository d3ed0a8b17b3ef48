package store

import (
	"errors"
	"fmt"
)

// ErrUnknownTree is returned when an action names a tree that is not in the
// snapshot.
var ErrUnknownTree = errors.New("unknown tree")

// Reducer maps a snapshot and an action to the next snapshot.
type Reducer func(AppState, Action) (AppState, error)

// Reduce is the application reducer. Unknown action types return state
// unchanged. On error the input snapshot is returned as-is.
func Reduce(state AppState, action Action) (AppState, error) {
	switch action.Type {
	case ActionToggleVisibleOverride:
		return updateTree(state, action.TreeName, func(t *TreeState) {
			t.VisibleOverride = !t.VisibleOverride
		})
	case ActionToggleChildMessage:
		return updateTree(state, action.TreeName, func(t *TreeState) {
			t.ShowChildMessages = !t.ShowChildMessages
		})
	default:
		return state, nil
	}
}

// updateTree copies the trees map, applies fn to a copy of the named tree and
// returns a snapshot that differs from state only at that tree.
func updateTree(state AppState, name TreeName, fn func(*TreeState)) (AppState, error) {
	t, ok := state.Trees[name]
	if !ok {
		return state, fmt.Errorf("%w: %q", ErrUnknownTree, name)
	}
	fn(&t)

	trees := make(map[TreeName]TreeState, len(state.Trees))
	for k, v := range state.Trees {
		trees[k] = v
	}
	trees[name] = t
	return AppState{Trees: trees}, nil
}
