package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/treetop/internal/store"
)

// ActionMsg asks the owner of the store to dispatch Action.
type ActionMsg struct {
	Action store.Action
}

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// Dispatch wraps a store action in a command.
func Dispatch(a store.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Action: a} }
}
