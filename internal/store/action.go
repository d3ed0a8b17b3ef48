package store

// ActionType tags an Action. The string values match the action names the
// demo has always used.
type ActionType string

const (
	ActionToggleVisibleOverride ActionType = "tree-toggle-visible-override"
	ActionToggleChildMessage    ActionType = "tree-toggle-child-message"
)

type Action struct {
	Type     ActionType
	TreeName TreeName
}

func ToggleVisibleOverride(name TreeName) Action {
	return Action{Type: ActionToggleVisibleOverride, TreeName: name}
}

func ToggleChildMessage(name TreeName) Action {
	return Action{Type: ActionToggleChildMessage, TreeName: name}
}
