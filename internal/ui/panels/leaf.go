package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
)

const leafButtonLabel = "Communicate with sibling"

// Leaf is one terminal row. It holds no state of its own: the message flag
// is read from the snapshot on every render.
type Leaf struct {
	tree    store.TreeName
	spec    store.LeafSpec
	display LeafDisplay
}

func NewLeaf(tree store.TreeName, spec store.LeafSpec, display LeafDisplay) Leaf {
	return Leaf{tree: tree, spec: spec, display: display}
}

func (l Leaf) Name() string { return l.spec.Name }

// Action toggles the message flag of the whole owning tree, not just this
// leaf's siblings.
func (l Leaf) Action() store.Action {
	return store.ToggleChildMessage(l.tree)
}

func (l Leaf) Press() tea.Cmd {
	return Dispatch(l.Action())
}

// ShowMessage reads the leaf's tree flag from snap.
func (l Leaf) ShowMessage(snap store.AppState) bool {
	t, _ := snap.Tree(l.tree)
	return t.ShowChildMessages
}

func (l Leaf) View(snap store.AppState) string {
	line := "Leaf " + l.spec.Name + " " + styles.ButtonStyle.Render("["+leafButtonLabel+"]")

	display := l.display
	if display == nil {
		display = DefaultLeafDisplay{}
	}
	return line + display.Render(l.ShowMessage(snap))
}
