package panels

import (
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
)

// BranchToggleFunc is called on every expand/collapse with the new value,
// before Toggle returns.
type BranchToggleFunc func(tree store.TreeName, expanded bool)

// Branch owns its expanded flag; the store never sees it.
type Branch struct {
	tree     store.TreeName
	spec     store.BranchSpec
	expanded bool
	onToggle BranchToggleFunc
	leaves   []Leaf
}

func NewBranch(tree store.TreeName, spec store.BranchSpec, display LeafDisplay, onToggle BranchToggleFunc) Branch {
	leaves := make([]Leaf, len(spec.Children))
	for i, ls := range spec.Children {
		leaves[i] = NewLeaf(tree, ls, display)
	}
	return Branch{
		tree:     tree,
		spec:     spec,
		expanded: true,
		onToggle: onToggle,
		leaves:   leaves,
	}
}

func (b Branch) Name() string   { return b.spec.Name }
func (b Branch) Expanded() bool { return b.expanded }
func (b Branch) Leaves() []Leaf { return b.leaves }

// LeavesVisible is true only when both the tree override and the branch are
// open.
func (b Branch) LeavesVisible(visibleOverride bool) bool {
	return visibleOverride && b.expanded
}

// Toggle flips expanded and reports the new value to the callback, if any.
func (b Branch) Toggle() Branch {
	b.expanded = !b.expanded
	if b.onToggle != nil {
		b.onToggle(b.tree, b.expanded)
	}
	return b
}

func (b Branch) View() string {
	arrow := "▸"
	if b.expanded {
		arrow = "▾"
	}
	return arrow + " " + styles.ButtonStyle.Render("[expand/collapse]") + " Branch " + b.spec.Name
}
