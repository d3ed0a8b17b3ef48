package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/border"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
	"github.com/justinpbarnett/treetop/internal/ui/text"
)

// RowKind identifies what a tree row controls.
type RowKind int

const (
	RowOverride RowKind = iota
	RowBranch
	RowLeaf
)

// Row addresses one pressable line of a tree. Branch and Leaf are indexes;
// Leaf is only meaningful for RowLeaf.
type Row struct {
	Kind   RowKind
	Branch int
	Leaf   int
}

// Tree renders one store tree. It keeps only the branches' local state and
// its own cursor; everything else comes from the snapshot.
type Tree struct {
	name     store.TreeName
	target   store.TreeName
	branches []Branch
	selected Row
	focused  bool
	width    int
	height   int
}

// NewTree builds the branch components from the tree's static children.
// target is the tree the override control toggles.
func NewTree(name, target store.TreeName, spec store.TreeState, display LeafDisplay, onToggle BranchToggleFunc) Tree {
	branches := make([]Branch, len(spec.Children))
	for i, bs := range spec.Children {
		branches[i] = NewBranch(name, bs, display, onToggle)
	}
	return Tree{name: name, target: target, branches: branches}
}

func (t Tree) Name() store.TreeName   { return t.name }
func (t Tree) Target() store.TreeName { return t.target }
func (t Tree) Branches() []Branch     { return t.branches }
func (t Tree) Selected() Row          { return t.selected }
func (t Tree) Focused() bool          { return t.focused }

func (t *Tree) SetFocused(f bool) { t.focused = f }

func (t *Tree) SetSize(w, h int) {
	t.width = w
	t.height = h
}

// Rows lists the visible controls top to bottom, one per rendered line.
func (t Tree) Rows(snap store.AppState) []Row {
	ts, _ := snap.Tree(t.name)
	rows := []Row{{Kind: RowOverride}}
	for i, b := range t.branches {
		rows = append(rows, Row{Kind: RowBranch, Branch: i})
		if !b.LeavesVisible(ts.VisibleOverride) {
			continue
		}
		for j := range b.Leaves() {
			rows = append(rows, Row{Kind: RowLeaf, Branch: i, Leaf: j})
		}
	}
	return rows
}

func (t Tree) index(rows []Row) int {
	for i, r := range rows {
		if r == t.selected {
			return i
		}
	}
	return -1
}

// Sync keeps the selection valid after a transition. A hidden leaf hands the
// cursor to its branch.
func (t *Tree) Sync(snap store.AppState) {
	rows := t.Rows(snap)
	if t.index(rows) >= 0 {
		return
	}
	if t.selected.Kind == RowLeaf && t.selected.Branch < len(t.branches) {
		t.selected = Row{Kind: RowBranch, Branch: t.selected.Branch}
		return
	}
	t.selected = rows[0]
}

// MoveBy shifts the selection by delta rows. It returns false, leaving the
// selection alone, when that would leave the tree.
func (t *Tree) MoveBy(delta int, snap store.AppState) bool {
	rows := t.Rows(snap)
	i := t.index(rows)
	if i < 0 {
		i = 0
	}
	next := i + delta
	if next < 0 || next >= len(rows) {
		return false
	}
	t.selected = rows[next]
	return true
}

func (t *Tree) SelectFirst(snap store.AppState) {
	t.selected = t.Rows(snap)[0]
}

func (t *Tree) SelectLast(snap store.AppState) {
	rows := t.Rows(snap)
	t.selected = rows[len(rows)-1]
}

// SelectLine selects the row rendered on content line i.
func (t *Tree) SelectLine(i int, snap store.AppState) bool {
	rows := t.Rows(snap)
	if i < 0 || i >= len(rows) {
		return false
	}
	t.selected = rows[i]
	return true
}

// Press activates the selected control.
func (t Tree) Press() (Tree, tea.Cmd) {
	switch t.selected.Kind {
	case RowOverride:
		return t, Dispatch(store.ToggleVisibleOverride(t.target))
	case RowBranch:
		if t.selected.Branch >= len(t.branches) {
			return t, nil
		}
		branches := make([]Branch, len(t.branches))
		copy(branches, t.branches)
		branches[t.selected.Branch] = branches[t.selected.Branch].Toggle()
		t.branches = branches
		return t, nil
	case RowLeaf:
		b := t.selected.Branch
		if b >= len(t.branches) {
			return t, nil
		}
		leaves := t.branches[b].Leaves()
		if t.selected.Leaf >= len(leaves) {
			return t, nil
		}
		return t, leaves[t.selected.Leaf].Press()
	}
	return t, nil
}

func (t Tree) overrideLine() string {
	line := styles.ButtonStyle.Render("[expand/collapse]")
	if t.target != t.name {
		line += styles.TextSecondaryStyle.Render(" → " + string(t.target))
	}
	return line
}

// Content renders the rows without a border, one line per Rows entry.
func (t Tree) Content(snap store.AppState) string {
	rows := t.Rows(snap)
	inner := t.width - 2
	lines := make([]string, len(rows))
	for i, r := range rows {
		var line string
		switch r.Kind {
		case RowOverride:
			line = t.overrideLine()
		case RowBranch:
			line = text.Indent(t.branches[r.Branch].View(), 1)
		case RowLeaf:
			line = text.Indent(t.branches[r.Branch].Leaves()[r.Leaf].View(snap), 2)
		}

		marker := "  "
		if t.focused && r == t.selected {
			marker = "› "
			plain := marker + text.Plain(line)
			if inner > 0 {
				plain = text.Fit(plain, inner)
			}
			line = styles.SelectedRowStyle.Render(plain)
		} else {
			line = marker + line
		}
		if inner > 0 {
			line = text.Truncate(line, inner)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Badge summarizes the tree's store flags for the panel border.
func (t Tree) Badge(snap store.AppState) string {
	ts, _ := snap.Tree(t.name)
	return styles.FlagStyle(ts.VisibleOverride).Render("override:"+onOff(ts.VisibleOverride)) + " " +
		styles.FlagStyle(ts.ShowChildMessages).Render("msgs:"+onOff(ts.ShowChildMessages))
}

func (t Tree) View(snap store.AppState) string {
	return border.Panel{
		Title:   string(t.name),
		Badge:   t.Badge(snap),
		Content: t.Content(snap),
		Keybinds: []border.Keybind{
			{Key: "enter", Label: " press"},
			{Key: "y", Label: "ank"},
			{Key: "?", Label: " help"},
		},
		Width:   t.width,
		Height:  t.height,
		Focused: t.focused,
	}.Render()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
