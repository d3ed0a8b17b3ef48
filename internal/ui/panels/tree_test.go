package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/text"
)

func newTestTree(name store.TreeName, onToggle BranchToggleFunc) (Tree, *store.Store) {
	st := store.NewStore(store.InitialState())
	spec, _ := st.Tree(name)
	tr := NewTree(name, store.Tree2, spec, DefaultLeafDisplay{}, onToggle)
	tr.SetSize(60, 12)
	tr.SetFocused(true)
	return tr, st
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestTreeRowsAllOpen(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)

	rows := tr.Rows(st.State())
	want := []Row{
		{Kind: RowOverride},
		{Kind: RowBranch, Branch: 0},
		{Kind: RowLeaf, Branch: 0, Leaf: 0},
		{Kind: RowLeaf, Branch: 0, Leaf: 1},
		{Kind: RowBranch, Branch: 1},
		{Kind: RowLeaf, Branch: 1, Leaf: 0},
		{Kind: RowLeaf, Branch: 1, Leaf: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestTreeLeavesNeedOverrideAndExpanded(t *testing.T) {
	for _, override := range []bool{true, false} {
		for _, expanded := range []bool{true, false} {
			tr, _ := newTestTree(store.Tree1, nil)
			snap := store.InitialStateWith(map[store.TreeName]store.InitialFlags{
				store.Tree1: {VisibleOverride: override, ShowChildMessages: true},
			})
			if !expanded {
				tr.SelectLine(1, snap)
				tr, _ = tr.Press()
			}

			leaves := 0
			for _, r := range tr.Rows(snap) {
				if r.Kind == RowLeaf && r.Branch == 0 {
					leaves++
				}
			}
			want := 0
			if override && expanded {
				want = 2
			}
			if leaves != want {
				t.Errorf("override=%v expanded=%v: %d leaves visible, want %d", override, expanded, leaves, want)
			}
		}
	}
}

func TestTreeOverrideTargetsConfiguredTree(t *testing.T) {
	tr, _ := newTestTree(store.Tree1, nil)
	tr.selected = Row{Kind: RowOverride}
	if tr.Target() != store.Tree2 {
		t.Fatalf("Target() = %q, want tree2", tr.Target())
	}

	_, cmd := tr.Press()
	msg, ok := runCmd(t, cmd).(ActionMsg)
	if !ok {
		t.Fatalf("expected ActionMsg")
	}
	if msg.Action != store.ToggleVisibleOverride(store.Tree2) {
		t.Errorf("override pressed on tree1 dispatched %+v, want tree2 toggle", msg.Action)
	}
}

func TestTreeOverrideShowsForeignTarget(t *testing.T) {
	tr1, st := newTestTree(store.Tree1, nil)
	if !strings.Contains(tr1.Content(st.State()), "→ tree2") {
		t.Error("tree1 should show that its override targets tree2")
	}
	tr2, _ := newTestTree(store.Tree2, nil)
	if strings.Contains(tr2.Content(st.State()), "→") {
		t.Error("tree2 targets itself and should not show an arrow")
	}
}

func TestTreeBranchPressCallsCallback(t *testing.T) {
	var gotTree store.TreeName
	var gotExpanded []bool
	onToggle := func(tree store.TreeName, expanded bool) {
		gotTree = tree
		gotExpanded = append(gotExpanded, expanded)
	}
	tr, st := newTestTree(store.Tree2, onToggle)
	tr.SelectLine(4, st.State()) // branch2

	tr, _ = tr.Press()
	if tr.Branches()[1].Expanded() {
		t.Error("branch2 should be collapsed")
	}
	if !tr.Branches()[0].Expanded() {
		t.Error("branch1 should be untouched")
	}
	tr, _ = tr.Press()

	if gotTree != store.Tree2 {
		t.Errorf("callback tree = %q", gotTree)
	}
	if len(gotExpanded) != 2 || gotExpanded[0] || !gotExpanded[1] {
		t.Errorf("callback values = %v, want [false true]", gotExpanded)
	}
}

func TestTreePressDoesNotMutateOriginal(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	tr.SelectLine(1, st.State())

	toggled, _ := tr.Press()
	if !tr.Branches()[0].Expanded() {
		t.Error("receiver tree value changed")
	}
	if toggled.Branches()[0].Expanded() {
		t.Error("returned tree should have branch1 collapsed")
	}
}

func TestTreeLeafPressDispatchesChildMessage(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	tr.SelectLine(6, st.State())

	_, cmd := tr.Press()
	msg := runCmd(t, cmd).(ActionMsg)
	if msg.Action != store.ToggleChildMessage(store.Tree1) {
		t.Errorf("leaf dispatched %+v", msg.Action)
	}
}

func TestTreeSyncMovesHiddenLeafToBranch(t *testing.T) {
	tr, st := newTestTree(store.Tree2, nil)
	tr.SelectLine(6, st.State()) // branch2/child2

	if err := st.Dispatch(store.ToggleVisibleOverride(store.Tree2)); err != nil {
		t.Fatal(err)
	}
	tr.Sync(st.State())

	if got := tr.Selected(); got != (Row{Kind: RowBranch, Branch: 1}) {
		t.Errorf("selection after hide = %+v, want branch2", got)
	}
}

func TestTreeMoveBy(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	snap := st.State()

	if tr.MoveBy(-1, snap) {
		t.Error("moving above the first row should report false")
	}
	if !tr.MoveBy(2, snap) {
		t.Fatal("expected move to succeed")
	}
	if tr.Selected() != (Row{Kind: RowLeaf, Branch: 0, Leaf: 0}) {
		t.Errorf("selected %+v", tr.Selected())
	}
	tr.SelectLast(snap)
	if tr.MoveBy(1, snap) {
		t.Error("moving past the last row should report false")
	}
	tr.SelectFirst(snap)
	if tr.Selected().Kind != RowOverride {
		t.Error("SelectFirst should land on the override row")
	}
}

func TestTreeSelectLineOutOfRange(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	if tr.SelectLine(7, st.State()) || tr.SelectLine(-1, st.State()) {
		t.Error("out of range lines should not select")
	}
}

func TestTreeContentOneLinePerRow(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	lines := strings.Split(tr.Content(st.State()), "\n")
	if len(lines) != len(tr.Rows(st.State())) {
		t.Fatalf("%d lines for %d rows", len(lines), len(tr.Rows(st.State())))
	}
	if !strings.HasPrefix(text.Plain(lines[0]), "› ") {
		t.Errorf("selected row should carry the cursor marker: %q", text.Plain(lines[0]))
	}
	if !strings.Contains(lines[2], "Leaf child1") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestTreeViewPanel(t *testing.T) {
	tr, st := newTestTree(store.Tree1, nil)
	view := tr.View(st.State())

	if n := len(strings.Split(view, "\n")); n != 12 {
		t.Errorf("view has %d lines, want 12", n)
	}
	for _, want := range []string{"tree1", "override:on", "msgs:on", "Branch branch1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
