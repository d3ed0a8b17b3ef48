package store

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// TreeName keys a tree in the store. Only Tree1 and Tree2 exist.
type TreeName string

const (
	Tree1 TreeName = "tree1"
	Tree2 TreeName = "tree2"
)

// KnownTree reports whether name is one of the fixed tree keys.
func KnownTree(name TreeName) bool {
	return name == Tree1 || name == Tree2
}

type LeafSpec struct {
	Name string `yaml:"name"`
}

type BranchSpec struct {
	Name     string     `yaml:"name"`
	Children []LeafSpec `yaml:"children"`
}

// TreeState is one tree's slice of the store. Children is static
// configuration and is shared between snapshots.
type TreeState struct {
	VisibleOverride   bool         `yaml:"visible_override"`
	ShowChildMessages bool         `yaml:"show_child_messages"`
	Children          []BranchSpec `yaml:"children"`
}

// AppState is an immutable snapshot. Transitions build a new AppState and
// never write through an existing one.
type AppState struct {
	Trees map[TreeName]TreeState `yaml:"trees"`
}

// Names returns the tree keys in display order.
func (s AppState) Names() []TreeName {
	names := make([]TreeName, 0, len(s.Trees))
	for name := range s.Trees {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Tree returns the state for name.
func (s AppState) Tree(name TreeName) (TreeState, bool) {
	t, ok := s.Trees[name]
	return t, ok
}

// YAML renders the snapshot for display or export.
func (s AppState) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return out, nil
}

// InitialFlags seeds the two mutable flags of a tree.
type InitialFlags struct {
	VisibleOverride   bool
	ShowChildMessages bool
}

// InitialState builds the fixed two-tree literal. Both trees start with
// both flags on.
func InitialState() AppState {
	return InitialStateWith(nil)
}

// InitialStateWith builds the fixed literal, replacing the starting flags of
// any tree present in flags. Unknown names are ignored; the tree layout
// itself never changes.
func InitialStateWith(flags map[TreeName]InitialFlags) AppState {
	trees := make(map[TreeName]TreeState, 2)
	for _, name := range []TreeName{Tree1, Tree2} {
		t := TreeState{
			VisibleOverride:   true,
			ShowChildMessages: true,
			Children:          defaultBranches(),
		}
		if f, ok := flags[name]; ok {
			t.VisibleOverride = f.VisibleOverride
			t.ShowChildMessages = f.ShowChildMessages
		}
		trees[name] = t
	}
	return AppState{Trees: trees}
}

func defaultBranches() []BranchSpec {
	leaves := func() []LeafSpec {
		return []LeafSpec{{Name: "child1"}, {Name: "child2"}}
	}
	return []BranchSpec{
		{Name: "branch1", Children: leaves()},
		{Name: "branch2", Children: leaves()},
	}
}
