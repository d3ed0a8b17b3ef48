package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/treetop/internal/config"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/clipboard"
	"github.com/justinpbarnett/treetop/internal/ui/layout"
	"github.com/justinpbarnett/treetop/internal/ui/panels"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
)

const (
	treeLeft  = 0
	treeRight = 1
	numTrees  = 2
)

const warningText = "⚠ Warning Message"

// banner is the root's warning flag. App values share it with the branch
// callback, which flips it in place.
type banner struct {
	visible bool
}

// App is the root model. It owns the store, the warning flag and the two
// tree components; trees only see the snapshot passed to them.
type App struct {
	config      *config.Config
	store       *store.Store
	log         *slog.Logger
	clip        *clipboard.Clipboard
	trees       [numTrees]panels.Tree
	focusedTree int
	warning     *banner
	width       int
	height      int
	layout      layout.Layout
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	ready       bool
}

func NewApp(cfg *config.Config, logger *slog.Logger) App {
	st := store.NewStore(store.InitialStateWith(cfg.InitialFlags()))
	st.Subscribe(func(prev, next store.AppState, a store.Action) {
		t, _ := next.Tree(a.TreeName)
		logger.Debug("transition",
			"action", string(a.Type),
			"tree", string(a.TreeName),
			"visible_override", t.VisibleOverride,
			"show_child_messages", t.ShowChildMessages,
		)
	})

	display := panels.LeafDisplayByName(cfg.UI.LeafDisplay)
	target := store.TreeName(cfg.UI.OverrideTarget)
	snap := st.State()

	warning := &banner{visible: true}
	onToggle := branchToggleHandler(warning, logger)

	var trees [numTrees]panels.Tree
	for i, name := range []store.TreeName{store.Tree1, store.Tree2} {
		spec, _ := snap.Tree(name)
		trees[i] = panels.NewTree(name, target, spec, display, onToggle)
		logger.Debug("tree ready", "tree", string(name), "override_target", string(trees[i].Target()))
	}
	trees[treeLeft].SetFocused(true)

	return App{
		config:    cfg,
		store:     st,
		log:       logger,
		clip:      clipboard.New(),
		trees:     trees,
		warning:   warning,
		statusBar: panels.NewStatusBar(st),
		keys:      DefaultKeyMap(),
	}
}

// branchToggleHandler is the expand/collapse callback every branch gets. It
// flips the banner regardless of which tree or branch fired it.
func branchToggleHandler(w *banner, logger *slog.Logger) panels.BranchToggleFunc {
	return func(tree store.TreeName, expanded bool) {
		w.visible = !w.visible
		logger.Debug("branch toggled", "tree", string(tree), "expanded", expanded, "warning_visible", w.visible)
	}
}

func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("treetop")
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case ActionMsg:
		if err := a.store.Dispatch(msg.Action); err != nil {
			a.log.Error("dispatch failed", "action", string(msg.Action.Type), "tree", string(msg.Action.TreeName), "error", err)
			a.statusBar.SetFlashWithLevel(err.Error(), panels.FlashError)
			return a, clearFlashAfter()
		}
		a.syncTrees()
		return a, nil

	case YankedMsg:
		if msg.Err != nil {
			a.log.Warn("copy state failed", "error", msg.Err)
			a.statusBar.SetFlashWithLevel("copy failed: "+msg.Err.Error(), panels.FlashError)
		} else {
			a.statusBar.SetFlashWithLevel(fmt.Sprintf("state copied (%s)", msg.Method), panels.FlashSuccess)
		}
		return a, clearFlashAfter()

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			if key.Matches(msg, a.keys.Quit) && msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := a.store.State()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.helpOverlay = panels.NewHelpOverlay()
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.moveBy(1)
	case key.Matches(msg, a.keys.Up):
		a.moveBy(-1)
	case key.Matches(msg, a.keys.Top):
		a.focus(treeLeft)
		a.trees[treeLeft].SelectFirst(snap)
	case key.Matches(msg, a.keys.Bottom):
		a.focus(treeRight)
		a.trees[treeRight].SelectLast(snap)
	case key.Matches(msg, a.keys.Left):
		a.focus(treeLeft)
	case key.Matches(msg, a.keys.Right):
		a.focus(treeRight)
	case key.Matches(msg, a.keys.Next):
		a.focus((a.focusedTree + 1) % numTrees)
	case key.Matches(msg, a.keys.Press):
		return a.press()
	case key.Matches(msg, a.keys.Yank):
		return a, yankState(a.clip, snap)
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.ready || a.layout.TooSmall || a.helpOverlay != nil {
		return a, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	idx := a.layout.TreeAt(msg.X)
	line := msg.Y - a.layout.TreeTop - 1 // top border
	if !a.trees[idx].SelectLine(line, a.store.State()) {
		return a, nil
	}
	a.focus(idx)
	return a.press()
}

// press activates the focused tree's selected control.
func (a App) press() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.trees[a.focusedTree], cmd = a.trees[a.focusedTree].Press()
	a.syncTrees()
	return a, cmd
}

// moveBy walks the controls of both trees as one list.
func (a *App) moveBy(delta int) {
	snap := a.store.State()
	if a.trees[a.focusedTree].MoveBy(delta, snap) {
		return
	}
	switch {
	case delta > 0 && a.focusedTree < numTrees-1:
		a.focus(a.focusedTree + 1)
		a.trees[a.focusedTree].SelectFirst(snap)
	case delta < 0 && a.focusedTree > 0:
		a.focus(a.focusedTree - 1)
		a.trees[a.focusedTree].SelectLast(snap)
	}
}

func (a *App) focus(idx int) {
	a.focusedTree = idx
	for i := range a.trees {
		a.trees[i].SetFocused(i == idx)
	}
}

func (a *App) syncTrees() {
	snap := a.store.State()
	for i := range a.trees {
		a.trees[i].Sync(snap)
	}
}

func (a *App) propagateSizes() {
	l := a.layout
	a.trees[treeLeft].SetSize(l.LeftTreeWidth, l.TreeHeight)
	a.trees[treeRight].SetSize(l.RightTreeWidth, l.TreeHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	snap := a.store.State()

	banner := strings.Repeat(" ", a.layout.BannerWidth)
	if a.warning.visible {
		banner = styles.WarningBannerStyle.Width(a.layout.BannerWidth).Render(" " + warningText)
	}

	treesRow := lipgloss.JoinHorizontal(lipgloss.Top,
		a.trees[treeLeft].View(snap),
		a.trees[treeRight].View(snap),
	)
	full := lipgloss.JoinVertical(lipgloss.Left, banner, treesRow, a.statusBar.View())

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}

	return full
}

// State returns the current store snapshot.
func (a App) State() store.AppState {
	return a.store.State()
}

// WarningVisible reports whether the warning banner is shown.
func (a App) WarningVisible() bool {
	return a.warning.visible
}

func yankState(clip *clipboard.Clipboard, snap store.AppState) tea.Cmd {
	return func() tea.Msg {
		data, err := snap.YAML()
		if err != nil {
			return YankedMsg{Err: err}
		}
		method, err := clip.Write(string(data))
		return YankedMsg{Method: method, Err: err}
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}
