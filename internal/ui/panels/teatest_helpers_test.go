package panels

import (
	"bytes"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/muesli/termenv"
)

// Golden files hold plain text, so render without color regardless of the
// terminal the tests run in.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// wrapTree drives a Tree against a real store: enter presses the selected
// row, j/k move, and ActionMsgs are dispatched so the next frame reflects
// them.
func wrapTree(tr *Tree, st *store.Store) tea.Model {
	return panelAdapter{
		view: func() string { return tr.View(st.State()) },
		updateFn: func(msg tea.Msg) tea.Cmd {
			switch msg := msg.(type) {
			case ActionMsg:
				_ = st.Dispatch(msg.Action)
				tr.Sync(st.State())
			case tea.KeyMsg:
				switch msg.String() {
				case "j":
					tr.MoveBy(1, st.State())
				case "k":
					tr.MoveBy(-1, st.State())
				case "enter":
					var cmd tea.Cmd
					*tr, cmd = tr.Press()
					tr.Sync(st.State())
					return cmd
				}
			}
			return nil
		},
	}
}

// wrapStatusBar creates a tea.Model adapter around a StatusBar for teatest use.
func wrapStatusBar(s *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return s.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// wrapHelpOverlay creates a tea.Model adapter around a HelpOverlay for teatest use.
func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
