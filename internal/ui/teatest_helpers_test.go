package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/treetop/internal/config"
	"github.com/justinpbarnett/treetop/internal/logging"
	"github.com/justinpbarnett/treetop/internal/ui/clipboard"
)

const waitDuration = 3 * time.Second

func newTestAppWith(tb testing.TB, mutate func(*config.Config)) App {
	tb.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	a := NewApp(&cfg, logging.NewNop())
	a.clip = clipboard.NewWithWriter(io.Discard)
	return a
}

func newTestApp(tb testing.TB) App {
	tb.Helper()
	return newTestAppWith(tb, nil)
}

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

// waitForAll waits until the output contains every substring. Output read by
// one wait is gone for the next, so strings from the same frame must be
// matched together.
func waitForAll(tb testing.TB, tm *teatest.TestModel, substrs ...string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			for _, s := range substrs {
				if !bytes.Contains(bts, []byte(s)) {
					return false
				}
			}
			return true
		},
		teatest.WithDuration(waitDuration),
	)
}

func finalApp(tb testing.TB, tm *teatest.TestModel) App {
	tb.Helper()
	tm.Send(tea.QuitMsg{})
	m := tm.FinalModel(tb, teatest.WithFinalTimeout(waitDuration))
	a, ok := m.(App)
	if !ok {
		tb.Fatalf("final model is %T, want App", m)
	}
	return a
}
