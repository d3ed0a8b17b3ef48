package ui

import (
	"github.com/justinpbarnett/treetop/internal/ui/clipboard"
	"github.com/justinpbarnett/treetop/internal/ui/panels"
)

// Message types live in panels; these aliases keep call sites short.

// ActionMsg carries a store action up from a leaf or tree control.
type ActionMsg = panels.ActionMsg

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// YankedMsg reports the outcome of copying the snapshot to the clipboard.
type YankedMsg struct {
	Method clipboard.Method
	Err    error
}
