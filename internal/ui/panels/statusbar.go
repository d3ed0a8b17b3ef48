package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
)

const flashDurationVal = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	store      *store.Store
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar(st *store.Store) StatusBar {
	return StatusBar{store: st}
}

func (s StatusBar) View() string {
	snap := s.store.State()
	sep := styles.TextDimStyle.Render(" │ ")

	parts := []string{styles.TextSecondaryStyle.Render("treetop " + Version)}
	for _, name := range snap.Names() {
		ts, _ := snap.Tree(name)
		parts = append(parts, styles.TextPrimaryStyle.Render(string(name))+" "+
			styles.FlagStyle(ts.VisibleOverride).Render("override:"+onOff(ts.VisibleOverride))+" "+
			styles.FlagStyle(ts.ShowChildMessages).Render("msgs:"+onOff(ts.ShowChildMessages)))
	}
	left := " " + strings.Join(parts, sep)

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default:
			icon, color = "●", styles.StatusInfo
		}
		left += sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

// Flash returns the current flash text, empty once expired.
func (s StatusBar) Flash() string {
	if time.Now().Before(s.flashUntil) {
		return s.flash
	}
	return ""
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
