package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/treetop/internal/ui/styles"
	"github.com/justinpbarnett/treetop/internal/ui/text"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func borderStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// RenderBorderTop renders ╭─ title ───── badge ─╮. When the width runs out
// the badge is dropped first, then the title is truncated with "…". Below
// one cell of title room only the rule is drawn.
func RenderBorderTop(title, badge string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2

	ts := styles.TextSecondaryStyle.Bold(true)
	if focused {
		ts = styles.TitleStyle
	}

	var left, right string
	used := 0
	if title != "" {
		room := inner - 3 // "─ " + title + " "
		if room < 1 {
			return bs.Render(cornerTL + strings.Repeat(horizBar, inner) + cornerTR)
		}
		left = ts.Render(text.Truncate(title, room))
		used = lipgloss.Width(left) + 3
	}
	if badge != "" {
		w := lipgloss.Width(badge) + 3 // " " + badge + " ─"
		if used+w <= inner {
			right = badge
			used += w
		}
	}

	var b strings.Builder
	b.WriteString(bs.Render(cornerTL))
	if left != "" {
		b.WriteString(bs.Render(horizBar+" ") + left + bs.Render(" "))
	}
	b.WriteString(bs.Render(strings.Repeat(horizBar, inner-used)))
	if right != "" {
		b.WriteString(bs.Render(" ") + right + bs.Render(" "+horizBar))
	}
	b.WriteString(bs.Render(cornerTR))
	return b.String()
}

// RenderBorderBottom renders ╰─ [enter] press  [?] help ──╯ when focused,
// and a plain rule otherwise. Keybinds that do not fit are dropped.
func RenderBorderBottom(keybinds []Keybind, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2

	if !focused || len(keybinds) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, inner) + cornerBR)
	}

	budget := inner - 3 // "─ " prefix and " " suffix
	var parts []string
	used := 0
	for _, kb := range keybinds {
		rendered := RenderKeybind(kb)
		w := lipgloss.Width(rendered)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > budget {
			break
		}
		parts = append(parts, rendered)
		used += w
	}
	if len(parts) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, inner) + cornerBR)
	}

	fill := budget - used
	return bs.Render(cornerBL+horizBar+" ") +
		strings.Join(parts, "  ") +
		bs.Render(" "+strings.Repeat(horizBar, fill)+cornerBR)
}

// RenderBorderSides wraps each content line in │…│, padding or cutting it to
// width-2 visible cells.
func RenderBorderSides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	bs := borderStyle(focused)
	inner := width - 2
	cut := lipgloss.NewStyle().MaxWidth(inner)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > inner {
			line = cut.Render(line)
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		lines[i] = bs.Render(vertBar) + line + bs.Render(vertBar)
	}
	return strings.Join(lines, "\n")
}
