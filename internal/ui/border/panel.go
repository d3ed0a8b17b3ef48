package border

import "strings"

// Panel describes one bordered box.
type Panel struct {
	Title    string
	Badge    string
	Content  string
	Keybinds []Keybind
	Width    int
	Height   int
	Focused  bool
}

// Render assembles the panel. Content is cropped or padded to exactly
// Height-2 rows of Width-2 cells.
func (p Panel) Render() string {
	if p.Height < 2 || p.Width < 2 {
		return ""
	}
	innerHeight := p.Height - 2

	var lines []string
	if p.Content != "" {
		lines = strings.Split(p.Content, "\n")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return RenderBorderTop(p.Title, p.Badge, p.Width, p.Focused) + "\n" +
		RenderBorderSides(strings.Join(lines, "\n"), p.Width, p.Focused) + "\n" +
		RenderBorderBottom(p.Keybinds, p.Width, p.Focused)
}

// RenderPanel is shorthand for a Panel without a badge.
func RenderPanel(title, content string, keybinds []Keybind, width, height int, focused bool) string {
	return Panel{
		Title:    title,
		Content:  content,
		Keybinds: keybinds,
		Width:    width,
		Height:   height,
		Focused:  focused,
	}.Render()
}
