package panels

import "github.com/justinpbarnett/treetop/internal/ui/styles"

// LeafDisplay renders the message part of a leaf row from the tree's
// showChildMessages flag. The result is appended to the leaf button as-is,
// so it carries its own leading separator.
type LeafDisplay interface {
	Render(showMessage bool) string
}

// DefaultLeafDisplay shows ": message" while the flag is on and nothing
// otherwise.
type DefaultLeafDisplay struct{}

func (DefaultLeafDisplay) Render(showMessage bool) string {
	if !showMessage {
		return ""
	}
	return styles.MessageStyle.Render(": message")
}

// PenguinDisplay always shows " Penguin" and appends " message" while the
// flag is on.
type PenguinDisplay struct{}

func (PenguinDisplay) Render(showMessage bool) string {
	out := " " + styles.TextPrimaryStyle.Render("Penguin")
	if showMessage {
		out += " " + styles.MessageStyle.Render("message")
	}
	return out
}

// LeafDisplayByName resolves a configured display name. Unknown names get
// the fallback display.
func LeafDisplayByName(name string) LeafDisplay {
	switch name {
	case "penguin":
		return PenguinDisplay{}
	default:
		return DefaultLeafDisplay{}
	}
}
