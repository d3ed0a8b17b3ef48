package layout

// Layout holds the computed cell dimensions for the screen regions.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Warning banner, always reserved so the trees do not jump when it hides.
	BannerWidth  int
	BannerHeight int

	// The two tree panels sit side by side below the banner.
	LeftTreeWidth  int
	RightTreeWidth int
	TreeHeight     int
	TreeTop        int

	StatusBarWidth int
}

const (
	MinWidth  = 60
	MinHeight = 14

	LeftColWeight = 0.50
)

// Calculate computes panel dimensions from terminal size. One row goes to the
// banner and one to the status bar; the rest is split between the trees.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	l.BannerWidth = termWidth
	l.BannerHeight = 1

	l.LeftTreeWidth = int(float64(termWidth) * LeftColWeight)
	l.RightTreeWidth = termWidth - l.LeftTreeWidth
	l.TreeTop = l.BannerHeight
	l.TreeHeight = termHeight - l.BannerHeight - 1

	l.StatusBarWidth = termWidth

	return l
}

// TreeAt maps a screen column to a tree column: 0 left, 1 right.
func (l Layout) TreeAt(x int) int {
	if x < l.LeftTreeWidth {
		return 0
	}
	return 1
}
