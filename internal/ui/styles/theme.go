package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg).Bold(true)

	ButtonStyle  = lipgloss.NewStyle().Foreground(ButtonText)
	MessageStyle = lipgloss.NewStyle().Foreground(MessageText).Italic(true)

	WarningBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(StatusWarning).
				Bold(true)
)

// FlagStyle renders "name:on" / "name:off" in the flag color.
func FlagStyle(on bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(FlagColor(on))
}
