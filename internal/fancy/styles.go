package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ProviderStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ProviderText styles a provider name
func ProviderText(text string) string {
	return ProviderStyle.Render(text)
}

// SlotText styles a slot name
func SlotText(text string) string {
	return ComponentStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return SuccessStyle.Render(text)
}

// WarningText styles warning text (yellow)
func WarningText(text string) string {
	return WarningStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}
