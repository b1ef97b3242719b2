package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - coherent with charmbracelet style
var (
	Primary = lipgloss.Color("#7D56F4") // Purple (charmbracelet brand)
	Success = lipgloss.Color("#50FA7B") // Green
	Warning = lipgloss.Color("#FFB86C") // Orange
	Error   = lipgloss.Color("#FF5555") // Red
	Muted   = lipgloss.Color("#6272A4") // Muted blue-gray
	Text    = lipgloss.Color("#F8F8F2") // Light text
	Subtle  = lipgloss.Color("#44475A") // Dark background accent
)

// Base styles
var (
	// Title style for headers
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFDF5")).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	// Normal text
	NormalText = lipgloss.NewStyle().
			Foreground(Text)

	// Muted text
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Success text
	SuccessText = lipgloss.NewStyle().
			Foreground(Success)

	// Warning text
	WarningText = lipgloss.NewStyle().
			Foreground(Warning)

	// Error text
	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	// Spinner
	Spinner = lipgloss.NewStyle().
		Foreground(Primary)
)

// Symbols
var (
	Bullet = lipgloss.NewStyle().Foreground(Primary).SetString("•")
)

// FormatTocStatus returns a styled indicator for descriptor presence
func FormatTocStatus(present bool) string {
	if present {
		return SuccessText.Render("toc")
	}
	return MutedText.Render("no toc")
}

// FormatSidecarProvider returns a styled provider name for sidecar results
func FormatSidecarProvider(provider string) string {
	if provider == "" {
		return MutedText.Render("-")
	}
	return NormalText.Render(provider)
}
