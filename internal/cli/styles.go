package cli

import "github.com/charmbracelet/lipgloss"

func init() {
	lipgloss.SetColorProfile(ColorProfile())
}

var (
	// TitleStyle heads the single-key detail view
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// LabelStyle is used for field labels in the detail view
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(14)

	// KeyStyle is used for env keys in listings
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// DimStyle is used for provenance comments
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)
