package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TimerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 0)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Site list styles
var (
	SiteStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			PaddingLeft(2)

	SitesBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// WarningStyle highlights degraded blocking
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorWarning)

// PhaseColor returns the color for a focus phase
func PhaseColor(phase domain.Phase) Color {
	switch phase {
	case domain.PhaseWorking:
		return ColorWorking
	case domain.PhaseOnBreak:
		return ColorBreak
	case domain.PhaseCompleted:
		return ColorCompleted
	case domain.PhaseCancelled:
		return ColorCancelled
	default:
		return ColorIdle
	}
}

// PhaseStyle returns the badge style for a focus phase
func PhaseStyle(phase domain.Phase) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PhaseColor(phase))
}
