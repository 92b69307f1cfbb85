package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - using ANSI 256 colors for broad terminal support
var (
	ColorCyan    = lipgloss.Color("6")
	ColorYellow  = lipgloss.Color("3")
	ColorRed     = lipgloss.Color("1")
	ColorGreen   = lipgloss.Color("2")
	ColorMagenta = lipgloss.Color("5")
	ColorGray    = lipgloss.Color("8")
	ColorWhite   = lipgloss.Color("15")
)

// Text styles
var (
	// Status messages ("Replaying...", "Loaded config")
	StatusStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorGray)

	// Labels (field names, headers)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)
)

// Cache outcome styles
var (
	HitStyle   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	MissStyle  = lipgloss.NewStyle().Foreground(ColorYellow)
	EvictStyle = lipgloss.NewStyle().Foreground(ColorRed)
)

// Recency list styles
var (
	// KeyStyle boxes a single key in the recency list.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	// NewestKeyStyle boxes the most recently used key.
	NewestKeyStyle = KeyStyle.
			BorderForeground(ColorMagenta).
			Bold(true)

	// EndLabelStyle marks the LRU and MRU ends.
	EndLabelStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)
)
