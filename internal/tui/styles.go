package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants shared by the explorer views.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeRows is the number of rows outside the pane: title, status and help.
	chromeRows = 3
)

// Color palette.
var (
	ColorHeader = lipgloss.Color("86")
	ColorLabel  = lipgloss.Color("252")
	ColorValue  = lipgloss.Color("255")
	ColorSubtle = lipgloss.Color("243")
	ColorInfo   = lipgloss.Color("39")
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorInfo)
)
