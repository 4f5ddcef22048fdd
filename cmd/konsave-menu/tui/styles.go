package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
)

// List styles.
var (
	// TitleStyle renders the program name in the header.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// SubtleStyle is used for the version and secondary header text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// CursorRowStyle is used for the row under the cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// ProfileRowStyle is used for profile rows.
	ProfileRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// NewRowStyle is used for the "create new" row.
	NewRowStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// PlaceholderStyle is used for the row shown when no profiles exist.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)

	// FrameStyle wraps the whole view once the terminal size is known.
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarCountStyle highlights the profile count.
	StatusBarCountStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Help styles.
var (
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorMauve)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorSurface1)
)
