package widgets

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, pink-to-mauve to follow the page gradient
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorBrand  = colorPink
	colorAccent = colorMauve
	colorFocus  = colorLavender
	colorCheck  = colorGreen
	colorError  = colorRed
)

var (
	brandStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtleStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorOverlay0)
	checkStyle       = lipgloss.NewStyle().Foreground(colorCheck)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	buttonStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1)
	buttonOpenStyle  = lipgloss.NewStyle().Foreground(colorSurface0).Background(colorAccent).Padding(0, 1)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	cardFocusStyle   = cardStyle.BorderForeground(colorFocus)
	previewStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorAccent).Padding(0, 1)
	footerStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	statusErrorStyle = footerStyle.Foreground(colorError)
)
