package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles for one catppuccin flavor.
type Theme struct {
	promptStyle   lipgloss.Style
	queryStyle    lipgloss.Style
	labelBarStyle lipgloss.Style
	rowStyle      lipgloss.Style
	selectedStyle lipgloss.Style
	matchStyle    lipgloss.Style
	markerStyle   lipgloss.Style
	hintStyle     lipgloss.Style
}

// palette is the slice of a catppuccin flavor the theme draws from.
type palette interface {
	Green() catppuccin.Color
	Text() catppuccin.Color
	Surface0() catppuccin.Color
	Surface1() catppuccin.Color
	Peach() catppuccin.Color
	Mauve() catppuccin.Color
	Yellow() catppuccin.Color
}

// flavorByName maps a config theme name to its catppuccin flavor,
// defaulting to mocha for unknown names.
func flavorByName(name string) palette {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// NewTheme builds the styles for the named catppuccin flavor.
func NewTheme(name string) Theme {
	flavor := flavorByName(name)

	return Theme{
		promptStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Green().Hex)).
			Bold(true),

		queryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Text().Hex)).
			Bold(true),

		labelBarStyle: lipgloss.NewStyle().
			Background(lipgloss.Color(flavor.Surface1().Hex)).
			Foreground(lipgloss.Color(flavor.Text().Hex)),

		rowStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Text().Hex)),

		selectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color(flavor.Surface0().Hex)).
			Foreground(lipgloss.Color(flavor.Text().Hex)).
			Bold(true),

		matchStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Peach().Hex)).
			Bold(true),

		markerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Mauve().Hex)).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Yellow().Hex)).
			Italic(true),
	}
}
