package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: paths, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for banners and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBanner styles the debug separators around rendered output.
	StyleBanner = lipgloss.NewStyle().Foreground(ColorDimGray).Bold(true)
)

// bannerWidth is the total width of a separator line.
const bannerWidth = 60

// Banner returns a separator line with title centred between rule
// characters, e.g. "======== rendered output ========".
func Banner(title string) string {
	label := " " + title + " "
	pad := bannerWidth - len(label)
	if pad < 4 {
		pad = 4
	}
	left := pad / 2
	return strings.Repeat("=", left) + label + strings.Repeat("=", pad-left)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
