package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for soft warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles tree roots and headings.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleWarning styles warning markers.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleFailure styles failure markers.
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning marker with a message.
func FormatWarning(msg string) string {
	return StyleWarning.Render("!") + " " + msg
}

// FormatFailure renders a red cross with a message.
func FormatFailure(msg string) string {
	return StyleFailure.Render("✘") + " " + msg
}
