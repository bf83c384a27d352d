package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorColor adapts to light and dark terminal backgrounds
var ErrorColor = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

// ErrorStyle renders the one-line error report of a failed command
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)
