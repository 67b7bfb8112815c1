package cmd

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Width(12)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Italic(true)
)
