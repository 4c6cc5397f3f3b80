package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF"))
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787"))
)

func headerText(s string) string { return headerStyle.Render(s) }
func dirText(s string) string    { return dirStyle.Render(s) }
func mutedText(s string) string  { return mutedStyle.Render(s) }
func errorText(s string) string  { return errorStyle.Render(s) }
func okText(s string) string     { return okStyle.Render(s) }
