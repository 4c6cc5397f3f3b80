package views

import (
	"strings"

	"filechooser/internal/tui/common"
	"filechooser/internal/tui/components"
)

// RenderMainView draws the whole chooser.
func RenderMainView(m common.ModelReader) string {
	theme := m.Theme()
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(m.Header()))
	sb.WriteString("\n\n")

	sb.WriteString(components.RenderEntryList(m.Rows(), m.Cursor(), m.Height(), theme))
	sb.WriteString("\n\n")

	if label := m.FilterLabel(); label != "" {
		sb.WriteString(theme.Muted.Render("Type: ") + label + "\n")
	}
	if input := m.InputView(); input != "" {
		sb.WriteString(input + "\n")
	}

	bar := components.NewStatusBar()
	bar.SetText(m.Status())
	if status := bar.View(theme); status != "" {
		sb.WriteString(status + "\n")
	}

	sb.WriteString("\n" + theme.Help.Render(m.HelpView()))
	return theme.App.Render(sb.String())
}
