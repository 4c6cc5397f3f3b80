package components

import (
	"strings"

	"filechooser/internal/tui/common"
	"filechooser/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderEntryList draws rows with the cursor row highlighted. Only a window
// of height rows around the cursor is drawn; height <= 0 draws everything.
func RenderEntryList(rows []common.Row, cursor, height int, theme styles.Theme) string {
	if len(rows) == 0 {
		return theme.Muted.Render("(empty)")
	}

	start, end := window(len(rows), cursor, height)
	labelWidth := 0
	for _, r := range rows[start:end] {
		labelWidth = max(labelWidth, lipgloss.Width(rowLabel(r)))
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		label := rowLabel(r)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))

		var line string
		switch {
		case i == cursor:
			line = theme.Cursor.Render("> " + label + pad + "  " + r.Detail)
		case r.IsDir:
			line = "  " + theme.Directory.Render(label) + pad + detail(r, theme)
		default:
			line = "  " + theme.File.Render(label) + pad + detail(r, theme)
		}
		s.WriteString(line)
		if i < end-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func detail(r common.Row, theme styles.Theme) string {
	if r.Detail == "" {
		return ""
	}
	return "  " + theme.Muted.Render(r.Detail)
}

func rowLabel(r common.Row) string {
	label := r.Label
	if r.IsDir {
		label += "/"
	}
	if r.Checkable {
		if r.Checked {
			return "[x] " + label
		}
		return "[ ] " + label
	}
	return label
}

func window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
