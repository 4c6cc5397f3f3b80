package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
type Theme struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Cursor    lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Help      lipgloss.Style
}

type palette struct {
	primary, directory, file, muted, errorc, warning string
}

var palettes = map[string]palette{
	"default":    {primary: "#7B61FF", directory: "#81A1C1", file: "#CCCCCC", muted: "#666666", errorc: "#FF5F5F", warning: "#FFD75F"},
	"dark":       {primary: "#5F5FD7", directory: "#5F87AF", file: "#BCBCBC", muted: "#585858", errorc: "#D70000", warning: "#FFAF00"},
	"light":      {primary: "#AF5FFF", directory: "#005F87", file: "#303030", muted: "#8A8A8A", errorc: "#D75F5F", warning: "#AF8700"},
	"monochrome": {primary: "#FFFFFF", directory: "#D0D0D0", file: "#BCBCBC", muted: "#808080", errorc: "#FFFFFF", warning: "#E4E4E4"},
}

// ForName returns the named theme, falling back to "default".
func ForName(name string) Theme {
	p, ok := palettes[name]
	if !ok {
		p = palettes["default"]
	}
	return Theme{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),
		Directory: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.directory)).
			Bold(true),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.file)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(p.primary)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorc)),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.warning)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}
