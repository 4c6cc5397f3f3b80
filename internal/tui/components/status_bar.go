package components

import (
	"filechooser/internal/tui/styles"
)

// StatusBar shows the last message of the model.
type StatusBar struct {
	text    string
	isError bool
}

// NewStatusBar returns an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetText replaces the message.
func (s *StatusBar) SetText(text string, isError bool) {
	s.text = text
	s.isError = isError
}

// View renders the message with theme.
func (s *StatusBar) View(theme styles.Theme) string {
	if s.text == "" {
		return ""
	}
	if s.isError {
		return theme.Error.Render(s.text)
	}
	return theme.Status.Render(s.text)
}
