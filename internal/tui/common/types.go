package common

import "filechooser/internal/tui/styles"

// Row is one line of the entry list as the views draw it.
type Row struct {
	Label     string
	IsDir     bool
	Detail    string // size or capacity, already humanized
	Checkable bool
	Checked   bool
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Header() string
	Rows() []Row
	Cursor() int
	Height() int
	FilterLabel() string
	InputView() string
	Status() (text string, isError bool)
	HelpView() string
	Theme() styles.Theme
}
