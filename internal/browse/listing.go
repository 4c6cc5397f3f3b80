package browse

import (
	"unicode/utf8"

	"filechooser/pkg/types"
)

// Listing is a snapshot of one directory under one filter. It is rebuilt on
// every navigation step or filter change and the selection goes with it.
// Reload is the exception: files still present keep their selection.
type Listing struct {
	Dir     string
	CanGoUp bool
	Dirs    []types.Entry
	Files   []types.Entry

	filterIndex int
	selected    []bool
}

// FilterIndex returns the index of the filter the files were chosen with.
func (l *Listing) FilterIndex() int { return l.filterIndex }

// Len returns the number of entries in display order.
func (l *Listing) Len() int { return len(l.Dirs) + len(l.Files) }

// Entries returns directories followed by files.
func (l *Listing) Entries() []types.Entry {
	out := make([]types.Entry, 0, l.Len())
	out = append(out, l.Dirs...)
	return append(out, l.Files...)
}

// Entry returns the entry at display position pos.
func (l *Listing) Entry(pos int) (types.Entry, bool) {
	switch {
	case pos < 0 || pos >= l.Len():
		return types.Entry{}, false
	case pos < len(l.Dirs):
		return l.Dirs[pos], true
	default:
		return l.Files[pos-len(l.Dirs)], true
	}
}

// FileIndex maps a display position to an index into Files.
func (l *Listing) FileIndex(pos int) (int, bool) {
	i := pos - len(l.Dirs)
	if pos < 0 || i < 0 || i >= len(l.Files) {
		return 0, false
	}
	return i, true
}

// Toggle sets the selection flag of file i. It reports false when i is out
// of range and changes nothing.
func (l *Listing) Toggle(i int, checked bool) bool {
	if i < 0 || i >= len(l.Files) {
		return false
	}
	if len(l.selected) != len(l.Files) {
		l.selected = make([]bool, len(l.Files))
	}
	l.selected[i] = checked
	return true
}

// Selected reports whether file i is selected.
func (l *Listing) Selected(i int) bool {
	return i >= 0 && i < len(l.selected) && l.selected[i]
}

// SelectedFiles returns the paths of selected files in list order.
func (l *Listing) SelectedFiles() []string {
	var paths []string
	for i, on := range l.selected {
		if on && i < len(l.Files) {
			paths = append(paths, l.Files[i].Path)
		}
	}
	return paths
}

// SelectionCount returns how many files are selected.
func (l *Listing) SelectionCount() int {
	n := 0
	for _, on := range l.selected {
		if on {
			n++
		}
	}
	return n
}

// keepSelection marks the files of l whose paths are selected in prev.
func (l *Listing) keepSelection(prev *Listing) {
	kept := make(map[string]bool, prev.SelectionCount())
	for _, p := range prev.SelectedFiles() {
		kept[p] = true
	}
	if len(kept) == 0 {
		return
	}
	for i, f := range l.Files {
		if kept[f.Path] {
			l.Toggle(i, true)
		}
	}
}

// ordinalLess orders names by code point. Bytes that are not valid UTF-8
// compare by value and sort after every valid rune. When one name is a
// prefix of the other the shorter one comes first.
func ordinalLess(a, b string) bool {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		badA := ra == utf8.RuneError && na == 1
		badB := rb == utf8.RuneError && nb == 1
		switch {
		case badA && badB:
			if a[0] != b[0] {
				return a[0] < b[0]
			}
		case badA || badB:
			return badB
		case ra != rb:
			return ra < rb
		}
		a, b = a[na:], b[nb:]
	}
	return len(a) < len(b)
}
