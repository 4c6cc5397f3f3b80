package types

import (
	"fmt"
	"strings"
)

// Mode is what the chooser is asked to produce.
type Mode int

const (
	// Open picks a single existing file
	Open Mode = iota
	// OpenMultiple picks one or more files from the same directory
	OpenMultiple
	// SelectDirectory picks the directory being browsed
	SelectDirectory
	// Save picks a directory plus a file name that may not exist yet
	Save
)

var modeNames = []string{"open", "multi", "dir", "save"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts the names printed by String plus a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		return Open, nil
	case "multi", "multiple", "open-multiple":
		return OpenMultiple, nil
	case "dir", "directory", "select-dir":
		return SelectDirectory, nil
	case "save", "save-as":
		return Save, nil
	}
	return Open, fmt.Errorf("unknown mode %q (want open, multi, dir or save)", s)
}

// ShowsFiles reports whether files are listed at all in this mode.
func (m Mode) ShowsFiles() bool {
	return m != SelectDirectory
}

// NeedsWritable reports whether the browsed directory must be writable.
func (m Mode) NeedsWritable() bool {
	return m == SelectDirectory || m == Save
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts anything ParseMode does.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
