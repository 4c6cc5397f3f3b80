package filter

import "strings"

// NameStatus is the outcome of validating a user-entered file name.
type NameStatus int

const (
	NameOK NameStatus = iota
	NameEmpty
	NameIllegalChar
	NameReservedPrefix
	NameHidden
)

var nameStatusText = map[NameStatus]string{
	NameOK:             "ok",
	NameEmpty:          "name is empty",
	NameIllegalChar:    "name contains an illegal character",
	NameReservedPrefix: "name cannot start with '+' or '-'",
	NameHidden:         "cannot create hidden files",
}

func (s NameStatus) String() string {
	if t, ok := nameStatusText[s]; ok {
		return t
	}
	return "unknown"
}

// OK reports whether the name may be used.
func (s NameStatus) OK() bool { return s == NameOK }

const reservedChars = `"*/:<>?\|`

// CheckFilename validates name for creation in the chooser. A leading dot is
// allowed only when showHidden is set and something follows the dot.
func CheckFilename(name string, showHidden bool) NameStatus {
	if name == "" {
		return NameEmpty
	}
	for _, r := range name {
		if r < 32 || r == 127 || strings.ContainsRune(reservedChars, r) {
			return NameIllegalChar
		}
	}
	switch name[0] {
	case '.':
		if !showHidden || len(name) == 1 {
			return NameHidden
		}
	case '+', '-':
		return NameReservedPrefix
	}
	return NameOK
}

// IsLegalFilename reports whether CheckFilename accepts name.
func IsLegalFilename(name string, showHidden bool) bool {
	return CheckFilename(name, showHidden).OK()
}
