// Package filter decides which file names are visible under a file type
// filter and turns user input into names that a filter accepts.
//
// A filter is either a named list of suffixes or a MIME type resolved through
// a static suffix table. Both kinds share one Spec value so callers never
// branch on the kind themselves.
package filter

import (
	"strings"

	"filechooser/internal/errors"
	"filechooser/pkg/types"
)

// Kind tells which rule a Spec applies.
type Kind int

const (
	// KindExtension matches a named list of suffixes
	KindExtension Kind = iota
	// KindMime matches the suffixes registered for a MIME type
	KindMime
)

func (k Kind) String() string {
	if k == KindMime {
		return "mime"
	}
	return "extension"
}

// AnyExtension is the suffix list sentinel that matches every name.
const AnyExtension = "*"

// Spec is an immutable file type filter.
type Spec struct {
	kind     Kind
	name     string
	suffixes []string
	mime     string
}

// NewExtension returns a suffix filter. An empty suffix list becomes ["*"].
func NewExtension(name string, suffixes ...string) Spec {
	s := Spec{kind: KindExtension, name: name}
	if len(suffixes) == 0 {
		s.suffixes = []string{AnyExtension}
		return s
	}
	s.suffixes = append([]string(nil), suffixes...)
	return s
}

// NewMime returns a MIME filter. An empty type becomes "*/*".
func NewMime(mime string) Spec {
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = AnyMime
	}
	return Spec{kind: KindMime, name: mime, mime: mime}
}

// Kind returns the filter kind.
func (s Spec) Kind() Kind { return s.kind }

// Name returns the display name, or the MIME string for MIME filters.
func (s Spec) Name() string { return s.name }

// Mime returns the MIME string of a MIME filter and "" otherwise.
func (s Spec) Mime() string { return s.mime }

// Suffixes returns the suffixes the filter tests, in order.
func (s Spec) Suffixes() []string {
	if s.kind == KindMime {
		return ResolveMimeToSuffixes(s.mime)
	}
	if len(s.suffixes) == 0 {
		return []string{AnyExtension}
	}
	return append([]string(nil), s.suffixes...)
}

// IsWildcard reports whether the filter accepts every name.
func (s Spec) IsWildcard() bool {
	if s.kind == KindMime {
		for _, suf := range ResolveMimeToSuffixes(s.mime) {
			if suf == AnySuffix {
				return true
			}
		}
		return false
	}
	return len(s.suffixes) == 0 || (len(s.suffixes) == 1 && s.suffixes[0] == AnyExtension)
}

// Matches reports whether filename is visible under the filter. The
// comparison ignores case.
func (s Spec) Matches(filename string) bool {
	if s.IsWildcard() {
		return true
	}
	for _, suf := range s.Suffixes() {
		if hasSuffixFold(filename, suf) {
			return true
		}
	}
	return false
}

// Matches is the free-function form of Spec.Matches.
func Matches(filename string, spec Spec) bool {
	return spec.Matches(filename)
}

func hasSuffixFold(name, suffix string) bool {
	if suffix == "" || len(name) < len(suffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// FormatForSave returns filename with a suffix the filter accepts. Names that
// already match are returned as is. Extension filters append their first
// suffix. MIME filters append the suffix at preferredIndex, where negative
// values count from the end and out of range values pick the first suffix.
// Wildcard MIME types ("*/*" and "type/*") never append anything.
func (s Spec) FormatForSave(filename string, preferredIndex int) string {
	if s.Matches(filename) {
		return filename
	}

	if s.kind == KindExtension {
		return filename + s.suffixes[0]
	}

	if _, wild := wildcardPrefix(s.mime); wild {
		return filename
	}
	suffixes := ResolveMimeToSuffixes(s.mime)
	i := preferredIndex
	if i < 0 {
		i += len(suffixes)
	}
	if i < 0 || i >= len(suffixes) {
		i = 0
	}
	return filename + suffixes[i]
}

// FormatFilenameForSave is the free-function form of Spec.FormatForSave.
func FormatFilenameForSave(filename string, spec Spec, preferredIndex int) string {
	return spec.FormatForSave(filename, preferredIndex)
}

// Label renders the filter for a selector at the given detail level.
func (s Spec) Label(detail int) string {
	if s.kind == KindMime {
		return DescribeFilters([]string{s.mime}, detail)[0]
	}
	if detail <= 0 || s.IsWildcard() {
		return s.name
	}
	return s.name + " (" + strings.Join(s.suffixes, ";") + ")"
}

// SpecsFromMimes trims mimes against the table and wraps each survivor.
func SpecsFromMimes(mimes []string) []Spec {
	trimmed := TrimAndValidateMimes(mimes)
	specs := make([]Spec, 0, len(trimmed))
	for _, m := range trimmed {
		specs = append(specs, NewMime(m))
	}
	return specs
}

// SpecsFromDefs converts configured extension filters.
func SpecsFromDefs(defs []types.FilterDef) ([]Spec, error) {
	specs := make([]Spec, 0, len(defs))
	for _, d := range defs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, errors.NewFilterError("filter has no name", d.Name, errors.InvalidFilter, nil)
		}
		for _, ext := range d.Extensions {
			if ext == "" {
				return nil, errors.NewFilterError("empty extension", d.Name, errors.InvalidFilter, nil)
			}
		}
		specs = append(specs, NewExtension(d.Name, d.Extensions...))
	}
	return specs, nil
}

// ParseFilterFlag parses "Name=.a,.b" into an extension filter. A bare list
// without a name uses the list itself as the name.
func ParseFilterFlag(v string) (Spec, error) {
	name, list, found := strings.Cut(v, "=")
	if !found {
		list = name
	}
	name = strings.TrimSpace(name)
	var exts []string
	for _, e := range strings.Split(list, ",") {
		if e = strings.TrimSpace(e); e != "" {
			exts = append(exts, e)
		}
	}
	if name == "" || len(exts) == 0 {
		return Spec{}, errors.NewFilterError("expected Name=.ext[,.ext]", v, errors.InvalidFilter, nil)
	}
	return NewExtension(name, exts...), nil
}
