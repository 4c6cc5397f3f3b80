package filter

import (
	"path/filepath"
	"strings"
	"sync"

	"filechooser/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// AnyMime matches every file.
const AnyMime = "*/*"

// AnySuffix is the suffix sentinel returned for unknown MIME types.
const AnySuffix = ".*"

type mimeEntry struct {
	mime   string
	suffix string
}

var (
	indexOnce sync.Once
	byMime    map[string][]string
	bySuffix  map[string]string
)

func buildIndex() {
	byMime = make(map[string][]string)
	bySuffix = make(map[string]string, len(mimeTable))
	for _, e := range mimeTable {
		byMime[e.mime] = append(byMime[e.mime], e.suffix)
		// later rows win, matching a linear scan that keeps the last hit
		bySuffix[e.suffix] = e.mime
	}
}

// wildcardPrefix returns "type/" when mime has the form "type/*".
func wildcardPrefix(mime string) (string, bool) {
	slash := strings.IndexByte(mime, '/')
	if slash < 0 || slash+1 >= len(mime) || mime[slash+1] != '*' {
		return "", false
	}
	return mime[:slash+1], true
}

// ResolveMimeToSuffixes returns the suffixes registered for mime in table
// order. A "type/*" subtype collects every type under "type/". Unknown or
// empty input yields [".*"].
func ResolveMimeToSuffixes(mime string) []string {
	indexOnce.Do(buildIndex)

	if mime == "" {
		return []string{AnySuffix}
	}
	var out []string
	if prefix, ok := wildcardPrefix(mime); ok {
		for _, e := range mimeTable {
			if strings.HasPrefix(e.mime, prefix) {
				out = append(out, e.suffix)
			}
		}
	} else {
		out = append(out, byMime[mime]...)
	}
	if len(out) == 0 {
		return []string{AnySuffix}
	}
	return out
}

// knownMime reports whether mime resolves against the table, either exactly
// or through a wildcard subtype.
func knownMime(mime string) bool {
	indexOnce.Do(buildIndex)

	if prefix, ok := wildcardPrefix(mime); ok {
		for _, e := range mimeTable {
			if strings.HasPrefix(e.mime, prefix) {
				return true
			}
		}
		return false
	}
	_, ok := byMime[mime]
	return ok
}

// TrimAndValidateMimes keeps the candidates the table knows about, in input
// order and without repeats. An empty result becomes ["*/*"].
func TrimAndValidateMimes(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] || !knownMime(c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return []string{AnyMime}
	}
	return out
}

// DescribeFilters renders selector labels for mimes. Detail 0 returns the MIME
// strings, 1 the suffix list joined by ';', 2 the suffix list followed by the
// MIME in parentheses. Out of range levels are clamped. Blank entries are
// skipped at every level and an empty result describes "*/*".
func DescribeFilters(mimes []string, detail int) []string {
	if detail < 0 {
		detail = 0
	}
	if detail > 2 {
		detail = 2
	}

	out := make([]string, 0, len(mimes))
	for _, m := range mimes {
		if m == "" {
			continue
		}
		out = append(out, describe(m, ResolveMimeToSuffixes(m), detail))
	}
	if len(out) == 0 {
		return []string{describe(AnyMime, []string{AnySuffix}, detail)}
	}
	return out
}

func describe(mime string, suffixes []string, detail int) string {
	if detail == 0 {
		return mime
	}
	label := strings.Join(suffixes, ";")
	if detail >= 2 {
		label += "(" + mime + ")"
	}
	return label
}

// MimeTypeOf maps the last ".suffix" of name to a MIME type. Names without a
// known suffix map to "*/*".
func MimeTypeOf(name string) string {
	indexOnce.Do(buildIndex)

	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return AnyMime
	}
	if m, ok := bySuffix[strings.ToLower(name[dot:])]; ok {
		return m
	}
	return AnyMime
}

// DetectMimeType returns the MIME type of the file at path. The suffix table
// is consulted first, content sniffing is the fallback for unknown suffixes.
func DetectMimeType(fs afero.Fs, path string) (string, error) {
	if m := MimeTypeOf(filepath.Base(path)); m != AnyMime {
		return m, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return "", errors.NewFileError("failed to open file", path, errors.FileNotFound, err)
		}
		return "", errors.NewFileError("failed to open file", path, errors.FileAccessDenied, err)
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", errors.NewFileError("failed to detect MIME type", path, errors.FileAccessDenied, err)
	}
	m, _, _ := strings.Cut(detected.String(), ";")
	return strings.TrimSpace(m), nil
}
