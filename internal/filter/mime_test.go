package filter

import (
	"testing"

	"filechooser/internal/errors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMimeToSuffixes(t *testing.T) {
	tests := []struct {
		mime string
		want []string
	}{
		{"text/plain", []string{".txt"}},
		{"image/jpeg", []string{".jpe", ".jpeg", ".jpg"}},
		{"audio/midi", []string{".mid", ".midi"}},
		{"video/*", []string{".dl", ".fli", ".gl", ".mpe", ".mpeg", ".mpg", ".mov", ".qt", ".asf", ".asx", ".avi", ".movie"}},
		{"x-world/*", []string{".vrm", ".vrml", ".wrl"}},
		{"*/*", []string{".*"}},
		{"", []string{".*"}},
		{"bogus/mime", []string{".*"}},
		{"nope/*", []string{".*"}},
		{"text", []string{".*"}},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMimeToSuffixes(tt.mime))
		})
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	got := ResolveMimeToSuffixes("image/jpeg")
	got[0] = ".mutated"
	assert.Equal(t, ".jpe", ResolveMimeToSuffixes("image/jpeg")[0])
}

func TestTrimAndValidateMimes(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"unknown only", []string{"bogus/mime"}, []string{"*/*"}},
		{"nil", nil, []string{"*/*"}},
		{"blank entries", []string{"", "  "}, []string{"*/*"}},
		{"keeps known in order", []string{"image/png", "bogus/x", "text/plain"}, []string{"image/png", "text/plain"}},
		{"wildcard subtype", []string{"audio/*", "nothing/*"}, []string{"audio/*"}},
		{"universal", []string{"*/*"}, []string{"*/*"}},
		{"repeats dropped", []string{"text/html", "text/html"}, []string{"text/html"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimAndValidateMimes(tt.input))
		})
	}
}

func TestDescribeFilters(t *testing.T) {
	mimes := []string{"text/html", "image/png"}

	assert.Equal(t, mimes, DescribeFilters(mimes, 0))
	assert.Equal(t, mimes, DescribeFilters(mimes, -3))
	assert.Equal(t, []string{".htm;.html", ".png"}, DescribeFilters(mimes, 1))
	assert.Equal(t, []string{".htm;.html(text/html)", ".png(image/png)"}, DescribeFilters(mimes, 2))
	assert.Equal(t, DescribeFilters(mimes, 2), DescribeFilters(mimes, 9))

	assert.Equal(t, []string{".*"}, DescribeFilters([]string{"*/*"}, 1))
	assert.Equal(t, []string{".*"}, DescribeFilters([]string{""}, 1))
	assert.Equal(t, []string{".*(*/*)"}, DescribeFilters(nil, 2))

	blanks := []string{"", "text/html", ""}
	for detail := 0; detail <= 2; detail++ {
		assert.Len(t, DescribeFilters(blanks, detail), 1, "detail %d", detail)
	}
	assert.Equal(t, []string{"text/html"}, DescribeFilters(blanks, 0))
	assert.Equal(t, []string{"*/*"}, DescribeFilters([]string{""}, 0))
	assert.Equal(t, []string{"*/*"}, DescribeFilters(nil, -1))
}

func TestMimeTypeOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"song.MP3", "audio/mpeg"},
		{"page.html", "text/html"},
		{"archive.tar.gz", "*/*"},
		{"backup.tgz", "application/x-gtar"},
		{"Makefile", "*/*"},
		{"", "*/*"},
		{"font.pk", "application/x-tex-pk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeTypeOf(tt.name))
		})
	}
}

func TestDetectMimeType(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/notes.txt", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/data/blob", []byte("%PDF-1.4\n%âãÏÓ\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/data/README", []byte("plain words here\n"), 0644))

	m, err := DetectMimeType(fs, "/data/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", m)

	m, err = DetectMimeType(fs, "/data/blob")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", m)

	m, err = DetectMimeType(fs, "/data/README")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", m)

	_, err = DetectMimeType(fs, "/data/missing")
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}
