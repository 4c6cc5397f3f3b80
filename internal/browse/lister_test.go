package browse

import (
	"sort"
	"testing"

	"filechooser/internal/errors"
	"filechooser/internal/filter"
	"filechooser/pkg/testutils"
	"filechooser/pkg/types"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

type fixture struct {
	fs    afero.Fs
	probe *testutils.FakeProbe
}

func newFixture(t *testing.T) fixture {
	fs := testutils.NewMemFS(t, map[string]string{
		"/storage/emulated/0/b.txt":           "bb",
		"/storage/emulated/0/A.txt":           "a",
		"/storage/emulated/0/a.png":           "png",
		"/storage/emulated/0/.nomedia":        "",
		"/storage/emulated/0/Music/song.mp3":  "mp3",
		"/storage/emulated/0/Download/":       "",
		"/storage/emulated/0/.thumbnails/":    "",
		"/storage/emulated/0/lost+found/":     "",
		"/storage/emulated/0/Docs/readme.txt": "read me",
		"/storage/emulated/0/Docs/Work/":      "",
		"/storage/sdcard1/":                   "",
		"/readonly/notes.txt":                 "",
	})
	probe := &testutils.FakeProbe{
		Mounts:   []string{"/storage/emulated/0", "/storage/sdcard1", "/readonly"},
		ReadOnly: map[string]bool{"/readonly": true},
	}
	return fixture{fs: fs, probe: probe}
}

func (f fixture) lister(t *testing.T, opts Options) *Lister {
	t.Helper()
	if opts.DefaultRoot == "" {
		opts.DefaultRoot = "/storage/emulated/0"
	}
	l, err := NewLister(f.fs, f.probe, opts)
	require.NoError(t, err)
	return l
}

func TestOpenOrdersAndFilters(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{Filters: []filter.Spec{filter.NewExtension("Text", ".txt")}})

	listing := l.Open("/storage/emulated/0")
	assert.Equal(t, "/storage/emulated/0", listing.Dir)
	assert.Equal(t, []string{"A.txt", "b.txt"}, names(listing.Files))
	assert.Equal(t, []string{"Docs", "Download", "Music", "lost+found"}, names(listing.Dirs))
	assert.False(t, listing.CanGoUp, "storage roots have no parent")

	entries := listing.Entries()
	require.Len(t, entries, 6)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "/storage/emulated/0/A.txt", entries[4].Path)
	assert.Equal(t, int64(2), entries[5].Size)
}

func TestDirectoriesPrecedeFiles(t *testing.T) {
	fs := testutils.NewMemFS(t, map[string]string{
		"/mix/0.txt": "", "/mix/zzz/": "", "/mix/Z.txt": "", "/mix/aaa/": "", "/mix/~/": "",
	})
	l, err := NewLister(fs, &testutils.FakeProbe{}, Options{DefaultRoot: "/mix"})
	require.NoError(t, err)

	listing := l.Open("/mix")
	seenFile := false
	for _, e := range listing.Entries() {
		if !e.IsDir {
			seenFile = true
			continue
		}
		assert.False(t, seenFile, "directory %s listed after a file", e.Name)
	}
	assert.Equal(t, []string{"aaa", "zzz", "~"}, names(listing.Dirs))
	assert.Equal(t, []string{"0.txt", "Z.txt"}, names(listing.Files))
}

func TestHiddenEntries(t *testing.T) {
	f := newFixture(t)

	listing := f.lister(t, Options{}).Open("/storage/emulated/0")
	assert.NotContains(t, names(listing.Dirs), ".thumbnails")
	assert.NotContains(t, names(listing.Files), ".nomedia")

	listing = f.lister(t, Options{ShowHidden: true}).Open("/storage/emulated/0")
	assert.Contains(t, names(listing.Dirs), ".thumbnails")
	assert.Contains(t, names(listing.Files), ".nomedia")
	assert.Equal(t, ".thumbnails", listing.Dirs[0].Name)
}

func TestIgnorePatterns(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{Ignore: []string{"lost+found", "*.png"}})

	listing := l.Open("/storage/emulated/0")
	assert.NotContains(t, names(listing.Dirs), "lost+found")
	assert.NotContains(t, names(listing.Files), "a.png")
	assert.Contains(t, names(listing.Files), "A.txt")

	_, err := NewLister(f.fs, f.probe, Options{Ignore: []string{"[unclosed"}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestOpenFallsBackToDefaultRoot(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		opts Options
		path string
	}{
		{"missing", Options{}, "/storage/emulated/0/nope"},
		{"file", Options{}, "/storage/emulated/0/A.txt"},
		{"empty", Options{}, ""},
		{"read only when writable required", Options{RequireWritable: true}, "/readonly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := f.lister(t, tt.opts).Open(tt.path)
			assert.Equal(t, "/storage/emulated/0", listing.Dir)
			assert.False(t, listing.CanGoUp)
		})
	}

	listing := f.lister(t, Options{}).Open("/readonly")
	assert.Equal(t, "/readonly", listing.Dir)
	assert.Equal(t, []string{"notes.txt"}, names(listing.Files))
}

func TestNavigateInto(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{Filters: []filter.Spec{filter.NewExtension("Text", ".txt")}})
	root := l.Open("/storage/emulated/0")

	docs := l.NavigateInto(root, "Docs")
	assert.Equal(t, "/storage/emulated/0/Docs", docs.Dir)
	assert.True(t, docs.CanGoUp)
	assert.Equal(t, []string{"Work"}, names(docs.Dirs))
	assert.Equal(t, []string{"readme.txt"}, names(docs.Files))

	work := l.NavigateInto(docs, "/storage/emulated/0/Docs/Work")
	assert.Equal(t, "/storage/emulated/0/Docs/Work", work.Dir)
	assert.Empty(t, work.Entries())

	bad := l.NavigateInto(docs, "Missing")
	assert.Equal(t, "/storage/emulated/0", bad.Dir)
	assert.False(t, bad.CanGoUp)
}

func TestNavigateUp(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{})

	music := l.Open("/storage/emulated/0/Music")
	up := l.NavigateUp(music)
	require.NotNil(t, up)
	assert.Equal(t, "/storage/emulated/0", up.Dir)

	assert.Nil(t, l.NavigateUp(up), "storage root leads to the root selector")

	outside := l.Open("/storage")
	assert.True(t, outside.CanGoUp)
	top := l.NavigateUp(outside)
	require.NotNil(t, top)
	assert.Equal(t, "/", top.Dir)
	assert.False(t, top.CanGoUp)
	assert.Nil(t, l.NavigateUp(top))
}

func TestNavigationSkipsCapacity(t *testing.T) {
	fs := testutils.NewMemFS(t, map[string]string{
		"/storage/emulated/0/Music/": "",
		"/storage/full/Pictures/":    "",
	})
	probe := &testutils.FakeProbe{
		Mounts: []string{"/storage/emulated/0", "/storage/full"},
		Sizes:  map[string]uint64{"/storage/full": 0},
	}
	l, err := NewLister(fs, probe, Options{DefaultRoot: "/storage/emulated/0"})
	require.NoError(t, err)

	pictures := l.Open("/storage/full/Pictures")
	full := l.NavigateUp(pictures)
	require.NotNil(t, full)
	assert.Equal(t, "/storage/full", full.Dir)
	assert.False(t, full.CanGoUp)
	assert.Nil(t, l.NavigateUp(full))

	music := l.Open("/storage/emulated/0/Music")
	assert.True(t, music.CanGoUp)
	assert.Nil(t, l.NavigateUp(l.NavigateUp(music)))
	assert.Zero(t, probe.CapacityCalls)

	roots := l.Roots()
	require.Len(t, roots, 1, "a mount without capacity is not offered as a root")
	assert.Equal(t, "/storage/emulated/0", roots[0].Path)
	assert.NotZero(t, probe.CapacityCalls)
}

func TestNavigateUpKeepsFilter(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{Filters: []filter.Spec{
		filter.NewMime("*/*"),
		filter.NewMime("audio/mpeg"),
	}})

	music := l.SetActiveFilterIndex(l.Open("/storage/emulated/0/Music"), 1)
	assert.Equal(t, []string{"song.mp3"}, names(music.Files))

	up := l.NavigateUp(music)
	require.NotNil(t, up)
	assert.Equal(t, 1, up.FilterIndex())
	assert.Empty(t, up.Files)
}

func TestSetActiveFilterIndex(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{Filters: []filter.Spec{
		filter.NewExtension("Text", ".txt"),
		filter.NewMime("image/*"),
	}})

	listing := l.Open("/storage/emulated/0")
	require.True(t, listing.Toggle(0, true))

	images := l.SetActiveFilterIndex(listing, 1)
	assert.Equal(t, 1, images.FilterIndex())
	assert.Equal(t, []string{"a.png"}, names(images.Files))
	assert.Equal(t, listing.Dirs, images.Dirs)
	assert.Empty(t, images.SelectedFiles())
	assert.Equal(t, "image/*", l.ActiveFilter(images).Mime())

	clamped := l.SetActiveFilterIndex(images, 5)
	assert.Equal(t, 0, clamped.FilterIndex())
	assert.Equal(t, []string{"A.txt", "b.txt"}, names(clamped.Files))

	assert.Equal(t, 0, l.SetActiveFilterIndex(images, -1).FilterIndex())
}

func TestDefaultFilterShowsEverything(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{FilterIndex: 3})
	require.Len(t, l.Filters(), 1)

	listing := l.Open("/storage/emulated/0")
	assert.Equal(t, 0, listing.FilterIndex())
	assert.Equal(t, []string{"A.txt", "a.png", "b.txt"}, names(listing.Files))
}

func TestDirsOnly(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{DirsOnly: true})

	listing := l.Open("/storage/emulated/0")
	assert.Empty(t, listing.Files)
	assert.NotEmpty(t, listing.Dirs)
	assert.Empty(t, l.SetActiveFilterIndex(listing, 0).Files)
}

func TestSelection(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{})
	listing := l.Open("/storage/emulated/0")
	require.Len(t, listing.Files, 3)

	assert.True(t, listing.Toggle(2, true))
	assert.True(t, listing.Toggle(0, true))
	assert.False(t, listing.Toggle(3, true))
	assert.False(t, listing.Toggle(-1, true))
	assert.Equal(t, []string{"/storage/emulated/0/A.txt", "/storage/emulated/0/b.txt"}, listing.SelectedFiles())
	assert.Equal(t, 2, listing.SelectionCount())

	assert.True(t, listing.Toggle(0, false))
	assert.False(t, listing.Selected(0))
	assert.True(t, listing.Selected(2))
	assert.Equal(t, []string{"/storage/emulated/0/b.txt"}, listing.SelectedFiles())

	reloaded := l.Reload(listing)
	assert.Equal(t, []string{"/storage/emulated/0/b.txt"}, reloaded.SelectedFiles())

	other := l.SetActiveFilterIndex(reloaded, 0)
	assert.Empty(t, other.SelectedFiles())
}

func TestEntryPositions(t *testing.T) {
	f := newFixture(t)
	listing := f.lister(t, Options{}).Open("/storage/emulated/0/Docs")

	e, ok := listing.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "Work", e.Name)

	e, ok = listing.Entry(1)
	require.True(t, ok)
	assert.Equal(t, "readme.txt", e.Name)

	_, ok = listing.Entry(2)
	assert.False(t, ok)

	i, ok := listing.FileIndex(1)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = listing.FileIndex(0)
	assert.False(t, ok)
}

func TestMakeDir(t *testing.T) {
	f := newFixture(t)
	l := f.lister(t, Options{})
	root := l.Open("/storage/emulated/0")

	created, err := l.MakeDir(root, "Projects")
	require.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0/Projects", created.Dir)
	assert.True(t, created.CanGoUp)
	ok, _ := afero.DirExists(f.fs, "/storage/emulated/0/Projects")
	assert.True(t, ok)

	_, err = l.MakeDir(root, "Music")
	assert.True(t, errors.IsFileExists(err))

	for _, bad := range []string{"", "a:b", "-flag", ".hidden"} {
		_, err = l.MakeDir(root, bad)
		assert.True(t, errors.IsInvalidFilename(err), bad)
	}

	hidden, err := f.lister(t, Options{ShowHidden: true}).MakeDir(root, ".cache")
	require.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0/.cache", hidden.Dir)
}

func TestRoots(t *testing.T) {
	f := newFixture(t)

	roots := f.lister(t, Options{}).Roots()
	require.Len(t, roots, 3)
	assert.Equal(t, "/storage/emulated/0", roots[0].Path)

	roots = f.lister(t, Options{RequireWritable: true}).Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "/storage/sdcard1", roots[1].Path)
}

func TestOrdinalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"A", "a", true},
		{"a", "A", false},
		{"B", "a", true},
		{"a", "ab", true},
		{"ab", "a", false},
		{"a", "a", false},
		{"", "a", true},
		{"Z", "é", true},
		{"file10", "file2", true},
		{"\xfe", "\xff", true},
		{"\xff", "\xfe", false},
		{"a\xfe", "a\xff", true},
		{"\xff", "\xff", false},
		{"\uffff", "\xfe", true},
		{"\xfe", "\U0010ffff", false},
		{"\xfe", "\xfex", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinalLess(tt.a, tt.b), "%q < %q", tt.a, tt.b)
	}
}

func TestSortInvalidUTF8(t *testing.T) {
	input := []string{"\xff", "b", "\xfe", "\uFFFD", "a\xfe", "a\xc3"}
	entries := make([]types.Entry, 0, len(input))
	for _, n := range input {
		entries = append(entries, types.Entry{Name: n})
	}

	sortEntries(entries)
	assert.Equal(t, []string{"a\xc3", "a\xfe", "b", "\uFFFD", "\xfe", "\xff"}, names(entries))

	for i := 0; i < len(entries); i++ {
		for j := 0; j < len(entries); j++ {
			a, b := entries[i].Name, entries[j].Name
			assert.Equal(t, i < j, ordinalLess(a, b), "%q < %q", a, b)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	input := []string{"b.txt", "A.txt", "a.png", "a", "ab", "B", "é", "_x", "10", "9"}
	entries := make([]types.Entry, 0, len(input))
	for _, n := range input {
		entries = append(entries, types.Entry{Name: n})
	}

	sortEntries(entries)
	once := names(entries)
	sortEntries(entries)
	assert.Equal(t, once, names(entries))
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return ordinalLess(entries[i].Name, entries[j].Name)
	}))
	assert.Equal(t, []string{"10", "9", "A.txt", "B", "_x", "a", "a.png", "ab", "b.txt", "é"}, once)
}
