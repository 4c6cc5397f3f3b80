// Package browse lists directories for the chooser: subdirectories and the
// files visible under the active filter, both in ordinal name order.
package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filechooser/internal/errors"
	"filechooser/internal/filter"
	"filechooser/internal/log"
	"filechooser/internal/storage"
	"filechooser/pkg/types"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// Options control what a Lister shows.
type Options struct {
	// Filters are the selectable file type filters. Empty means "*/*".
	Filters []filter.Spec
	// FilterIndex is the filter active for listings made by Open.
	FilterIndex int
	// ShowHidden lists dot entries and allows creating them.
	ShowHidden bool
	// RequireWritable rejects directories and roots the process cannot write.
	RequireWritable bool
	// DirsOnly leaves Files empty.
	DirsOnly bool
	// Ignore holds glob patterns for names hidden from both lists.
	Ignore []string
	// DefaultRoot replaces unusable paths. Empty means storage.DefaultRoot().
	DefaultRoot string
}

// Lister builds listings over a filesystem.
type Lister struct {
	fs     afero.Fs
	probe  storage.Probe
	opts   Options
	ignore []glob.Glob
}

// NewLister returns a lister over fs. Ignore patterns that do not compile
// are reported as an InvalidConfig error.
func NewLister(fs afero.Fs, probe storage.Probe, opts Options) (*Lister, error) {
	if len(opts.Filters) == 0 {
		opts.Filters = []filter.Spec{filter.NewMime(filter.AnyMime)}
	} else {
		opts.Filters = append([]filter.Spec(nil), opts.Filters...)
	}
	if opts.FilterIndex < 0 || opts.FilterIndex >= len(opts.Filters) {
		opts.FilterIndex = 0
	}
	if opts.DefaultRoot == "" {
		opts.DefaultRoot = storage.DefaultRoot()
	}
	opts.DefaultRoot = filepath.Clean(opts.DefaultRoot)

	l := &Lister{fs: fs, probe: probe, opts: opts}
	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", pattern, errors.InvalidConfig, err)
		}
		l.ignore = append(l.ignore, g)
	}
	return l, nil
}

// Options returns the effective options.
func (l *Lister) Options() Options { return l.opts }

// Filters returns the selectable filters.
func (l *Lister) Filters() []filter.Spec { return l.opts.Filters }

// ActiveFilter returns the filter listing was built with.
func (l *Lister) ActiveFilter(listing *Listing) filter.Spec {
	return l.opts.Filters[l.clampFilter(listing.filterIndex)]
}

// DefaultRoot returns the directory used in place of unusable paths.
func (l *Lister) DefaultRoot() string { return l.opts.DefaultRoot }

// Exists reports whether path names an existing entry.
func (l *Lister) Exists(path string) bool {
	ok, _ := afero.Exists(l.fs, path)
	return ok
}

// IsDir reports whether path is a directory, including ones the listings
// leave out.
func (l *Lister) IsDir(path string) bool {
	ok, _ := afero.IsDir(l.fs, path)
	return ok
}

// Roots returns the storage roots the chooser may start from.
func (l *Lister) Roots() []storage.Root {
	return storage.ListRoots(l.fs, l.probe, l.opts.RequireWritable, l.opts.DefaultRoot)
}

// Open lists path with the configured filter. An unusable path is replaced
// by the default root.
func (l *Lister) Open(path string) *Listing {
	return l.open(path, l.opts.FilterIndex)
}

// NavigateInto lists target with the filter of listing. A relative target is
// taken relative to listing.Dir.
func (l *Lister) NavigateInto(listing *Listing, target string) *Listing {
	if !filepath.IsAbs(target) {
		target = filepath.Join(listing.Dir, target)
	}
	return l.open(target, listing.filterIndex)
}

// NavigateUp lists the parent of listing.Dir. It returns nil when the
// directory is a storage root or the filesystem root, which means the caller
// should show the root selector.
func (l *Lister) NavigateUp(listing *Listing) *Listing {
	if l.isRoot(listing.Dir) {
		return nil
	}
	parent := filepath.Dir(listing.Dir)
	if parent == listing.Dir {
		return nil
	}
	return l.open(parent, listing.filterIndex)
}

// SetActiveFilterIndex switches the filter and recomputes the files of
// listing. Directories are kept and the selection is cleared. An out of
// range index selects the first filter.
func (l *Lister) SetActiveFilterIndex(listing *Listing, index int) *Listing {
	index = l.clampFilter(index)
	next := &Listing{
		Dir:         listing.Dir,
		CanGoUp:     listing.CanGoUp,
		Dirs:        listing.Dirs,
		filterIndex: index,
	}
	if !l.opts.DirsOnly {
		_, next.Files = l.read(listing.Dir, l.opts.Filters[index])
	}
	return next
}

// Reload lists listing.Dir again, for example after the filesystem changed.
// Files that are still listed stay selected.
func (l *Lister) Reload(listing *Listing) *Listing {
	next := l.open(listing.Dir, listing.filterIndex)
	next.keepSelection(listing)
	return next
}

// MakeDir creates name inside listing.Dir and returns the listing of the new
// directory.
func (l *Lister) MakeDir(listing *Listing, name string) (*Listing, error) {
	if status := filter.CheckFilename(name, l.opts.ShowHidden); !status.OK() {
		return nil, errors.NewFileError(status.String(), name, errors.InvalidFilename, nil)
	}

	target := filepath.Join(listing.Dir, name)
	if l.Exists(target) {
		return nil, errors.NewFileError("already exists", target, errors.FileExists, nil)
	}
	if err := l.fs.Mkdir(target, 0755); err != nil {
		return nil, errors.NewFileError("failed to create folder", target, errors.FileCreateFailed, err)
	}

	log.LogWithFields(log.F("path", target)).Info("Created folder")
	return l.NavigateInto(listing, target), nil
}

// isRoot reports whether dir is a mount point. Capacity is not consulted.
func (l *Lister) isRoot(dir string) bool {
	return storage.IsMountRoot(l.fs, l.probe, dir, l.opts.DefaultRoot)
}

func (l *Lister) clampFilter(index int) int {
	if index < 0 || index >= len(l.opts.Filters) {
		return 0
	}
	return index
}

func (l *Lister) open(path string, filterIndex int) *Listing {
	filterIndex = l.clampFilter(filterIndex)

	dir, ok := l.usable(path)
	if !ok {
		log.LogWithFields(
			log.F("path", path),
			log.F("fallback", l.opts.DefaultRoot),
		).Debug("Unusable directory, falling back to default root")
		dir = l.opts.DefaultRoot
	}

	listing := &Listing{
		Dir:         dir,
		CanGoUp:     ok && filepath.Dir(dir) != dir && !l.isRoot(dir),
		filterIndex: filterIndex,
	}
	var files []types.Entry
	listing.Dirs, files = l.read(dir, l.opts.Filters[filterIndex])
	if !l.opts.DirsOnly {
		listing.Files = files
	}
	return listing
}

// usable reports whether path is a readable directory that is also writable
// when the options require it.
func (l *Lister) usable(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	dir := filepath.Clean(path)
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", false
		}
		dir = abs
	}

	f, err := l.fs.Open(dir)
	if err != nil {
		return "", false
	}
	info, err := f.Stat()
	f.Close()
	if err != nil || !info.IsDir() {
		return "", false
	}
	if l.opts.RequireWritable && !l.probe.Writable(dir) {
		return "", false
	}
	return dir, true
}

func (l *Lister) read(dir string, spec filter.Spec) (dirs, files []types.Entry) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		log.LogWithFields(log.F("path", dir), log.F("error", err.Error())).Warn("Failed to read directory")
		return nil, nil
	}

	for _, info := range infos {
		name := info.Name()
		if l.ignored(name) {
			continue
		}
		if !l.opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := l.fs.Stat(path)
			if err != nil {
				continue
			}
			info = target
		}

		entry := types.Entry{
			Name:    name,
			Path:    path,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if entry.IsDir {
			dirs = append(dirs, entry)
		} else if spec.Matches(name) {
			files = append(files, entry)
		}
	}

	sortEntries(dirs)
	sortEntries(files)
	return dirs, files
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func sortEntries(entries []types.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ordinalLess(entries[i].Name, entries[j].Name)
	})
}
