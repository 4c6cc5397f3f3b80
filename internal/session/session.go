// Package session drives one chooser dialog: it moves between the storage
// root selector and directory listings and turns user actions into a result.
package session

import (
	"path/filepath"

	"filechooser/internal/browse"
	"filechooser/internal/errors"
	"filechooser/internal/filter"
	"filechooser/internal/log"
	"filechooser/internal/storage"
	"filechooser/pkg/types"

	"github.com/google/uuid"
)

// State tells which view a session shows.
type State int

const (
	// AtRoot shows the storage roots
	AtRoot State = iota
	// InDirectory shows a directory listing
	InDirectory
)

func (s State) String() string {
	if s == AtRoot {
		return "roots"
	}
	return "directory"
}

// ErrNotConfirmable is returned by Confirm when the current state has
// nothing to hand back.
var ErrNotConfirmable = errors.New("nothing to confirm")

// Result is what a finished session hands back to its caller.
type Result struct {
	Mode  types.Mode `json:"mode"`
	Paths []string   `json:"paths"`
	// Overwrite is set in save mode when the chosen path already exists
	Overwrite bool `json:"overwrite,omitempty"`
}

// Session is owned by a single goroutine.
type Session struct {
	id     string
	lister *browse.Lister
	mode   types.Mode
	logger log.Logging

	state   State
	roots   []storage.Root
	listing *browse.Listing
	name    string

	done      bool
	cancelled bool
	result    Result
}

// ListerOptions adapts base to what mode needs. Directory and save modes
// need writable directories unless ignoreReadOnly is set.
func ListerOptions(base browse.Options, mode types.Mode, ignoreReadOnly bool) browse.Options {
	base.DirsOnly = !mode.ShowsFiles()
	base.RequireWritable = mode.NeedsWritable() && !ignoreReadOnly
	return base
}

// New opens start and returns a session in the directory state.
func New(lister *browse.Lister, mode types.Mode, start string) *Session {
	id := uuid.NewString()
	s := &Session{
		id:     id,
		lister: lister,
		mode:   mode,
		logger: log.LogWithFields(log.F("session", id), log.F("mode", mode.String())),
		state:  InDirectory,
	}
	s.listing = lister.Open(start)
	s.logger.With(log.F("dir", s.listing.Dir)).Debug("Session started")
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Mode returns the dialog mode.
func (s *Session) Mode() types.Mode { return s.mode }

// State returns the current view.
func (s *Session) State() State { return s.state }

// Roots returns the storage roots shown in the root state.
func (s *Session) Roots() []storage.Root { return s.roots }

// Listing returns the current listing, or nil in the root state.
func (s *Session) Listing() *browse.Listing {
	if s.state != InDirectory {
		return nil
	}
	return s.listing
}

// Dir returns the browsed directory, or "" in the root state.
func (s *Session) Dir() string {
	if s.state != InDirectory {
		return ""
	}
	return s.listing.Dir
}

// Filters returns the selectable filters.
func (s *Session) Filters() []filter.Spec { return s.lister.Filters() }

// FilterIndex returns the active filter index.
func (s *Session) FilterIndex() int { return s.listing.FilterIndex() }

// ShowHidden reports whether dot names are listed and accepted.
func (s *Session) ShowHidden() bool { return s.lister.Options().ShowHidden }

// Len returns the number of selectable items in the current view.
func (s *Session) Len() int {
	if s.state == AtRoot {
		return len(s.roots)
	}
	return s.listing.Len()
}

// Name returns the pending save name.
func (s *Session) Name() string { return s.name }

// Done reports whether the session produced a result.
func (s *Session) Done() bool { return s.done }

// Cancelled reports whether the session was cancelled.
func (s *Session) Cancelled() bool { return s.cancelled }

// Result returns the result of a finished session.
func (s *Session) Result() Result { return s.result }

// Back goes to the parent directory, or to the root selector when the
// listing has no parent. It reports false when already at the roots.
func (s *Session) Back() bool {
	if s.state == AtRoot {
		return false
	}
	if up := s.lister.NavigateUp(s.listing); up != nil {
		s.listing = up
		return true
	}
	s.state = AtRoot
	s.roots = s.lister.Roots()
	s.logger.With(log.F("roots", len(s.roots))).Debug("Showing storage roots")
	return true
}

// Activate handles a pick of item pos in the current view. Roots and
// directories are entered. Files finish the session in open mode, toggle in
// multiple mode, and fill the name in save mode, where picking the same name
// twice confirms.
func (s *Session) Activate(pos int) error {
	if s.state == AtRoot {
		if pos < 0 || pos >= len(s.roots) {
			return nil
		}
		s.listing = s.lister.NavigateInto(s.listing, s.roots[pos].Path)
		s.state = InDirectory
		return nil
	}

	entry, ok := s.listing.Entry(pos)
	if !ok {
		return nil
	}
	if entry.IsDir {
		s.listing = s.lister.NavigateInto(s.listing, entry.Path)
		return nil
	}

	switch s.mode {
	case types.Open:
		s.finish(Result{Mode: s.mode, Paths: []string{entry.Path}})
	case types.OpenMultiple:
		if i, ok := s.listing.FileIndex(pos); ok {
			s.Toggle(i)
		}
	case types.Save:
		if s.name == entry.Name {
			_, err := s.Confirm()
			return err
		}
		s.name = entry.Name
	}
	return nil
}

// SetFilterIndex switches the active filter. Out of range selects the first.
func (s *Session) SetFilterIndex(i int) {
	s.listing = s.lister.SetActiveFilterIndex(s.listing, i)
}

// Toggle flips the selection of file i in multiple mode.
func (s *Session) Toggle(i int) bool {
	if s.state != InDirectory || s.mode != types.OpenMultiple {
		return false
	}
	return s.listing.Toggle(i, !s.listing.Selected(i))
}

// SetName sets the pending save name.
func (s *Session) SetName(name string) { s.name = name }

// NameStatus validates the pending save name.
func (s *Session) NameStatus() filter.NameStatus {
	return filter.CheckFilename(s.name, s.ShowHidden())
}

// CanConfirm reports whether Confirm would produce a result.
func (s *Session) CanConfirm() bool {
	if s.state != InDirectory || s.done {
		return false
	}
	switch s.mode {
	case types.SelectDirectory:
		return true
	case types.OpenMultiple:
		return s.listing.SelectionCount() > 0
	case types.Save:
		return s.NameStatus().OK()
	}
	return false
}

// Confirm finishes the session with the current directory, the selected
// files or the formatted save path, depending on the mode.
func (s *Session) Confirm() (Result, error) {
	if !s.CanConfirm() {
		if s.mode == types.Save && s.state == InDirectory {
			return Result{}, errors.NewFileError(s.NameStatus().String(), s.name, errors.InvalidFilename, nil)
		}
		return Result{}, ErrNotConfirmable
	}

	res := Result{Mode: s.mode}
	switch s.mode {
	case types.SelectDirectory:
		res.Paths = []string{s.listing.Dir}
	case types.OpenMultiple:
		res.Paths = s.listing.SelectedFiles()
	case types.Save:
		name := s.lister.ActiveFilter(s.listing).FormatForSave(s.name, -1)
		path := filepath.Join(s.listing.Dir, name)
		if s.lister.IsDir(path) {
			return Result{}, errors.NewFileError("a folder with this name exists", path, errors.FileExists, nil)
		}
		res.Paths = []string{path}
		res.Overwrite = s.lister.Exists(path)
	}
	s.finish(res)
	return res, nil
}

// MakeDir creates a folder in the current directory and enters it.
func (s *Session) MakeDir(name string) error {
	if s.state != InDirectory {
		return errors.NewFileError("no directory to create in", name, errors.InvalidPath, nil)
	}
	listing, err := s.lister.MakeDir(s.listing, name)
	if err != nil {
		s.logger.With(log.F("name", name), log.F("error", err.Error())).Debug("Folder not created")
		return err
	}
	s.listing = listing
	return nil
}

// Reload refreshes the current view from the filesystem.
func (s *Session) Reload() {
	if s.state == AtRoot {
		s.roots = s.lister.Roots()
		return
	}
	s.listing = s.lister.Reload(s.listing)
}

// Resume reopens a session whose result the user declined, such as an
// overwrite they refused.
func (s *Session) Resume() {
	s.done = false
	s.result = Result{}
}

// Cancel ends the session without a result.
func (s *Session) Cancel() {
	s.cancelled = true
	s.done = false
	s.logger.Debug("Session cancelled")
}

func (s *Session) finish(res Result) {
	s.result = res
	s.done = true
	s.logger.With(log.F("paths", res.Paths), log.F("overwrite", res.Overwrite)).Info("Selection confirmed")
}
