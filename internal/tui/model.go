// Package tui is the terminal front end of the chooser. It renders a
// session and forwards key presses to it; all chooser rules live in the
// session and below.
package tui

import (
	"fmt"

	"filechooser/internal/errors"
	"filechooser/internal/log"
	"filechooser/internal/session"
	"filechooser/internal/tui/common"
	"filechooser/internal/tui/messages"
	"filechooser/internal/tui/styles"
	"filechooser/internal/tui/views"
	"filechooser/internal/watch"
	"filechooser/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

var errWatchStopped = errors.New("directory watching stopped")

type editTarget int

const (
	editNone editTarget = iota
	editName
	editFolder
)

// Model is the bubbletea model of the chooser.
type Model struct {
	sess    *session.Session
	keys    types.KeyMap
	help    help.Model
	theme   styles.Theme
	detail  int
	watcher *watch.Watcher

	cursor int
	height int

	editing     editTarget
	nameInput   textinput.Model
	folderInput textinput.Model

	overwrite *session.Result
	status    string
	statusErr bool
	finished  bool
}

// Option configures a Model.
type Option func(*Model)

// WithTheme selects a named theme.
func WithTheme(name string) Option {
	return func(m *Model) { m.theme = styles.ForName(name) }
}

// WithDetail sets the filter label detail level.
func WithDetail(detail int) Option {
	return func(m *Model) { m.detail = detail }
}

// WithWatcher reloads the listing when w reports changes.
func WithWatcher(w *watch.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys types.KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// New returns a model driving sess.
func New(sess *session.Session, opts ...Option) *Model {
	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = "file name"
	name.CharLimit = 255

	folder := textinput.New()
	folder.Prompt = "New folder: "
	folder.CharLimit = 255

	m := &Model{
		sess:        sess,
		keys:        types.DefaultKeyMap(),
		help:        help.New(),
		theme:       styles.ForName("default"),
		detail:      1,
		nameInput:   name,
		folderInput: folder,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.nameInput.PromptStyle = m.theme.Prompt
	m.folderInput.PromptStyle = m.theme.Prompt
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	m.syncWatch()
	return m.waitForChange()
}

// Result returns the session result and whether the user confirmed one.
func (m *Model) Result() (session.Result, bool) {
	if !m.sess.Done() {
		return session.Result{}, false
	}
	return m.sess.Result(), true
}

// Session returns the driven session.
func (m *Model) Session() *session.Session { return m.sess }

// View implements tea.Model
func (m *Model) View() string {
	if m.finished {
		return ""
	}
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-10, 3)
		m.help.Width = msg.Width
		return m, nil

	case messages.ReloadMsg:
		if msg.Dir == m.sess.Dir() {
			m.sess.Reload()
			m.clampCursor()
		}
		return m, m.waitForChange()

	case messages.ErrorMsg:
		m.setError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.overwrite != nil {
			return m.handleOverwriteKeys(msg)
		}
		if m.editing != editNone {
			return m.handleInputKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.sess.Cancel()
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.sess.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Activate):
		before := m.sess.Dir()
		if err := m.sess.Activate(m.cursor); err != nil {
			m.setError(err)
			return m, nil
		}
		return m.afterAction(before)

	case key.Matches(msg, m.keys.Back):
		before := m.sess.Dir()
		m.sess.Back()
		return m.afterAction(before)

	case key.Matches(msg, m.keys.Toggle):
		if l := m.sess.Listing(); l != nil {
			if i, ok := l.FileIndex(m.cursor); ok {
				m.sess.Toggle(i)
			}
		}

	case key.Matches(msg, m.keys.NextFilter):
		if m.sess.State() == session.InDirectory && len(m.sess.Filters()) > 1 {
			m.sess.SetFilterIndex((m.sess.FilterIndex() + 1) % len(m.sess.Filters()))
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.NewFolder):
		if m.sess.State() == session.InDirectory {
			m.editing = editFolder
			m.folderInput.SetValue("")
			return m, m.folderInput.Focus()
		}

	case key.Matches(msg, m.keys.EditName):
		if m.sess.Mode() == types.Save {
			m.editing = editName
			return m, m.nameInput.Focus()
		}

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil

	case tea.KeyEnter:
		if m.editing == editFolder {
			name := m.folderInput.Value()
			m.stopEditing()
			before := m.sess.Dir()
			if err := m.sess.MakeDir(name); err != nil {
				m.setError(err)
				return m, nil
			}
			m.setStatus("Created " + name)
			return m.afterAction(before)
		}
		m.stopEditing()
		return m.confirm()
	}

	var cmd tea.Cmd
	if m.editing == editFolder {
		m.folderInput, cmd = m.folderInput.Update(msg)
		return m, cmd
	}
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.sess.SetName(m.nameInput.Value())
	if status := m.sess.NameStatus(); status.OK() {
		m.clearStatus()
	} else {
		m.status, m.statusErr = status.String(), true
	}
	return m, cmd
}

func (m *Model) handleOverwriteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.overwrite = nil
		return m.quit()
	case "n", "N", "esc":
		m.overwrite = nil
		m.sess.Resume()
		m.clearStatus()
	}
	return m, nil
}

func (m *Model) confirm() (tea.Model, tea.Cmd) {
	if !m.sess.CanConfirm() {
		if m.sess.Mode() == types.Save {
			m.setStatus(m.sess.NameStatus().String())
			m.statusErr = true
		}
		return m, nil
	}
	res, err := m.sess.Confirm()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if res.Overwrite {
		m.overwrite = &res
		m.status, m.statusErr = fmt.Sprintf("%s exists. Overwrite? (y/n)", res.Paths[0]), false
		return m, nil
	}
	return m.quit()
}

// afterAction resets the cursor when the view moved and finishes the
// program once the session has a result.
func (m *Model) afterAction(before string) (tea.Model, tea.Cmd) {
	if m.sess.Done() {
		if res := m.sess.Result(); res.Overwrite {
			m.overwrite = &res
			m.status, m.statusErr = fmt.Sprintf("%s exists. Overwrite? (y/n)", res.Paths[0]), false
			return m, nil
		}
		return m.quit()
	}
	if m.sess.Dir() != before || m.sess.State() == session.AtRoot {
		m.cursor = 0
		m.syncWatch()
	}
	if m.sess.Mode() == types.Save && m.nameInput.Value() != m.sess.Name() {
		m.nameInput.SetValue(m.sess.Name())
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.finished = true
	return m, tea.Quit
}

func (m *Model) stopEditing() {
	m.editing = editNone
	m.nameInput.Blur()
	m.folderInput.Blur()
}

func (m *Model) clampCursor() {
	if n := m.sess.Len(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) syncWatch() {
	if m.watcher == nil || m.sess.Dir() == "" {
		return
	}
	if err := m.watcher.Watch(m.sess.Dir()); err != nil {
		log.LogWithFields(log.F("dir", m.sess.Dir()), log.F("error", err.Error())).Debug("Watch not updated")
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		change, ok := <-events
		if !ok {
			return messages.ErrorMsg{Err: errWatchStopped}
		}
		return messages.ReloadMsg{Dir: change.Dir}
	}
}

func (m *Model) setStatus(text string) { m.status, m.statusErr = text, false }

func (m *Model) setError(err error) { m.status, m.statusErr = err.Error(), true }

func (m *Model) clearStatus() { m.status, m.statusErr = "", false }

// Header implements common.ModelReader.
func (m *Model) Header() string {
	if m.sess.State() == session.AtRoot {
		return "Storage"
	}
	return m.sess.Dir()
}

// Rows implements common.ModelReader.
func (m *Model) Rows() []common.Row {
	if m.sess.State() == session.AtRoot {
		roots := m.sess.Roots()
		rows := make([]common.Row, 0, len(roots))
		for _, r := range roots {
			detail := fmt.Sprintf("%s free of %s", humanize.IBytes(r.Free), humanize.IBytes(r.Total))
			if !r.Writable {
				detail += ", read-only"
			}
			rows = append(rows, common.Row{Label: r.Path, IsDir: true, Detail: detail})
		}
		return rows
	}

	listing := m.sess.Listing()
	multi := m.sess.Mode() == types.OpenMultiple
	rows := make([]common.Row, 0, listing.Len())
	for _, d := range listing.Dirs {
		rows = append(rows, common.Row{Label: d.Name, IsDir: true})
	}
	for i, f := range listing.Files {
		rows = append(rows, common.Row{
			Label:     f.Name,
			Detail:    humanize.IBytes(uint64(f.Size)),
			Checkable: multi,
			Checked:   listing.Selected(i),
		})
	}
	return rows
}

// Cursor implements common.ModelReader.
func (m *Model) Cursor() int { return m.cursor }

// Height implements common.ModelReader.
func (m *Model) Height() int { return m.height }

// FilterLabel implements common.ModelReader.
func (m *Model) FilterLabel() string {
	if m.sess.State() != session.InDirectory || m.sess.Mode() == types.SelectDirectory {
		return ""
	}
	filters := m.sess.Filters()
	label := filters[m.sess.FilterIndex()].Label(m.detail)
	if len(filters) > 1 {
		label += fmt.Sprintf(" [%d/%d]", m.sess.FilterIndex()+1, len(filters))
	}
	return label
}

// InputView implements common.ModelReader.
func (m *Model) InputView() string {
	switch {
	case m.editing == editFolder:
		return m.folderInput.View()
	case m.sess.Mode() == types.Save:
		return m.nameInput.View()
	}
	return ""
}

// Status implements common.ModelReader.
func (m *Model) Status() (string, bool) { return m.status, m.statusErr }

// HelpView implements common.ModelReader.
func (m *Model) HelpView() string { return m.help.View(m.keys) }

// Theme implements common.ModelReader.
func (m *Model) Theme() styles.Theme { return m.theme }
