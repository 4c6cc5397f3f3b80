// Package watch reports changes to the directory a chooser is showing.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"filechooser/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is an entry appearing in or leaving the watched directory.
type Change struct {
	Dir  string
	Path string
	Op   fsnotify.Op
}

const relevantOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher follows one directory at a time using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan Change
	stopChan  chan struct{}
	done      chan struct{}

	mutex   sync.Mutex
	dir     string
	stopped bool
}

// New creates a watcher and starts its event loop.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan Change, 16),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch makes dir the watched directory, dropping the previous one.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher stopped")
	}
	if dir == w.dir {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err.Error())).Debug("Failed to drop watch")
		}
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir

	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dir
}

// Events delivers changes. It is closed by Stop.
func (w *Watcher) Events() <-chan Change {
	return w.events
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			change := Change{Dir: filepath.Dir(event.Name), Path: event.Name, Op: event.Op}

			// Send event non-blockingly; a reload covers every dropped change
			select {
			case w.events <- change:
			default:
				log.LogWithFields(log.F("file", event.Name)).Debug("Event channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err.Error())).Warn("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop ends the event loop and closes Events. It is safe to call twice.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.stopped {
		w.mutex.Unlock()
		return
	}
	w.stopped = true
	close(w.stopChan)
	w.mutex.Unlock()

	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err.Error())).Warn("Error closing fsnotify watcher")
	}
}
