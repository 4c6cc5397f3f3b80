package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"filechooser/pkg/testutils"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, events <-chan Change, path string, op fsnotify.Op) Change {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event channel closed unexpectedly")
			if ev.Path == path && ev.Op.Has(op) {
				return ev
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s on %s", op, path)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(dir))
	assert.Equal(t, dir, w.Dir())

	created := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(created, []byte("x"), 0644))
	ev := waitFor(t, w.Events(), created, fsnotify.Create)
	assert.Equal(t, dir, ev.Dir)

	require.NoError(t, os.Remove(created))
	waitFor(t, w.Events(), created, fsnotify.Remove)

	folder := filepath.Join(dir, "Folder")
	require.NoError(t, os.Mkdir(folder, 0755))
	waitFor(t, w.Events(), folder, fsnotify.Create)
}

func TestWatchReplacesDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, second)

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), nil, 0644))
	inSecond := filepath.Join(second, "seen.txt")
	require.NoError(t, os.WriteFile(inSecond, nil, 0644))

	ev := waitFor(t, w.Events(), inSecond, fsnotify.Create)
	assert.Equal(t, second, ev.Dir)

	// nothing from the first directory may be queued behind it
	select {
	case ev := <-w.Events():
		assert.NotEqual(t, first, ev.Dir)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchErrors(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "missing")))

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, w.Watch(file))
	assert.Equal(t, "", w.Dir())

	w.Stop()
	w.Stop()
	assert.Error(t, w.Watch(t.TempDir()))

	_, ok := <-w.Events()
	assert.False(t, ok, "event channel should be closed after stop")
}
