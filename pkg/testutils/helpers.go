package testutils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemFS builds an in-memory tree. Keys ending in "/" become directories,
// every other key becomes a file holding its value.
func NewMemFS(t *testing.T, entries map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range entries {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fs.MkdirAll(filepath.Clean(name), 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// CreateTestFilesWithDefault creates a small mixed listing under dir
func CreateTestFilesWithDefault(t *testing.T, dir string) {
	CreateTestFilesWithContent(t, dir, map[string]string{
		"b.txt": "test content 1",
		"A.txt": "test content 2",
		"a.png": "image content",
	})
}

// FakeProbe is a storage probe with canned answers.
type FakeProbe struct {
	Mounts []string
	Err    error
	// Sizes maps a mount to its capacity; missing entries report 1 GiB
	Sizes map[string]uint64
	// ReadOnly lists paths, and everything below them, that are not writable
	ReadOnly map[string]bool
	// CapacityCalls counts Capacity lookups
	CapacityCalls int
}

// MountPoints returns the canned mounts or error.
func (p *FakeProbe) MountPoints() ([]string, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return append([]string(nil), p.Mounts...), nil
}

// Capacity returns the canned size with half of it free.
func (p *FakeProbe) Capacity(path string) (uint64, uint64, error) {
	p.CapacityCalls++
	size, ok := p.Sizes[path]
	if !ok {
		size = 1 << 30
	}
	if size == 0 {
		return 0, 0, errors.New("no capacity")
	}
	return size, size / 2, nil
}

// Writable reports false for paths at or below a read-only entry.
func (p *FakeProbe) Writable(path string) bool {
	for ro := range p.ReadOnly {
		if path == ro || strings.HasPrefix(path, strings.TrimSuffix(ro, "/")+"/") {
			return false
		}
	}
	return true
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
