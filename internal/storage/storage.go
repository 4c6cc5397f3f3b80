// Package storage enumerates the mounted volumes a chooser can start from.
package storage

import (
	"os"
	"path/filepath"

	"filechooser/internal/errors"
	"filechooser/internal/log"

	"github.com/spf13/afero"
)

// Root is a mounted volume offered at the top of the chooser.
type Root struct {
	Path     string `json:"path"`
	Writable bool   `json:"writable"`
	Total    uint64 `json:"total"`
	Free     uint64 `json:"free"`
}

// Probe answers platform questions about mounted volumes.
type Probe interface {
	// MountPoints returns mount paths in platform order.
	MountPoints() ([]string, error)
	// Capacity returns total and free bytes of the volume holding path.
	Capacity(path string) (total, free uint64, err error)
	// Writable reports whether the process may create entries in path.
	Writable(path string) bool
}

// ListRoots returns every mount point that exists on fs, reports a nonzero
// capacity and, when requireWritable is set, is writable. Probe order is
// kept and repeated paths are dropped. If the probe cannot enumerate mounts
// the result is the single fallback root.
func ListRoots(fs afero.Fs, probe Probe, requireWritable bool, fallback string) []Root {
	mounts, err := probe.MountPoints()
	if err != nil {
		log.LogWithError(
			errors.NewFileError("storage enumeration failed", fallback, errors.StorageUnavailable, err),
		).Warn("Using fallback root")
		return []Root{fallbackRoot(probe, fallback)}
	}

	seen := make(map[string]bool, len(mounts))
	roots := make([]Root, 0, len(mounts))
	for _, m := range mounts {
		p := filepath.Clean(m)
		if seen[p] {
			continue
		}
		seen[p] = true

		if ok, _ := afero.DirExists(fs, p); !ok {
			continue
		}
		total, free, err := probe.Capacity(p)
		if err != nil || total == 0 {
			log.Debugf("Skipping mount %s: no capacity", p)
			continue
		}
		writable := probe.Writable(p)
		if requireWritable && !writable {
			continue
		}
		roots = append(roots, Root{Path: p, Writable: writable, Total: total, Free: free})
	}
	return roots
}

func fallbackRoot(probe Probe, path string) Root {
	r := Root{Path: path, Writable: probe.Writable(path)}
	if total, free, err := probe.Capacity(path); err == nil {
		r.Total, r.Free = total, free
	}
	return r
}

// IsMountRoot reports whether dir is an existing mount point. Unlike
// ListRoots it asks the probe for mount paths only, so it is cheap enough for
// every navigation step. When mounts cannot be enumerated only fallback
// counts as a root.
func IsMountRoot(fs afero.Fs, probe Probe, dir, fallback string) bool {
	dir = filepath.Clean(dir)
	mounts, err := probe.MountPoints()
	if err != nil {
		return fallback != "" && dir == filepath.Clean(fallback)
	}
	for _, m := range mounts {
		if filepath.Clean(m) == dir {
			ok, _ := afero.DirExists(fs, dir)
			return ok
		}
	}
	return false
}

// DefaultRoot is where the chooser lands when a path is unusable.
func DefaultRoot() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return string(filepath.Separator)
}
