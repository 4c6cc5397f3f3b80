//go:build !unix

package storage

import "os"

// writable falls back to the owner write bit where access(2) is missing.
func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0200 != 0
}
