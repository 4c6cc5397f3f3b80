package storage

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// SystemProbe asks the operating system about mounted volumes.
type SystemProbe struct {
	// All includes pseudo filesystems such as proc and tmpfs.
	All bool
}

// NewSystemProbe returns a probe limited to physical devices.
func NewSystemProbe() *SystemProbe {
	return &SystemProbe{}
}

// MountPoints implements Probe.
func (p *SystemProbe) MountPoints() ([]string, error) {
	parts, err := disk.Partitions(p.All)
	if err != nil {
		return nil, err
	}
	mounts := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Mountpoint != "" {
			mounts = append(mounts, part.Mountpoint)
		}
	}
	return mounts, nil
}

// Capacity implements Probe.
func (p *SystemProbe) Capacity(path string) (uint64, uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, 0, err
	}
	return usage.Total, usage.Free, nil
}

// Writable implements Probe.
func (p *SystemProbe) Writable(path string) bool {
	return writable(path)
}
