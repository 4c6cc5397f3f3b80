package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	IsDir   bool      `json:"is_dir"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// DisplayName returns the name with a trailing slash for directories.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// ToJSON converts the entry to a JSON string
func (e Entry) ToJSON() string {
	jsonBytes, _ := json.Marshal(e)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path: %s\n", e.Path))
	if e.IsDir {
		sb.WriteString("Type: directory\n")
	} else {
		sb.WriteString(fmt.Sprintf("Size: %d bytes\n", e.Size))
	}
	return sb.String()
}

// FilterDef is a named extension filter as written in configuration.
type FilterDef struct {
	Name       string   `yaml:"name" json:"name" validate:"required"`
	Extensions []string `yaml:"extensions" json:"extensions" validate:"required,min=1,dive,required"`
}
