package models

import (
	"path/filepath"
	"strings"
	"time"
)

// Draft is a markdown file found in the drafts directory, registered as a
// page that the host renders neither as HTML nor with relative permalinks.
//
// URLTemplate and Date are overrides: the zero value of each means the host
// default applies.
type Draft struct {
	SourceRoot         string     `json:"source_root"`
	Dir                string     `json:"dir"`
	Name               string     `json:"name"`
	URLTemplate        string     `json:"url_template,omitempty"`
	Date               *time.Time `json:"date,omitempty"`
	HTML               bool       `json:"html"`
	RelativePermalinks bool       `json:"relative_permalinks"`
}

// Ext returns the file extension including the dot.
func (d Draft) Ext() string {
	return filepath.Ext(d.Name)
}

// Basename returns the file name without its extension.
func (d Draft) Basename() string {
	return strings.TrimSuffix(d.Name, d.Ext())
}

// Path returns the file location on disk.
func (d Draft) Path() string {
	return filepath.Join(d.SourceRoot, d.Dir, d.Name)
}

// RelPath returns the site-relative path in slash form, e.g. "_drafts/a.md".
func (d Draft) RelPath() string {
	return filepath.ToSlash(filepath.Join(d.Dir, d.Name))
}
