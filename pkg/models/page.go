package models

import "time"

// Page is a resolved entry in the site's page collection.
type Page struct {
	Path               string    `json:"path"`
	Name               string    `json:"name"`
	Title              string    `json:"title"`
	URL                string    `json:"url"`
	Template           string    `json:"template"`
	Date               time.Time `json:"date"`
	HTML               bool      `json:"html"`
	RelativePermalinks bool      `json:"relative_permalinks"`
	Draft              bool      `json:"draft"`
	IsDirty            bool      `json:"is_dirty"`
}

// DraftFile is a single draft with its parsed content, as served by the preview API.
type DraftFile struct {
	Path        string                 `json:"path"`
	FrontMatter map[string]interface{} `json:"frontmatter,omitempty"`
	Body        string                 `json:"body,omitempty"`
	Content     string                 `json:"content,omitempty"` // Raw content when front matter is unreadable
	Format      string                 `json:"format,omitempty"`  // yaml, toml, json
}
