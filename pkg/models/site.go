package models

import "time"

// SiteConfig is the site config file (_config.yml or _config.toml).
type SiteConfig struct {
	Safe      bool         `yaml:"safe" toml:"safe" json:"safe"`
	Permalink string       `yaml:"permalink" toml:"permalink" json:"permalink"`
	Drafts    DraftsConfig `yaml:"drafts" toml:"drafts" json:"drafts"`
}

// DraftsConfig is the "drafts" section of the site config.
type DraftsConfig struct {
	Dir       string `yaml:"dir" toml:"dir" json:"dir"`
	Extension string `yaml:"extension" toml:"extension" json:"extension"`
	Template  string `yaml:"template" toml:"template" json:"template"`
	Date      string `yaml:"date" toml:"date" json:"date"`
}

// Site is the build-scoped context. A new Site is created for every build;
// nothing in it survives to the next one.
type Site struct {
	Source string
	Config SiteConfig
	Time   time.Time
	Pages  []Page
}

// NewSite starts a build of the site at source with an empty page collection.
func NewSite(source string, cfg SiteConfig) *Site {
	return &Site{
		Source: source,
		Config: cfg,
		Time:   time.Now(),
	}
}
