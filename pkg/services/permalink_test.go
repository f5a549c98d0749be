package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPermalink(t *testing.T) {
	vars := PermalinkVars{
		"basename":   "hello-world",
		"title":      "hello-world-title",
		"path":       "_drafts",
		"output_ext": ".md",
		"year":       "2024",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"basename", "drafts/:basename.html", "/drafts/hello-world.html"},
		{"title", "drafts/:title.html", "/drafts/hello-world-title.html"},
		{"default", DefaultPageTemplate, "/_drafts/hello-world.md"},
		{"date", "/:year/:basename/", "/2024/hello-world/"},
		{"unknown placeholder", "/:category/:basename", "/:category/hello-world"},
		{"duplicate slashes", "//drafts//:basename", "/drafts/hello-world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPermalink(tt.template, vars))
		})
	}
}

func TestExpandPermalink_EmptyPath(t *testing.T) {
	got := ExpandPermalink(DefaultPageTemplate, PermalinkVars{"path": "", "basename": "about", "output_ext": ".html"})
	assert.Equal(t, "/about.html", got)
}
