package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jekyll-drafts/pkg/models"
)

// newSiteDir creates a site source with the given files under _drafts.
// A nil files map leaves _drafts absent.
func newSiteDir(t *testing.T, files map[string]string) string {
	t.Helper()
	source := t.TempDir()
	if files == nil {
		return source
	}
	dir := filepath.Join(source, "_drafts")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return source
}

func defaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{Drafts: models.DraftsConfig{Dir: "_drafts", Extension: ".md"}}
}
