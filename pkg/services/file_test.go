package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("/site", "_drafts", "a.md"), SafeJoin("/site", "_drafts", "a.md"))
	assert.Empty(t, SafeJoin("/site", "_drafts", "../_config.yml"))
	assert.Empty(t, SafeJoin("/site", "_drafts", "/etc/passwd"))
	assert.Empty(t, SafeJoin("/site", "_drafts", ".."))
	assert.Equal(t, filepath.Join("/site", "_drafts", "v1..2.md"), SafeJoin("/site", "_drafts", "v1..2.md"))
}

func TestCreateDraft(t *testing.T) {
	source := t.TempDir()

	rel, err := CreateDraft(source, "_drafts", ".md", "Hello World", "")
	require.NoError(t, err)
	assert.Equal(t, "_drafts/hello-world.md", rel)

	content, err := os.ReadFile(filepath.Join(source, rel))
	require.NoError(t, err)
	fm, _, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "Hello World", fm["title"])
	_, ok := FrontMatterDate(fm)
	assert.True(t, ok)
}

func TestCreateDraft_RefusesOverwrite(t *testing.T) {
	source := t.TempDir()

	_, err := CreateDraft(source, "_drafts", ".md", "Hello", "toml")
	require.NoError(t, err)

	_, err = CreateDraft(source, "_drafts", ".md", "Hello", "toml")
	require.Error(t, err)
	assert.True(t, os.IsExist(err))
}

func TestCreateDraft_RejectsEmptySlug(t *testing.T) {
	_, err := CreateDraft(t.TempDir(), "_drafts", ".md", "!!!", "yaml")
	assert.Error(t, err)
}

func TestCreatedDraftIsRegistered(t *testing.T) {
	source := t.TempDir()
	_, err := CreateDraft(source, "_drafts", ".md", "Fresh Idea", "yaml")
	require.NoError(t, err)

	pages, err := BuildDrafts(source, defaultSiteConfig())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Fresh Idea", pages[0].Title)
}

func TestReadDraft(t *testing.T) {
	source := newSiteDir(t, map[string]string{"a.md": "hi"})

	content, err := ReadDraft(source, "_drafts", ".md", "a.md")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(content))

	_, err = ReadDraft(source, "_drafts", ".md", "../a.md")
	assert.True(t, os.IsNotExist(err))
}

func TestReadDraft_OnlyRegisteredNames(t *testing.T) {
	source := newSiteDir(t, map[string]string{
		"notes.txt":  "scratch",
		".hidden.md": "secret",
		"v1..2.md":   "dots",
	})

	for _, name := range []string{"notes.txt", ".hidden.md"} {
		_, err := ReadDraft(source, "_drafts", ".md", name)
		assert.True(t, os.IsNotExist(err), name)
	}

	content, err := ReadDraft(source, "_drafts", "", "v1..2.md")
	require.NoError(t, err)
	assert.Equal(t, "dots", string(content))
}
