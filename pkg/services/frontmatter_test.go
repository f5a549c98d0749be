package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter_YAML(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("---\ntitle: Hello\ntags: [a, b]\n---\n\nBody text\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "Hello", fm["title"])
	assert.Equal(t, []interface{}{"a", "b"}, fm["tags"])
	assert.Equal(t, "Body text", body)
}

func TestParseFrontMatter_CRLF(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("---\r\ntitle: Hello\r\n---\r\nBody\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "Hello", fm["title"])
	assert.Equal(t, "Body", body)
}

func TestParseFrontMatter_TOML(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("+++\ntitle = \"Hello\"\n+++\nBody\n"))
	require.NoError(t, err)
	assert.Equal(t, "toml", format)
	assert.Equal(t, "Hello", fm["title"])
	assert.Equal(t, "Body", body)
}

func TestParseFrontMatter_JSON(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("{\"title\": \"Hello\"}\nBody\n"))
	require.NoError(t, err)
	assert.Equal(t, "json", format)
	assert.Equal(t, "Hello", fm["title"])
	assert.Equal(t, "Body", body)
}

func TestParseFrontMatter_Unknown(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("# Just markdown\n"))
	assert.Error(t, err)

	_, _, _, err = ParseFrontMatter([]byte("---\ntitle: unterminated\n"))
	assert.Error(t, err)
}

func TestParseFrontMatter_DashesInBody(t *testing.T) {
	_, body, _, err := ParseFrontMatter([]byte("---\ntitle: x\n---\nabove\n---\nbelow\n"))
	require.NoError(t, err)
	assert.Equal(t, "above\n---\nbelow", body)
}

func TestConstructFileContent_RoundTripsFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml", "json"} {
		t.Run(format, func(t *testing.T) {
			content, err := ConstructFileContent(map[string]interface{}{"title": "Hello"}, "Body", format)
			require.NoError(t, err)

			fm, body, gotFormat, err := ParseFrontMatter(content)
			require.NoError(t, err)
			assert.Equal(t, format, gotFormat)
			assert.Equal(t, "Hello", fm["title"])
			assert.Equal(t, "Body", body)
		})
	}
}

func TestConstructFileContent_UnsupportedFormat(t *testing.T) {
	_, err := ConstructFileContent(nil, "", "xml")
	assert.Error(t, err)
}

func TestFrontMatterDate(t *testing.T) {
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	got, ok := FrontMatterDate(map[string]interface{}{"date": "2024-03-09"})
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = FrontMatterDate(map[string]interface{}{"date": want})
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	_, ok = FrontMatterDate(map[string]interface{}{"date": "someday"})
	assert.False(t, ok)

	_, ok = FrontMatterDate(nil)
	assert.False(t, ok)
}

func TestFrontMatterDate_FromParsedTOML(t *testing.T) {
	fm, _, _, err := ParseFrontMatter([]byte("+++\ndate = 2024-03-09\n+++\n"))
	require.NoError(t, err)

	got, ok := FrontMatterDate(fm)
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 9, got.Day())
}
