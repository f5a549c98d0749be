package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseFrontMatter splits content into front matter, body and the front
// matter format ("yaml", "toml" or "json").
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := normalizeLineEndings(string(content))

	// YAML (---)
	if fm, body, ok := splitFenced(str, "---"); ok {
		var out map[string]interface{}
		if err := yaml.Unmarshal([]byte(fm), &out); err != nil {
			return nil, "", "", errors.Wrap(err, "yaml front matter")
		}
		return sanitizeFrontMatter(out), body, "yaml", nil
	}
	// TOML (+++)
	if fm, body, ok := splitFenced(str, "+++"); ok {
		var out map[string]interface{}
		if err := toml.Unmarshal([]byte(fm), &out); err != nil {
			return nil, "", "", errors.Wrap(err, "toml front matter")
		}
		return sanitizeFrontMatter(out), body, "toml", nil
	}
	// JSON ({)
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		var out map[string]interface{}
		dec := json.NewDecoder(strings.NewReader(str))
		if err := dec.Decode(&out); err != nil {
			return nil, "", "", errors.Wrap(err, "json front matter")
		}
		body := str[dec.InputOffset():]
		return out, strings.TrimSpace(body), "json", nil
	}

	return nil, "", "", fmt.Errorf("unknown format")
}

// splitFenced returns the text between an opening fence on the first line
// and the next line consisting only of the same fence.
func splitFenced(str, fence string) (string, string, bool) {
	if !strings.HasPrefix(str, fence+"\n") {
		return "", "", false
	}
	rest := str[len(fence)+1:]
	if strings.HasPrefix(rest, fence+"\n") || rest == fence {
		return "", strings.TrimSpace(strings.TrimPrefix(rest, fence)), true
	}
	idx := strings.Index(rest, "\n"+fence+"\n")
	if idx < 0 {
		if !strings.HasSuffix(rest, "\n"+fence) {
			return "", "", false
		}
		return rest[:len(rest)-len(fence)-1], "", true
	}
	return rest[:idx], strings.TrimSpace(rest[idx+len(fence)+2:]), true
}

func ConstructFileContent(fm map[string]interface{}, body string, format string) ([]byte, error) {
	normalizedFM := sanitizeFrontMatter(fm)
	if normalizedFM == nil {
		normalizedFM = map[string]interface{}{}
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	case "toml":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
		buf.WriteString("+++\n")
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// NewDraftContent renders the file content for a freshly created draft.
func NewDraftContent(title, format string, now time.Time) ([]byte, error) {
	fm := map[string]interface{}{
		"title": title,
		"date":  now.Format(time.RFC3339),
	}
	return ConstructFileContent(fm, "", format)
}

// FrontMatterString returns fm[key] when it is a non-empty string.
func FrontMatterString(fm map[string]interface{}, key string) string {
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

var frontMatterDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FrontMatterDate reads the "date" key. YAML and TOML decoders may already
// hand back a time.Time; strings are tried against the usual layouts.
func FrontMatterDate(fm map[string]interface{}) (time.Time, bool) {
	switch v := fm["date"].(type) {
	case time.Time:
		return v, true
	case toml.LocalDate:
		return v.AsTime(time.UTC), true
	case toml.LocalDateTime:
		return v.AsTime(time.UTC), true
	case string:
		for _, layout := range frontMatterDateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func sanitizeFrontMatter(fm map[string]interface{}) map[string]interface{} {
	if fm == nil {
		return nil
	}
	sanitized := make(map[string]interface{}, len(fm))
	for k, v := range fm {
		sanitized[k] = sanitizeFrontMatterValue(v)
	}
	return sanitized
}

func sanitizeFrontMatterValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return sanitizeFrontMatter(v)
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(v))
		for key, inner := range v {
			normalized[fmt.Sprint(key)] = sanitizeFrontMatterValue(inner)
		}
		return normalized
	case []interface{}:
		slice := make([]interface{}, len(v))
		for i := range v {
			slice[i] = sanitizeFrontMatterValue(v[i])
		}
		return slice
	default:
		return v
	}
}

func normalizeLineEndings(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}
