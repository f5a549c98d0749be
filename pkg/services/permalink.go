package services

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPageTemplate is used when neither the page nor the site sets one.
const DefaultPageTemplate = "/:path/:basename:output_ext"

// PermalinkVars holds the values substituted into a URL template.
type PermalinkVars map[string]string

// ExpandPermalink replaces every ":name" placeholder in template with its
// value and normalizes the result to a single leading slash.
// Unknown placeholders are left untouched.
func ExpandPermalink(template string, vars PermalinkVars) string {
	// Longest names first so ":path" never eats part of a longer placeholder.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, ":"+name, vars[name])
	}
	url := strings.NewReplacer(pairs...).Replace(template)
	return cleanURL(url)
}

func cleanURL(url string) string {
	url = "/" + strings.TrimLeft(url, "/")
	for strings.Contains(url, "//") {
		url = strings.ReplaceAll(url, "//", "/")
	}
	return url
}

func datePermalinkVars(vars PermalinkVars, year, month, day int) {
	vars["year"] = fmt.Sprintf("%04d", year)
	vars["month"] = fmt.Sprintf("%02d", month)
	vars["day"] = fmt.Sprintf("%02d", day)
}
