package services

import (
	"os"
	"path"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"jekyll-drafts/pkg/models"
)

// ResolvePage turns a registered draft into a page entry, filling in the
// host defaults for everything the draft does not override.
func ResolvePage(site *models.Site, d models.Draft) (models.Page, error) {
	info, err := os.Stat(d.Path())
	if err != nil {
		return models.Page{}, errors.Wrapf(err, "stat %s", d.RelPath())
	}

	var fm map[string]interface{}
	if content, err := os.ReadFile(d.Path()); err != nil {
		return models.Page{}, errors.Wrapf(err, "read %s", d.RelPath())
	} else if parsed, _, _, err := ParseFrontMatter(content); err == nil {
		fm = parsed
	} else {
		zap.L().Debug("no front matter", zap.String("path", d.RelPath()), zap.Error(err))
	}

	title := FrontMatterString(fm, "title")
	if title == "" {
		title = d.Basename()
	}

	date := info.ModTime()
	if d.Date != nil {
		date = *d.Date
	} else if fmDate, ok := FrontMatterDate(fm); ok {
		date = fmDate
	}

	template := d.URLTemplate
	if template == "" {
		template = site.Config.Permalink
	}
	if template == "" {
		template = DefaultPageTemplate
	}

	outputExt := d.Ext()
	if d.HTML {
		outputExt = ".html"
	}

	vars := PermalinkVars{
		"basename":   d.Basename(),
		"title":      titleSlug(fm, d),
		"slug":       titleSlug(fm, d),
		"output_ext": outputExt,
		"path":       d.Dir,
	}
	datePermalinkVars(vars, date.Year(), int(date.Month()), date.Day())

	url := ExpandPermalink(template, vars)
	if d.RelativePermalinks {
		url = path.Join("/", d.Dir, url)
	}

	return models.Page{
		Path:               d.RelPath(),
		Name:               d.Name,
		Title:              title,
		URL:                url,
		Template:           template,
		Date:               date,
		HTML:               d.HTML,
		RelativePermalinks: d.RelativePermalinks,
		Draft:              true,
	}, nil
}

// titleSlug prefers an explicit front matter slug, then the slugified
// title, then the file basename.
func titleSlug(fm map[string]interface{}, d models.Draft) string {
	if s := FrontMatterString(fm, "slug"); s != "" {
		return s
	}
	if t := FrontMatterString(fm, "title"); t != "" {
		if s := slug.Make(t); s != "" {
			return s
		}
	}
	return d.Basename()
}
