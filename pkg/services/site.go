package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"jekyll-drafts/pkg/models"
)

// Generator adds records to a site during a build.
type Generator interface {
	Name() string
	// Safe reports whether the generator may run when the site is in safe mode.
	Safe() bool
	Generate(site *models.Site) ([]models.Draft, error)
}

// Build runs each generator once and appends the resolved pages to
// site.Pages. Unsafe generators are skipped in safe mode.
func Build(site *models.Site, generators ...Generator) error {
	dirty, err := DirtyFiles(site.Source)
	if err != nil {
		zap.L().Debug("git status unavailable", zap.Error(err))
	}

	for _, g := range generators {
		if site.Config.Safe && !g.Safe() {
			zap.L().Info("skipping unsafe generator", zap.String("generator", g.Name()))
			continue
		}

		drafts, err := g.Generate(site)
		if err != nil {
			return errors.Wrapf(err, "generator %s", g.Name())
		}

		pages := make([]models.Page, 0, len(drafts))
		for _, d := range drafts {
			page, err := ResolvePage(site, d)
			if err != nil {
				return errors.Wrapf(err, "generator %s", g.Name())
			}
			page.IsDirty = dirty[page.Path]
			pages = append(pages, page)
		}
		site.Pages = append(site.Pages, pages...)

		zap.L().Info("generator finished", zap.String("generator", g.Name()), zap.Int("pages", len(pages)))
	}
	return nil
}

// BuildDrafts creates a fresh site for source, registers its drafts and
// returns the draft pages.
func BuildDrafts(source string, cfg models.SiteConfig) ([]models.Page, error) {
	gen, err := NewDraftGenerator(cfg.Drafts)
	if err != nil {
		return nil, err
	}
	site := models.NewSite(source, cfg)
	if err := Build(site, gen); err != nil {
		return nil, err
	}
	return site.Pages, nil
}
