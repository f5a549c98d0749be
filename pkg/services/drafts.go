package services

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"jekyll-drafts/pkg/models"
)

// URL templates selected by DraftOptions.Template.
const (
	BasenameTemplate = "drafts/:basename.html"
	TitleTemplate    = "drafts/:title.html"
)

const (
	DefaultDraftsDir       = "_drafts"
	DefaultDraftsExtension = ".md"
)

// DraftOptions selects the overrides applied to every registered draft.
// The zero value applies none, leaving template and date to the host.
type DraftOptions struct {
	// Template is "", "basename", "title", or a literal URL template.
	Template string
	// Date is nil for the host default, or the date every draft reports.
	Date *time.Time
}

// ParseTemplateOverride maps the configured template mode to a URL template.
func ParseTemplateOverride(mode string) string {
	switch strings.TrimSpace(mode) {
	case "", "none":
		return ""
	case "basename":
		return BasenameTemplate
	case "title":
		return TitleTemplate
	default:
		return strings.TrimSpace(mode)
	}
}

// ParseDateOverride maps the configured date mode to an override date.
// "earliest" yields the zero time.
func ParseDateOverride(mode string) (*time.Time, error) {
	switch strings.TrimSpace(mode) {
	case "", "none":
		return nil, nil
	case "earliest":
		earliest := time.Time{}
		return &earliest, nil
	default:
		return nil, errors.Errorf("unknown draft date mode %q", mode)
	}
}

// DraftOptionsFromConfig builds the options from the site's drafts section.
func DraftOptionsFromConfig(cfg models.DraftsConfig) (DraftOptions, error) {
	date, err := ParseDateOverride(cfg.Date)
	if err != nil {
		return DraftOptions{}, err
	}
	return DraftOptions{
		Template: ParseTemplateOverride(cfg.Template),
		Date:     date,
	}, nil
}

// DraftGenerator registers every markdown file directly inside Dir as a
// draft page.
type DraftGenerator struct {
	Dir       string
	Extension string
	Options   DraftOptions
}

// NewDraftGenerator configures a generator from the site's drafts section.
func NewDraftGenerator(cfg models.DraftsConfig) (*DraftGenerator, error) {
	opts, err := DraftOptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &DraftGenerator{
		Dir:       cfg.Dir,
		Extension: cfg.Extension,
		Options:   opts,
	}, nil
}

// dir and ext fall back to "_drafts" and ".md" so a zero DraftGenerator
// behaves like a configured one.
func (g *DraftGenerator) dir() string {
	if g.Dir == "" {
		return DefaultDraftsDir
	}
	return g.Dir
}

func (g *DraftGenerator) ext() string {
	if g.Extension == "" {
		return DefaultDraftsExtension
	}
	return g.Extension
}

func (g *DraftGenerator) Name() string { return "drafts" }

// Safe reports that the generator touches nothing but the drafts directory.
func (g *DraftGenerator) Safe() bool { return true }

// Generate lists the drafts directory under the site source. A missing
// directory yields no drafts; any other read failure is returned.
func (g *DraftGenerator) Generate(site *models.Site) ([]models.Draft, error) {
	draftsDir, ext := g.dir(), g.ext()
	dir := filepath.Join(site.Source, draftsDir)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		zap.L().Debug("drafts directory not found", zap.String("dir", dir))
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}

	var drafts []models.Draft
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ext {
			continue
		}
		drafts = append(drafts, g.newDraft(site.Source, draftsDir, name))
	}

	zap.L().Debug("drafts listed", zap.String("dir", dir), zap.Int("count", len(drafts)))
	return drafts, nil
}

func (g *DraftGenerator) newDraft(source, dir, name string) models.Draft {
	d := models.Draft{
		SourceRoot:         source,
		Dir:                dir,
		Name:               name,
		URLTemplate:        g.Options.Template,
		HTML:               false,
		RelativePermalinks: false,
	}
	if g.Options.Date != nil {
		date := *g.Options.Date
		d.Date = &date
	}
	return d
}
