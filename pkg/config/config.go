package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"jekyll-drafts/pkg/models"
)

const (
	DefaultDraftsDir       = "_drafts"
	DefaultDraftsExtension = ".md"
)

var (
	SourcePath = "."

	// Drafts settings
	DraftsDir       = DefaultDraftsDir
	DraftsExtension = DefaultDraftsExtension
	DraftsTemplate  = ""
	DraftsDate      = ""

	// Server settings
	ServerAddr = "127.0.0.1:4000"

	LogLevel = "info"
	SafeMode = false
)

// envSet records which settings Init took from a non-empty environment
// variable; those win over the site config file.
var envSet = map[string]bool{}

// Site config file names, in lookup order.
var siteConfigFiles = []string{"_config.yml", "_config.yaml", "_config.toml"}

func Init() {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	envSet = map[string]bool{}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			envSet[key] = true
			return v
		}
		return fallback
	}

	SourcePath = getEnv("SITE_SOURCE", ".")

	DraftsDir = getEnv("DRAFTS_DIR", DefaultDraftsDir)
	DraftsExtension = getEnv("DRAFTS_EXT", DefaultDraftsExtension)
	DraftsTemplate = getEnv("DRAFTS_TEMPLATE", "")
	DraftsDate = getEnv("DRAFTS_DATE", "")

	ServerAddr = getEnv("SERVER_ADDR", "127.0.0.1:4000")
	LogLevel = getEnv("LOG_LEVEL", "info")

	if sm := os.Getenv("SAFE_MODE"); sm != "" {
		if val, err := strconv.ParseBool(sm); err == nil {
			SafeMode = val
		}
	}
}

// LoadSite reads the site config file under source and applies the
// environment overrides on top. A site without a config file gets defaults.
func LoadSite(source string) (models.SiteConfig, error) {
	cfg := models.SiteConfig{
		Drafts: models.DraftsConfig{
			Dir:       DefaultDraftsDir,
			Extension: DefaultDraftsExtension,
		},
	}

	for _, name := range siteConfigFiles {
		path := filepath.Join(source, name)
		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return cfg, errors.Wrapf(err, "read %s", name)
		}
		if err := decodeSiteConfig(name, content, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse %s", name)
		}
		break
	}

	applyOverrides(&cfg)
	return cfg, nil
}

func decodeSiteConfig(name string, content []byte, cfg *models.SiteConfig) error {
	if filepath.Ext(name) == ".toml" {
		return toml.Unmarshal(content, cfg)
	}
	return yaml.Unmarshal(content, cfg)
}

// applyOverrides lets settings taken from the environment win over the file.
func applyOverrides(cfg *models.SiteConfig) {
	if envSet["DRAFTS_DIR"] || cfg.Drafts.Dir == "" {
		cfg.Drafts.Dir = DraftsDir
	}
	if envSet["DRAFTS_EXT"] || cfg.Drafts.Extension == "" {
		cfg.Drafts.Extension = DraftsExtension
	}
	if envSet["DRAFTS_TEMPLATE"] {
		cfg.Drafts.Template = DraftsTemplate
	}
	if envSet["DRAFTS_DATE"] {
		cfg.Drafts.Date = DraftsDate
	}
	if SafeMode {
		cfg.Safe = true
	}
}
