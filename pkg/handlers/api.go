package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jekyll-drafts/pkg/config"
	"jekyll-drafts/pkg/models"
	"jekyll-drafts/pkg/services"
)

// ListDrafts runs a fresh build and returns the registered draft pages.
func ListDrafts(c *gin.Context) {
	cfg, err := config.LoadSite(config.SourcePath)
	if err != nil {
		zap.L().Error("load site config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site config"})
		return
	}

	pages, err := services.BuildDrafts(config.SourcePath, cfg)
	if err != nil {
		zap.L().Error("build drafts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drafts"})
		return
	}
	if pages == nil {
		pages = []models.Page{}
	}
	c.JSON(http.StatusOK, pages)
}

func GetDraft(c *gin.Context) {
	name := c.Query("name")
	cfg, err := config.LoadSite(config.SourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site config"})
		return
	}

	content, err := services.ReadDraft(config.SourcePath, cfg.Drafts.Dir, cfg.Drafts.Extension, name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}

	path := cfg.Drafts.Dir + "/" + name
	fm, body, format, err := services.ParseFrontMatter(content)
	if err != nil {
		c.JSON(http.StatusOK, models.DraftFile{Path: path, Content: string(content)})
		return
	}

	c.JSON(http.StatusOK, models.DraftFile{
		Path:        path,
		FrontMatter: fm,
		Body:        body,
		Format:      format,
	})
}

func CreateDraft(c *gin.Context) {
	var req struct {
		Title  string `json:"title"`
		Format string `json:"format"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	cfg, err := config.LoadSite(config.SourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site config"})
		return
	}

	path, err := services.CreateDraft(config.SourcePath, cfg.Drafts.Dir, cfg.Drafts.Extension, req.Title, req.Format)
	if err != nil {
		if os.IsExist(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Draft already exists"})
		} else {
			zap.L().Error("create draft", zap.String("title", req.Title), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "path": path})
}

func GetConfig(c *gin.Context) {
	cfg, err := config.LoadSite(config.SourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
