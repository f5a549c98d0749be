package handlers

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the preview API onto a gin engine logging through logger.
func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.GET("/healthz", Healthz)

	api := r.Group("/api")
	{
		api.GET("/drafts", ListDrafts)
		api.POST("/drafts", CreateDraft)
		api.GET("/draft", GetDraft)
		api.GET("/config", GetConfig)
	}
	return r
}
