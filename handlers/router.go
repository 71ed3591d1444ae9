package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes bundles the handlers mounted by NewRouter
type Routes struct {
	Analysis    *AnalysisHandler
	Reference   *ReferenceHandler
	Attachments *AttachmentHandler
	Logger      *slog.Logger
}

// NewRouter builds the gin engine with every API route
func NewRouter(r Routes) *gin.Engine {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(RequestLogger(logger), gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := engine.Group("/api")
	{
		// Analysis
		api.POST("/analyze", r.Analysis.Analyze)

		// Reference data
		api.GET("/laws", r.Reference.ListLaws)
		api.GET("/lawyers", r.Reference.ListLawyers)
		api.GET("/lawyers/:id", r.Reference.GetLawyer)

		// Attachments
		api.GET("/attachments/:id", r.Attachments.GetAttachment)
	}

	return engine
}
