package handlers

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"batas-backend/models"
	"batas-backend/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles HTTP requests for case analysis
type AnalysisHandler struct {
	analysis    *service.AnalysisService
	attachments *service.AttachmentService
	logger      *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysis *service.AnalysisService, attachments *service.AttachmentService, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if attachments == nil {
		attachments = service.NewAttachmentService(service.AttachmentWithLogger(logger))
	}
	return &AnalysisHandler{
		analysis:    analysis,
		attachments: attachments,
		logger:      logger,
	}
}

// AnalyzeRequest represents the JSON request body for an analysis
type AnalyzeRequest struct {
	Description string `json:"description"`
}

// Analyze handles POST /api/analyze.
// Accepts JSON {"description": "..."} or multipart with "description" and "files".
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var description string
	var files []*multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, http.StatusBadRequest, CodeInvalidInput, "invalid multipart form: "+err.Error())
			return
		}
		if values := form.Value["description"]; len(values) > 0 {
			description = values[0]
		}
		files = form.File["files"]
	} else {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, CodeInvalidInput, "invalid request body: "+err.Error())
			return
		}
		description = req.Description
	}

	// reject before touching storage or the model
	if err := service.ValidateDescription(description); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if err := h.analysis.Ready(); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	attachments, err := h.storeAttachments(c, files)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Description: description,
		Attachments: attachments,
	})
	if err != nil {
		// the caller never learns these ids
		h.attachments.Discard(c.Request.Context(), attachments)
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Analysis,
		"meta": gin.H{
			"model":       result.Model,
			"fallback":    result.Fallback,
			"attachments": result.Attachments,
		},
	})
}

func (h *AnalysisHandler) storeAttachments(c *gin.Context, files []*multipart.FileHeader) ([]models.Attachment, error) {
	// validate every file before storing any
	for _, fh := range files {
		if err := h.attachments.Validate(fh.Filename, fh.Size); err != nil {
			return nil, err
		}
	}

	ctx := c.Request.Context()
	attachments := make([]models.Attachment, 0, len(files))
	for _, fh := range files {
		a, err := h.storeAttachment(ctx, fh)
		if err != nil {
			h.attachments.Discard(ctx, attachments)
			return nil, err
		}
		attachments = append(attachments, *a)
	}
	return attachments, nil
}

func (h *AnalysisHandler) storeAttachment(ctx context.Context, fh *multipart.FileHeader) (*models.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return h.attachments.Store(ctx, service.StoreAttachmentRequest{
		Filename: fh.Filename,
		Size:     fh.Size,
		Data:     f,
	})
}
