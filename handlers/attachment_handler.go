package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"batas-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttachmentHandler serves stored attachments
type AttachmentHandler struct {
	attachments *service.AttachmentService
	logger      *slog.Logger
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachments *service.AttachmentService, logger *slog.Logger) *AttachmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttachmentHandler{attachments: attachments, logger: logger}
}

// GetAttachment handles GET /api/attachments/:id
func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid attachment ID format")
		return
	}

	attachment, reader, err := h.attachments.Open(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, attachment.Size, attachment.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", attachment.Filename),
	})
}
