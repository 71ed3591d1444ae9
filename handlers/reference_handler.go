package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"batas-backend/service"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the statute list and lawyer directory
type ReferenceHandler struct {
	reference *service.ReferenceService
	logger    *slog.Logger
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(reference *service.ReferenceService, logger *slog.Logger) *ReferenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceHandler{reference: reference, logger: logger}
}

// ListLaws handles GET /api/laws
func (h *ReferenceHandler) ListLaws(c *gin.Context) {
	laws, err := h.reference.ListLaws(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondOK(c, laws)
}

// ListLawyers handles GET /api/lawyers?case_type=&limit=
func (h *ReferenceHandler) ListLawyers(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, CodeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = n
	}

	lawyers, err := h.reference.ListLawyers(c.Request.Context(), c.Query("case_type"), limit)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondOK(c, lawyers)
}

// GetLawyer handles GET /api/lawyers/:id
func (h *ReferenceHandler) GetLawyer(c *gin.Context) {
	lawyer, err := h.reference.GetLawyer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondOK(c, lawyer)
}
