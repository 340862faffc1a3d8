package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/shared/server/middleware"
	"resume-editor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:documentId/review", h.create)
	rg.GET("/reviews/:reviewId", h.get)
	rg.PUT("/reviews/:reviewId/suggestions/:suggestionId", h.decide)
	rg.POST("/reviews/:reviewId/reset", h.reset)
	rg.GET("/reviews/:reviewId/resolved", h.resolved)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("documentId")

	rv, err := h.Svc.Create(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNoText):
			respond.Error(c, http.StatusUnprocessableEntity, "no_text", "document has no extractable text", nil)
		case errors.Is(err, ErrSuperseded):
			respond.Error(c, http.StatusConflict, "superseded", "a newer review was requested for this document", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create review", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, rv)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rv, err := h.Svc.Get(c.Request.Context(), userID, c.Param("reviewId"))
	if err != nil {
		respondReviewError(c, err, "failed to fetch review")
		return
	}

	respond.JSON(c, http.StatusOK, rv)
}

type decideRequest struct {
	Accepted *bool `json:"accepted"`
}

func (h *Handler) decide(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	suggestionID, err := strconv.Atoi(c.Param("suggestionId"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "suggestionId must be an integer", nil)
		return
	}

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Accepted == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "accepted is required", nil)
		return
	}

	rv, err := h.Svc.Decide(c.Request.Context(), userID, c.Param("reviewId"), suggestionID, *req.Accepted)
	if err != nil {
		if errors.Is(err, ErrUnknownSuggestion) {
			respond.Error(c, http.StatusNotFound, "not_found", "suggestion not found", nil)
			return
		}
		respondReviewError(c, err, "failed to update suggestion")
		return
	}

	respond.JSON(c, http.StatusOK, rv)
}

func (h *Handler) reset(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rv, err := h.Svc.Reset(c.Request.Context(), userID, c.Param("reviewId"))
	if err != nil {
		respondReviewError(c, err, "failed to reset review")
		return
	}

	respond.JSON(c, http.StatusOK, rv)
}

func (h *Handler) resolved(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	text, err := h.Svc.Resolved(c.Request.Context(), userID, c.Param("reviewId"))
	if err != nil {
		respondReviewError(c, err, "failed to resolve review")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"text": text})
}

func respondReviewError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "review not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
