package drafts

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts/structure", h.structure)
	rg.POST("/drafts/score", h.score)
	rg.GET("/drafts/current", h.current)
	rg.PUT("/drafts/current", h.saveCurrent)
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Handler) structure(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	draft, err := h.Svc.Structure(c.Request.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to structure resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, draft)
}

func (h *Handler) score(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	score, err := h.Svc.Score(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, score)
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	draft, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch draft", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, draft)
}

func (h *Handler) saveCurrent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.SaveCurrent(c.Request.Context(), userID, draft)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save draft", nil)
		return
	}

	respond.JSON(c, http.StatusOK, saved)
}
