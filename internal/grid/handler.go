package grid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/shared/server/middleware"
	"resume-editor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the layout store.
type Handler struct {
	Store *LayoutStore
}

// NewHandler constructs a Handler.
func NewHandler(store *LayoutStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches dashboard layout routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/layout", h.get)
	rg.PUT("/dashboard/layout", h.put)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	panels, err := h.Store.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch layout", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"panels": panels})
}

type putLayoutRequest struct {
	Panels []Panel `json:"panels"`
}

func (h *Handler) put(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req putLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Store.Put(c.Request.Context(), userID, req.Panels); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save layout", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"panels": req.Panels})
}
