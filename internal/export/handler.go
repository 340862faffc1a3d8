package export

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/shared/server/middleware"
	"resume-editor-backend/internal/shared/server/respond"
)

const maxSnapshotSize = 20 << 20 // 20MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export/snapshot", h.snapshot)
	rg.POST("/drafts/current/export", h.draft)
}

func (h *Handler) snapshot(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSnapshotSize)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "image is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer file.Close()

	snapshot, _, err := image.Decode(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "image must be a valid PNG or JPEG", nil)
		return
	}

	pdf, err := h.Svc.ExportSnapshot(c.Request.Context(), snapshot)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export snapshot", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) draft(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	pdf, err := h.Svc.ExportDraft(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoDraft):
			respond.Error(c, http.StatusNotFound, "not_found", "no draft to export", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export draft", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
