package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/tutormarket/internal/core"
	"github.com/example/tutormarket/internal/models"
)

// TutorHandler serves the tutor directory.
type TutorHandler struct {
	tutorService core.TutorService
	logger       *zap.Logger
}

// NewTutorHandler creates a new TutorHandler.
func NewTutorHandler(ts core.TutorService, logger *zap.Logger) *TutorHandler {
	return &TutorHandler{tutorService: ts, logger: logger}
}

type tutorURI struct {
	ID string `uri:"id" binding:"required,mongodb"`
}

// ListTutors handles GET /api/tutors.
func (h *TutorHandler) ListTutors(c *gin.Context) {
	tutors, err := h.tutorService.ListTutors(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTutors failed", zap.Error(err))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(c, mapUsers(tutors, NewTutorPublicView))
}

// GetTutor handles GET /api/tutors/:id.
func (h *TutorHandler) GetTutor(c *gin.Context) {
	var uri tutorURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid tutor id")
		return
	}

	tutor, err := h.tutorService.GetTutor(c.Request.Context(), uri.ID)
	switch {
	case err == nil:
		respondData(c, NewTutorPublicView(tutor))
	case errors.Is(err, core.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid tutor id")
	case errors.Is(err, core.ErrTutorNotFound):
		respondError(c, http.StatusNotFound, "Tutor not found")
	default:
		h.logger.Error("GetTutor failed", zap.String("tutorID", uri.ID), zap.Error(err))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// FeaturedTutors handles GET /api/tutors/featured.
func (h *TutorHandler) FeaturedTutors(c *gin.Context) {
	tutors, err := h.tutorService.FeaturedTutors(c.Request.Context())
	if err != nil {
		h.logger.Error("FeaturedTutors failed", zap.Error(err))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(c, mapUsers(tutors, NewTutorFeaturedView))
}

func mapUsers[V any](users []*models.User, view func(*models.User) V) []V {
	out := make([]V, 0, len(users))
	for _, u := range users {
		out = append(out, view(u))
	}
	return out
}
