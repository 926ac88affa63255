package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/tutormarket/internal/core"
)

// TuitionHandler serves tuition postings.
type TuitionHandler struct {
	tuitionService core.TuitionService
	logger         *zap.Logger
}

// NewTuitionHandler creates a new TuitionHandler.
func NewTuitionHandler(ts core.TuitionService, logger *zap.Logger) *TuitionHandler {
	return &TuitionHandler{tuitionService: ts, logger: logger}
}

// ListTuitions handles GET /api/tuitions.
func (h *TuitionHandler) ListTuitions(c *gin.Context) {
	tuitions, err := h.tuitionService.ListTuitions(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTuitions failed", zap.Error(err))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]TuitionView, 0, len(tuitions))
	for _, t := range tuitions {
		views = append(views, NewTuitionView(t))
	}
	respondList(c, views)
}
