package analytics

import (
	"net/http"

	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
)

type Handler struct {
	service AnalyticsService
}

func NewHandler(s AnalyticsService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to build analytics dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dashboard)
}
