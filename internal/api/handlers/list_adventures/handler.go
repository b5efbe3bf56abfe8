package list_adventures

import (
	"net/http"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/domain"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListAdventuresResponse HTTP response model
type ListAdventuresResponse struct {
	Adventures []domain.Adventure `json:"adventures"`
	Total      int                `json:"total"`
}

// Handle GET /api/v1/adventures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adventures, err := h.service.ListAdventures(r.Context())
	if err != nil {
		h.logger.Error("GET /adventures - Failed to list adventures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if adventures == nil {
		adventures = []domain.Adventure{}
	}

	h.logger.Info("GET /adventures - Adventures listed: total=%d", len(adventures))
	handlers.RespondJSON(w, http.StatusOK, &ListAdventuresResponse{
		Adventures: adventures,
		Total:      len(adventures),
	})
}
