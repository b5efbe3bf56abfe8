package get_adventure

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/service/catalog"
)

const (
	msgAdventureNotFound = "сюжет не найден"
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

// Handle GET /api/v1/adventures/{adventureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adventureID := vars["adventureId"]

	adventure, err := h.service.GetAdventureByID(r.Context(), adventureID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAdventureNotFound):
			h.logger.Warn("GET /adventures/{adventureId} - Adventure not found: adventure_id=%q", adventureID)
			handlers.RespondNotFound(w, msgAdventureNotFound)

		default:
			h.logger.Error("GET /adventures/{adventureId} - Failed to get adventure: adventure_id=%q, error=%v", adventureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /adventures/{adventureId} - Adventure retrieved: adventure_id=%s", adventure.ID)
	handlers.RespondJSON(w, http.StatusOK, adventure)
}
