package search_adventures

import (
	"errors"
	"net/http"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	searchAdventures "github.com/questarium/QST-ScheduleService/internal/usecase/search_adventures"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStep        = "неизвестный шаг фильтра"
)

type Handler struct {
	useCase SearchAdventuresUseCase
	logger  Logger
}

func NewHandler(useCase SearchAdventuresUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/adventures/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /adventures/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, searchAdventures.ErrUnknownStep):
			h.logger.Warn("POST /adventures/search - Unknown filter step: changed_step=%q", req.ChangedStep)
			handlers.RespondBadRequest(w, msgUnknownStep)

		default:
			h.logger.Error("POST /adventures/search - Failed to search adventures: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /adventures/search - Search completed: matched=%d", len(result.Adventures))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
