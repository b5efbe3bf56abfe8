package search_adventures

import (
	"github.com/questarium/QST-ScheduleService/internal/domain"
	searchAdventures "github.com/questarium/QST-ScheduleService/internal/usecase/search_adventures"
)

// SearchRequest HTTP request model
type SearchRequest struct {
	Filters     map[string][]string `json:"filters"`
	Query       string              `json:"query"`
	ChangedStep string              `json:"changedStep"`
}

// StepResponse шаг фильтра с доступными опциями
type StepResponse struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Filters         map[string][]string `json:"filters"`
	ConflictMessage string              `json:"conflictMessage,omitempty"`
	Adventures      []domain.Adventure  `json:"adventures"`
	Steps           []StepResponse      `json:"steps"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchRequest) ToUseCaseRequest() *searchAdventures.Request {
	return &searchAdventures.Request{
		Filters:     r.Filters,
		Query:       r.Query,
		ChangedStep: r.ChangedStep,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAdventures.Response) *SearchResponse {
	steps := make([]StepResponse, 0, len(resp.Steps))
	for _, step := range resp.Steps {
		steps = append(steps, StepResponse{
			ID:          step.ID,
			Label:       step.Label,
			Description: step.Description,
			Options:     step.Options,
		})
	}

	adventures := resp.Adventures
	if adventures == nil {
		adventures = []domain.Adventure{}
	}

	return &SearchResponse{
		Filters:         resp.Filters,
		ConflictMessage: resp.ConflictMessage,
		Adventures:      adventures,
		Steps:           steps,
	}
}
