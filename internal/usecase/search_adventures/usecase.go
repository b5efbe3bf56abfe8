package search_adventures

import (
	"context"
	"errors"
	"fmt"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
)

// UseCase use case фасетного поиска сюжетов
type UseCase struct {
	catalogClient CatalogClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogClient CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case фасетного поиска
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAdventures: filters=%d, query=%q, changed_step=%q",
		len(req.Filters), req.Query, req.ChangedStep)

	// 1. Валидация шагов фильтра
	if err := validateSteps(req); err != nil {
		uc.logger.Warn("SearchAdventures: validation failed: %v", err)
		return nil, err
	}

	// 2. Согласуем иерархию сеттингов
	filters, conflictMessage := reconcileHierarchy(req.Filters, req.ChangedStep)

	// 3. Получаем каталог сюжетов (с graceful degradation)
	adventures, err := uc.catalogClient.ListAdventuresWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, catalogClient.ErrServiceDegraded) {
			uc.logger.Error("SearchAdventures: failed to list adventures: %v", err)
			return nil, fmt.Errorf("%w: failed to list adventures: %v", ErrInternal, err)
		}
		uc.logger.Warn("SearchAdventures: catalog degraded, serving empty result")
		adventures = []domain.Adventure{}
	}

	// 4. Применяем фильтры и текстовый поиск
	matched := make([]domain.Adventure, 0, len(adventures))
	for _, adv := range adventures {
		if matchesFilters(adv, filters) && matchesQuery(adv, req.Query) {
			matched = append(matched, adv)
		}
	}

	// 5. Собираем доступные опции по шагам
	steps := make([]Step, 0, len(domain.FilterStepIDs))
	for _, stepID := range domain.FilterStepIDs {
		meta := stepMeta[stepID]
		steps = append(steps, Step{
			ID:          stepID,
			Label:       meta[0],
			Description: meta[1],
			Options:     stepOptions(adventures, stepID, filters),
		})
	}

	uc.logger.Info("SearchAdventures: matched %d of %d adventures", len(matched), len(adventures))

	return &Response{
		Filters:         filters,
		ConflictMessage: conflictMessage,
		Adventures:      matched,
		Steps:           steps,
	}, nil
}

// validateSteps проверяет, что все шаги фильтра известны
func validateSteps(req *Request) error {
	known := make(map[string]struct{}, len(domain.FilterStepIDs))
	for _, stepID := range domain.FilterStepIDs {
		known[stepID] = struct{}{}
	}

	for stepID := range req.Filters {
		if _, ok := known[stepID]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStep, stepID)
		}
	}

	if req.ChangedStep != "" {
		if _, ok := known[req.ChangedStep]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStep, req.ChangedStep)
		}
	}

	return nil
}
