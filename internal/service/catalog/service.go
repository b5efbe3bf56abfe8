package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
)

// Service сервис каталога приключений
// Прячет graceful degradation клиента: при недоступном каталоге витрина
// получает пустой список, а не ошибку
type Service struct {
	client CatalogClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client CatalogClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListAdventures возвращает все сюжеты каталога
func (s *Service) ListAdventures(ctx context.Context) ([]domain.Adventure, error) {
	adventures, err := s.client.ListAdventuresWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceDegraded) {
			s.logger.Warn("ListAdventures: catalog degraded, serving empty list")
			return []domain.Adventure{}, nil
		}
		s.logger.Error("ListAdventures: client error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return adventures, nil
}

// GetAdventureByID возвращает сюжет по идентификатору
func (s *Service) GetAdventureByID(ctx context.Context, adventureID string) (*domain.Adventure, error) {
	adv, err := s.client.GetAdventureWithGracefulDegradation(ctx, adventureID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrAdventureNotFound) {
			return nil, ErrAdventureNotFound
		}
		if errors.Is(err, catalogClient.ErrServiceDegraded) {
			// Без каталога и снимка отличить "нет сюжета" от "сервис лежит"
			// нельзя - для витрины это not found
			s.logger.Warn("GetAdventureByID: catalog degraded for adventure %q", adventureID)
			return nil, ErrAdventureNotFound
		}
		s.logger.Error("GetAdventureByID: client error for adventure %q: %v", adventureID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return adv, nil
}
